package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rcliao/baseline/internal/config"
	"github.com/rcliao/baseline/internal/cpm"
	"github.com/rcliao/baseline/internal/domain"
	"github.com/rcliao/baseline/internal/evm"
	"github.com/rcliao/baseline/internal/forecast"
	"github.com/rcliao/baseline/internal/montecarlo"
	"github.com/rcliao/baseline/internal/trend"
)

// AnalysisService composes the schedule, cost, and trend engines behind a
// single entry point and records every result through the injected
// repository.
type AnalysisService struct {
	repo   AnalysisRepository
	sim    montecarlo.Options
	logger zerolog.Logger
}

func NewAnalysisService(repo AnalysisRepository, simCfg config.SimulationConfig, logger zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		repo: repo,
		sim: montecarlo.Options{
			Iterations: simCfg.Iterations,
			Workers:    simCfg.Workers,
			Seed:       simCfg.Seed,
		},
		logger: logger,
	}
}

// AnalyzeCriticalPath validates the task list, runs the critical path
// analysis, and records the result.
func (s *AnalysisService) AnalyzeCriticalPath(tasks []domain.Task) (*domain.AnalysisRecord, error) {
	graph, err := cpm.BuildGraph(tasks)
	if err != nil {
		return nil, fmt.Errorf("build task graph: %w", err)
	}

	result := cpm.ComputeCriticalPath(graph)
	record := domain.NewAnalysisRecord(domain.AnalysisCriticalPath, result)
	if err := s.repo.SaveAnalysis(record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("analysisId", record.ID).
		Int("tasks", len(tasks)).
		Int("criticalPathLength", len(result.CriticalPath)).
		Float64("projectDuration", result.ProjectDuration).
		Msg("critical path analysis completed")

	return record, nil
}

// CalculatePerformance computes the earned value bundle for one snapshot and
// records it.
func (s *AnalysisService) CalculatePerformance(bac, ac, percentComplete, plannedPercent float64) (*domain.AnalysisRecord, error) {
	metrics := evm.Calculate(bac, ac, percentComplete, plannedPercent)
	record := domain.NewAnalysisRecord(domain.AnalysisPerformance, metrics)
	if err := s.repo.SaveAnalysis(record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("analysisId", record.ID).
		Float64("spi", metrics.SPI).
		Float64("cpi", metrics.CPI).
		Msg("earned value metrics computed")

	return record, nil
}

// ForecastSchedule projects completion delay for one progress snapshot.
func (s *AnalysisService) ForecastSchedule(in domain.ScheduleForecastInput, history []domain.HistoricalSchedule) (*domain.AnalysisRecord, error) {
	result := forecast.PredictScheduleDelay(in, history, s.sim)
	record := domain.NewAnalysisRecord(domain.AnalysisScheduleForecast, result)
	if err := s.repo.SaveAnalysis(record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("analysisId", record.ID).
		Float64("spi", result.SPI).
		Float64("delayDays", result.DelayDays).
		Str("riskLevel", string(result.RiskLevel)).
		Msg("schedule forecast completed")

	return record, nil
}

// ForecastCost projects the estimate at completion for one budget snapshot.
func (s *AnalysisService) ForecastCost(in domain.CostForecastInput, history []domain.HistoricalCost) (*domain.AnalysisRecord, error) {
	result := forecast.PredictCostOverrun(in, history, s.sim)
	record := domain.NewAnalysisRecord(domain.AnalysisCostForecast, result)
	if err := s.repo.SaveAnalysis(record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("analysisId", record.ID).
		Float64("forecastCost", result.ForecastCost).
		Float64("overrun", result.Overrun).
		Str("riskLevel", string(result.RiskLevel)).
		Msg("cost forecast completed")

	return record, nil
}

// AnalyzeTrend fits a least-squares trend over the supplied series.
func (s *AnalysisService) AnalyzeTrend(series []domain.TrendPoint, higherIsBetter bool) (*domain.AnalysisRecord, error) {
	result := trend.Analyze(series, higherIsBetter)
	record := domain.NewAnalysisRecord(domain.AnalysisTrend, result)
	if err := s.repo.SaveAnalysis(record); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("analysisId", record.ID).
		Str("direction", string(result.Direction)).
		Float64("slope", result.Slope).
		Msg("trend analysis completed")

	return record, nil
}

// Get returns a previously recorded analysis.
func (s *AnalysisService) Get(id string) (*domain.AnalysisRecord, error) {
	return s.repo.GetAnalysis(id)
}

// List returns recorded analyses, optionally filtered by kind.
func (s *AnalysisService) List(filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error) {
	return s.repo.ListAnalyses(filter)
}
