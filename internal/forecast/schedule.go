// Package forecast layers schedule and cost projections on top of the
// earned value metrics and the Monte Carlo sampler.
package forecast

import (
	"fmt"
	"math"

	"github.com/rcliao/baseline/internal/cpm"
	"github.com/rcliao/baseline/internal/domain"
	"github.com/rcliao/baseline/internal/montecarlo"
)

const (
	// historicalDelayWeight blends the historical average delay into the
	// point forecast when past projects are supplied.
	historicalDelayWeight = 0.3

	// scheduleSpreadFloor is the minimum simulation spread as a fraction of
	// project duration.
	scheduleSpreadFloor = 0.05
)

// PredictScheduleDelay projects the completion delay for one progress
// snapshot, optionally informed by historical project outcomes.
func PredictScheduleDelay(in domain.ScheduleForecastInput, history []domain.HistoricalSchedule, opts montecarlo.Options) domain.ScheduleForecast {
	spi := 1.0
	if in.PlannedProgress > 0 {
		spi = in.CurrentProgress / in.PlannedProgress
	}

	remaining := in.ProjectDurationDays - in.ElapsedDays
	if remaining < 0 {
		remaining = 0
	}

	var forecastRemaining float64
	if spi > 0 {
		forecastRemaining = remaining / spi
	} else {
		// No measurable progress; assume the worst defensible case.
		forecastRemaining = remaining * 2
	}
	delay := forecastRemaining - remaining

	var histStddev float64
	if len(history) > 0 {
		avg, stddev := delayStats(history)
		delay += historicalDelayWeight * avg
		histStddev = stddev
	}

	spread := math.Max(histStddev, in.ProjectDurationDays*scheduleSpreadFloor)
	sim := montecarlo.Run(delay, spread, opts)

	f := domain.ScheduleForecast{
		PlannedEndDate:    in.PlannedEndDate,
		DelayDays:         sim.Mean,
		SPI:               spi,
		ProbabilityOnTime: probabilityOnTime(delay, in.ProjectDurationDays),
		RiskLevel:         scheduleRiskLevel(spi),
		RiskFactors:       scheduleRiskFactors(in, spi, delay),
		Recommendations:   scheduleRecommendations(spi, delay),
	}

	if planned, ok := cpm.ParseDate(in.PlannedEndDate); ok {
		f.ForecastEndDate = planned.AddDate(0, 0, int(math.Round(sim.Mean))).Format("2006-01-02")
		f.OptimisticEndDate = planned.AddDate(0, 0, int(math.Round(sim.P10))).Format("2006-01-02")
		f.PessimisticEndDate = planned.AddDate(0, 0, int(math.Round(sim.P90))).Format("2006-01-02")
	}

	return f
}

// scheduleRiskLevel maps schedule performance to a coarse risk bucket.
func scheduleRiskLevel(spi float64) domain.RiskLevel {
	switch {
	case spi >= 0.95:
		return domain.RiskLow
	case spi >= 0.85:
		return domain.RiskMedium
	case spi >= 0.75:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}

// probabilityOnTime buckets the forecast delay against project duration.
func probabilityOnTime(delayDays, durationDays float64) float64 {
	switch {
	case delayDays <= 0:
		return 0.85
	case durationDays > 0 && delayDays < durationDays*0.05:
		return 0.65
	case durationDays > 0 && delayDays < durationDays*0.10:
		return 0.35
	default:
		return 0.15
	}
}

func scheduleRiskFactors(in domain.ScheduleForecastInput, spi, delay float64) []string {
	factors := make([]string, 0)

	if spi < 0.85 {
		factors = append(factors, fmt.Sprintf("schedule performance index %.2f is well below target", spi))
	}
	if delay > 0 {
		factors = append(factors, fmt.Sprintf("current pace projects a %.0f day completion delay", delay))
	}
	if len(in.CriticalPathTasks) > 10 {
		factors = append(factors, fmt.Sprintf("%d tasks on the critical path leave little scheduling buffer", len(in.CriticalPathTasks)))
	}
	factors = append(factors, in.RiskRegister...)

	return factors
}

func scheduleRecommendations(spi, delay float64) []string {
	recs := make([]string, 0)

	if spi < 0.9 {
		recs = append(recs, "accelerate critical path work through fast-tracking or crashing")
		recs = append(recs, "review resource allocation on critical path tasks")
	}
	if delay > 30 {
		recs = append(recs, "prepare a formal schedule recovery plan")
	} else if delay > 0 {
		recs = append(recs, "re-baseline the schedule against current progress")
	}
	if len(recs) == 0 {
		recs = append(recs, "maintain current execution pace")
	}

	return recs
}

func delayStats(history []domain.HistoricalSchedule) (avg, stddev float64) {
	n := float64(len(history))
	var sum float64
	for _, h := range history {
		sum += h.ActualDelayDays
	}
	avg = sum / n

	var sumSq float64
	for _, h := range history {
		diff := h.ActualDelayDays - avg
		sumSq += diff * diff
	}
	return avg, math.Sqrt(sumSq / n)
}
