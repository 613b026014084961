package forecast

import (
	"fmt"
	"math"

	"github.com/rcliao/baseline/internal/domain"
	"github.com/rcliao/baseline/internal/evm"
	"github.com/rcliao/baseline/internal/montecarlo"
)

// costSpreadFloor is the minimum simulation spread as a fraction of budget.
const costSpreadFloor = 0.08

// PredictCostOverrun projects the estimate at completion for one budget
// snapshot. Three independent EAC formulas are averaged into the point
// forecast before the confidence interval is simulated.
func PredictCostOverrun(in domain.CostForecastInput, history []domain.HistoricalCost, opts montecarlo.Options) domain.CostForecast {
	m := evm.Calculate(in.Budget, in.ActualCost, in.PercentComplete, in.PlannedPercent)

	pointEAC := blendedEAC(m)

	var histStddev float64
	if len(history) > 0 {
		histStddev = overrunStddev(history)
	}

	spread := math.Max(histStddev, in.Budget*costSpreadFloor)
	sim := montecarlo.Run(pointEAC, spread, opts)

	overrun := sim.Mean - in.Budget

	return domain.CostForecast{
		Budget:                  in.Budget,
		ForecastCost:            sim.Mean,
		Overrun:                 overrun,
		OptimisticCost:          sim.P10,
		PessimisticCost:         sim.P90,
		ProbabilityWithinBudget: probabilityWithinBudget(pointEAC-in.Budget, in.Budget),
		RiskLevel:               costRiskLevel(m.CPI),
		CostDrivers:             costDrivers(in, m),
		Recommendations:         costRecommendations(in, m, pointEAC),
		Metrics:                 m,
	}
}

// blendedEAC averages the CPI-only estimate with the two composite formulas
// that fold in remaining work and schedule performance.
func blendedEAC(m domain.PerformanceMetrics) float64 {
	bac := m.BudgetAtCompletion

	eacCPI := bac
	if m.CPI > 0 {
		eacCPI = bac / m.CPI
	}

	remaining := bac - m.EarnedValue
	eacComposite := m.ActualCost + remaining
	if m.CPI > 0 {
		eacComposite = m.ActualCost + remaining/m.CPI
	}

	eacBlended := bac
	if m.CPI*m.SPI > 0 {
		eacBlended = bac / (m.CPI * m.SPI)
	}

	return (eacCPI + eacComposite + eacBlended) / 3
}

// costRiskLevel maps cost performance to a coarse risk bucket.
func costRiskLevel(cpi float64) domain.RiskLevel {
	switch {
	case cpi >= 0.98:
		return domain.RiskLow
	case cpi >= 0.90:
		return domain.RiskMedium
	case cpi >= 0.80:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}

// probabilityWithinBudget buckets the projected overrun against budget.
func probabilityWithinBudget(overrun, budget float64) float64 {
	switch {
	case overrun <= 0:
		return 0.85
	case budget > 0 && overrun < budget*0.05:
		return 0.65
	case budget > 0 && overrun < budget*0.10:
		return 0.35
	default:
		return 0.15
	}
}

func costDrivers(in domain.CostForecastInput, m domain.PerformanceMetrics) []string {
	drivers := make([]string, 0)

	if m.CPI < 0.9 && m.CPI > 0 {
		drivers = append(drivers, fmt.Sprintf("cost performance index %.2f shows spending running ahead of earned value", m.CPI))
	}
	if m.CPI == 0 {
		drivers = append(drivers, "costs incurred with no earned value to date")
	}
	if m.SPI < 0.9 {
		drivers = append(drivers, fmt.Sprintf("schedule performance index %.2f adds indirect cost pressure from extended duration", m.SPI))
	}
	remainingBudget := in.Budget - in.ActualCost
	if in.CommittedCosts > 0 && in.CommittedCosts > remainingBudget {
		drivers = append(drivers, fmt.Sprintf("committed costs of %.0f exceed the remaining budget of %.0f", in.CommittedCosts, remainingBudget))
	}

	return drivers
}

func costRecommendations(in domain.CostForecastInput, m domain.PerformanceMetrics, pointEAC float64) []string {
	recs := make([]string, 0)

	if m.CPI < 0.95 && m.CPI > 0 {
		recs = append(recs, "run a cost review on the largest remaining work packages")
	}
	overrun := pointEAC - in.Budget
	if in.Contingency > 0 && overrun > in.Contingency {
		recs = append(recs, fmt.Sprintf("projected overrun of %.0f exhausts the %.0f contingency reserve; escalate for additional funding", overrun, in.Contingency))
	} else if overrun > 0 {
		recs = append(recs, "draw down contingency against the projected overrun and track burn weekly")
	}
	if m.TCPI > 1.1 && m.TCPI < evm.TCPICap {
		recs = append(recs, fmt.Sprintf("remaining work must run at CPI %.2f to hit budget; validate feasibility", m.TCPI))
	}
	if len(recs) == 0 {
		recs = append(recs, "cost performance is on track; maintain current controls")
	}

	return recs
}

func overrunStddev(history []domain.HistoricalCost) float64 {
	n := float64(len(history))
	var sum float64
	for _, h := range history {
		sum += h.CostOverrun
	}
	avg := sum / n

	var sumSq float64
	for _, h := range history {
		diff := h.CostOverrun - avg
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / n)
}
