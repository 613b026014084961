// Package evm implements the standard earned value management formulas over
// a single budget/progress snapshot.
package evm

import (
	"github.com/rcliao/baseline/internal/domain"
)

// TCPICap stands in for an unbounded to-complete performance index when the
// remaining budget is zero or negative. The sentinel stays finite because
// every metrics bundle must survive json.Marshal, which rejects +Inf.
const TCPICap = 999.0

// Calculate derives the full earned value bundle from budget at completion,
// actual cost, and the two progress percentages (0-100). Zero denominators
// never fail: performance indices default to 1.0, percentage variances to 0,
// and TCPI is capped at TCPICap when the remaining budget is exhausted.
func Calculate(bac, ac, percentComplete, plannedPercent float64) domain.PerformanceMetrics {
	ev := bac * percentComplete / 100
	pv := bac * plannedPercent / 100

	sv := ev - pv
	cv := ev - ac

	svPercent := 0.0
	if pv != 0 {
		svPercent = sv / pv * 100
	}
	cvPercent := 0.0
	if ev != 0 {
		cvPercent = cv / ev * 100
	}

	spi := 1.0
	if pv != 0 {
		spi = ev / pv
	}
	cpi := 1.0
	if ac != 0 {
		cpi = ev / ac
	}

	// CPI can legitimately be zero (cost incurred, nothing earned); the
	// CPI-based estimate falls back to the original budget instead of
	// dividing to infinity.
	eac := bac
	if cpi > 0 {
		eac = bac / cpi
	}
	etc := eac - ac
	vac := bac - eac

	tcpi := TCPICap
	if bac-ac > 0 {
		tcpi = (bac - ev) / (bac - ac)
	}

	return domain.PerformanceMetrics{
		BudgetAtCompletion: bac,
		ActualCost:         ac,
		EarnedValue:        ev,
		PlannedValue:       pv,
		ScheduleVariance:   sv,
		CostVariance:       cv,
		SVPercent:          svPercent,
		CVPercent:          cvPercent,
		SPI:                spi,
		CPI:                cpi,
		EAC:                eac,
		ETC:                etc,
		VAC:                vac,
		TCPI:               tcpi,
	}
}
