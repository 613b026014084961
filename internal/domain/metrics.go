package domain

// PerformanceMetrics is the standard earned value bundle computed from one
// budget/progress snapshot. TCPI is capped at a finite sentinel when the
// remaining budget is zero or negative, so the bundle always serializes.
type PerformanceMetrics struct {
	BudgetAtCompletion float64 `json:"budgetAtCompletion"`
	ActualCost         float64 `json:"actualCost"`
	EarnedValue        float64 `json:"earnedValue"`
	PlannedValue       float64 `json:"plannedValue"`
	ScheduleVariance   float64 `json:"scheduleVariance"`
	CostVariance       float64 `json:"costVariance"`
	SVPercent          float64 `json:"svPercent"`
	CVPercent          float64 `json:"cvPercent"`
	SPI                float64 `json:"spi"`
	CPI                float64 `json:"cpi"`
	EAC                float64 `json:"eac"`
	ETC                float64 `json:"etc"`
	VAC                float64 `json:"vac"`
	TCPI               float64 `json:"tcpi"`
}

// OnBudget returns true if cost performance is at or above target.
func (m PerformanceMetrics) OnBudget() bool {
	return m.CPI >= 1.0
}

// OnSchedule returns true if schedule performance is at or above target.
func (m PerformanceMetrics) OnSchedule() bool {
	return m.SPI >= 1.0
}
