package domain

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// ScheduleForecastInput is one snapshot of schedule progress. Progress values
// are percentages in [0, 100].
type ScheduleForecastInput struct {
	PlannedEndDate      string   `json:"plannedEndDate"`
	CurrentProgress     float64  `json:"currentProgress"`
	PlannedProgress     float64  `json:"plannedProgress"`
	ProjectDurationDays float64  `json:"projectDurationDays"`
	ElapsedDays         float64  `json:"elapsedDays"`
	CriticalPathTasks   []string `json:"criticalPathTasks,omitempty"`
	RiskRegister        []string `json:"riskRegister,omitempty"`
}

// HistoricalSchedule is one completed project's observed schedule outcome.
type HistoricalSchedule struct {
	ActualDelayDays float64 `json:"actualDelayDays"`
}

// ScheduleForecast is the computed schedule outlook for one snapshot.
type ScheduleForecast struct {
	PlannedEndDate     string    `json:"plannedEndDate"`
	ForecastEndDate    string    `json:"forecastEndDate"`
	DelayDays          float64   `json:"delayDays"`
	SPI                float64   `json:"spi"`
	OptimisticEndDate  string    `json:"optimisticEndDate"`
	PessimisticEndDate string    `json:"pessimisticEndDate"`
	ProbabilityOnTime  float64   `json:"probabilityOnTime"`
	RiskLevel          RiskLevel `json:"riskLevel"`
	RiskFactors        []string  `json:"riskFactors"`
	Recommendations    []string  `json:"recommendations"`
}

// CostForecastInput is one snapshot of budget consumption. Percent values are
// in [0, 100]. CommittedCosts and Contingency are optional refinements.
type CostForecastInput struct {
	Budget          float64 `json:"budget"`
	ActualCost      float64 `json:"actualCost"`
	PercentComplete float64 `json:"percentComplete"`
	PlannedPercent  float64 `json:"plannedPercent"`
	CommittedCosts  float64 `json:"committedCosts,omitempty"`
	Contingency     float64 `json:"contingency,omitempty"`
}

// HistoricalCost is one completed project's observed cost overrun (absolute,
// negative for an underrun).
type HistoricalCost struct {
	CostOverrun float64 `json:"costOverrun"`
}

// CostForecast is the computed cost outlook for one snapshot.
type CostForecast struct {
	Budget                  float64            `json:"budget"`
	ForecastCost            float64            `json:"forecastCost"`
	Overrun                 float64            `json:"overrun"`
	OptimisticCost          float64            `json:"optimisticCost"`
	PessimisticCost         float64            `json:"pessimisticCost"`
	ProbabilityWithinBudget float64            `json:"probabilityWithinBudget"`
	RiskLevel               RiskLevel          `json:"riskLevel"`
	CostDrivers             []string           `json:"costDrivers"`
	Recommendations         []string           `json:"recommendations"`
	Metrics                 PerformanceMetrics `json:"metrics"`
}
