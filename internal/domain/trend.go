package domain

type TrendDirection string

const (
	TrendImproving TrendDirection = "IMPROVING"
	TrendStable    TrendDirection = "STABLE"
	TrendDeclining TrendDirection = "DECLINING"
)

// TrendPoint is one observation in an ordered series. Index is the position
// on the time axis (sequence number, sprint number, week offset).
type TrendPoint struct {
	Index float64 `json:"index"`
	Value float64 `json:"value"`
}

// TrendResult is the least-squares summary of a series. ForecastNext is zero
// when fewer than two points were supplied.
type TrendResult struct {
	Direction     TrendDirection `json:"direction"`
	Slope         float64        `json:"slope"`
	Intercept     float64        `json:"intercept"`
	ForecastNext  float64        `json:"forecastNext"`
	RecentAverage float64        `json:"recentAverage"`
	DataPoints    int            `json:"dataPoints"`
}
