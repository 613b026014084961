// Package trend fits an ordinary least-squares line over an ordered series
// and classifies its direction.
package trend

import (
	"math"

	"github.com/rcliao/baseline/internal/domain"
)

// recentWindow bounds how many trailing points feed the recent average.
const recentWindow = 5

// directionBand is the fraction of the series mean inside which a slope
// counts as stable.
const directionBand = 0.01

// Analyze fits value against index with closed-form OLS. higherIsBetter
// states the metric's polarity: for cost, delay, or risk series it should be
// false so a rising line reads as DECLINING. Fewer than two points
// degenerate to a stable, zero-slope result with no forecast.
func Analyze(series []domain.TrendPoint, higherIsBetter bool) domain.TrendResult {
	n := len(series)
	if n < 2 {
		result := domain.TrendResult{
			Direction:  domain.TrendStable,
			DataPoints: n,
		}
		if n == 1 {
			result.RecentAverage = series[0].Value
		}
		return result
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range series {
		sumX += p.Index
		sumY += p.Value
		sumXY += p.Index * p.Value
		sumXX += p.Index * p.Index
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		// Every point shares one index; no line to fit.
		return domain.TrendResult{
			Direction:     domain.TrendStable,
			RecentAverage: recentAverage(series),
			DataPoints:    n,
		}
	}

	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	nextIndex := series[n-1].Index + 1
	forecast := slope*nextIndex + intercept

	mean := sumY / fn
	threshold := directionBand * math.Abs(mean)

	direction := domain.TrendStable
	switch {
	case slope > threshold:
		direction = domain.TrendImproving
		if !higherIsBetter {
			direction = domain.TrendDeclining
		}
	case slope < -threshold:
		direction = domain.TrendDeclining
		if !higherIsBetter {
			direction = domain.TrendImproving
		}
	}

	return domain.TrendResult{
		Direction:     direction,
		Slope:         slope,
		Intercept:     intercept,
		ForecastNext:  forecast,
		RecentAverage: recentAverage(series),
		DataPoints:    n,
	}
}

// AnalyzeValues is a convenience wrapper indexing values 0..n-1.
func AnalyzeValues(values []float64, higherIsBetter bool) domain.TrendResult {
	series := make([]domain.TrendPoint, len(values))
	for i, v := range values {
		series[i] = domain.TrendPoint{Index: float64(i), Value: v}
	}
	return Analyze(series, higherIsBetter)
}

func recentAverage(series []domain.TrendPoint) float64 {
	n := len(series)
	if n == 0 {
		return 0
	}
	window := recentWindow
	if n < window {
		window = n
	}
	var sum float64
	for _, p := range series[n-window:] {
		sum += p.Value
	}
	return sum / float64(window)
}
