package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnalysisRecord(t *testing.T) {
	result := map[string]interface{}{"projectDuration": 9.0}

	record := NewAnalysisRecord(AnalysisCriticalPath, result)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, AnalysisCriticalPath, record.Kind)
	assert.NotZero(t, record.CreatedAt)
	assert.Equal(t, result, record.Result)
}

func TestNewAnalysisRecord_UniqueIDs(t *testing.T) {
	first := NewAnalysisRecord(AnalysisTrend, nil)
	second := NewAnalysisRecord(AnalysisTrend, nil)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRiskLevels(t *testing.T) {
	levels := []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

	for _, level := range levels {
		assert.NotEmpty(t, string(level))
	}
}

func TestTrendDirections(t *testing.T) {
	directions := []TrendDirection{TrendImproving, TrendStable, TrendDeclining}

	for _, direction := range directions {
		assert.NotEmpty(t, string(direction))
	}
}
