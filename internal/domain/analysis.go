package domain

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisKind string

const (
	AnalysisCriticalPath     AnalysisKind = "critical-path"
	AnalysisPerformance      AnalysisKind = "performance"
	AnalysisScheduleForecast AnalysisKind = "schedule-forecast"
	AnalysisCostForecast     AnalysisKind = "cost-forecast"
	AnalysisTrend            AnalysisKind = "trend"
)

// AnalysisRecord wraps one computed result with identity and a timestamp so
// callers can track repeated invocations through an injected repository.
type AnalysisRecord struct {
	ID        string       `json:"id"`
	Kind      AnalysisKind `json:"kind"`
	CreatedAt time.Time    `json:"createdAt"`
	Result    interface{}  `json:"result"`
}

func NewAnalysisRecord(kind AnalysisKind, result interface{}) *AnalysisRecord {
	return &AnalysisRecord{
		ID:        uuid.New().String(),
		Kind:      kind,
		CreatedAt: time.Now(),
		Result:    result,
	}
}

type AnalysisFilter struct {
	Kind *AnalysisKind
}
