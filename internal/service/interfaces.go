package service

import (
	"github.com/rcliao/baseline/internal/domain"
)

// AnalysisRepository records computed analyses. Implementations own all
// persistence concerns; the engines never touch storage.
type AnalysisRepository interface {
	SaveAnalysis(record *domain.AnalysisRecord) error
	GetAnalysis(id string) (*domain.AnalysisRecord, error)
	ListAnalyses(filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error)
	DeleteAnalysis(id string) error
}
