package storage

import (
	"fmt"
	"sync"

	"github.com/rcliao/baseline/internal/domain"
)

// MemoryStore keeps analysis records in process memory. It exists so callers
// can track repeated engine invocations through an injected repository
// instead of module-level state.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*domain.AnalysisRecord
	order   []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*domain.AnalysisRecord),
	}
}

func (ms *MemoryStore) SaveAnalysis(record *domain.AnalysisRecord) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.records[record.ID]; exists {
		return fmt.Errorf("analysis with ID %s already exists", record.ID)
	}

	ms.records[record.ID] = record
	ms.order = append(ms.order, record.ID)
	return nil
}

func (ms *MemoryStore) GetAnalysis(id string) (*domain.AnalysisRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	record, exists := ms.records[id]
	if !exists {
		return nil, fmt.Errorf("analysis with ID %s not found", id)
	}

	return record, nil
}

func (ms *MemoryStore) ListAnalyses(filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	result := make([]*domain.AnalysisRecord, 0, len(ms.order))
	for _, id := range ms.order {
		record := ms.records[id]
		if filter.Kind != nil && record.Kind != *filter.Kind {
			continue
		}
		result = append(result, record)
	}

	return result, nil
}

func (ms *MemoryStore) DeleteAnalysis(id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.records[id]; !exists {
		return fmt.Errorf("analysis with ID %s not found", id)
	}

	delete(ms.records, id)
	for i, recorded := range ms.order {
		if recorded == id {
			ms.order = append(ms.order[:i], ms.order[i+1:]...)
			break
		}
	}
	return nil
}
