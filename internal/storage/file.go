package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rcliao/baseline/internal/domain"
)

// FileStore persists analysis records as JSON documents under
// <basePath>/.baseline/analyses. The engine itself stays storage-free;
// this backs the CLI so results survive between invocations.
type FileStore struct {
	basePath string
	mu       sync.RWMutex
}

func NewFileStore(basePath string) (*FileStore, error) {
	fs := &FileStore{basePath: basePath}

	if err := os.MkdirAll(fs.analysesDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) analysesDir() string {
	return filepath.Join(fs.basePath, ".baseline", "analyses")
}

func (fs *FileStore) recordPath(id string) string {
	return filepath.Join(fs.analysesDir(), id+".json")
}

func (fs *FileStore) SaveAnalysis(record *domain.AnalysisRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := fs.recordPath(record.ID)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("analysis with ID %s already exists", record.ID)
	}

	return fs.saveJSON(path, record)
}

func (fs *FileStore) GetAnalysis(id string) (*domain.AnalysisRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(fs.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("analysis with ID %s not found", id)
		}
		return nil, err
	}

	var record domain.AnalysisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}

	return &record, nil
}

func (fs *FileStore) ListAnalyses(filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	entries, err := os.ReadDir(fs.analysesDir())
	if err != nil {
		return nil, err
	}

	result := make([]*domain.AnalysisRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(fs.analysesDir(), entry.Name()))
		if err != nil {
			continue
		}

		var record domain.AnalysisRecord
		if err := json.Unmarshal(data, &record); err != nil {
			continue
		}
		if filter.Kind != nil && record.Kind != *filter.Kind {
			continue
		}

		result = append(result, &record)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (fs *FileStore) DeleteAnalysis(id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path := fs.recordPath(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("analysis with ID %s not found", id)
	}

	return os.Remove(path)
}

func (fs *FileStore) saveJSON(path string, data interface{}) error {
	tempPath := path + ".tmp"

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, encoded, 0644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}
