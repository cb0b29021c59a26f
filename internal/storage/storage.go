package storage

import (
	"mprog/internal/config"
	"mprog/internal/domain"
)

// Storage persists and loads launch reports (e.g. for the report viewer).
type Storage interface {
	Save(report *domain.LaunchReport) error
	Load() (*domain.LaunchReport, error)
}

// JSONStorage stores launch reports in a JSON file under the configured
// report path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's report
// path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
