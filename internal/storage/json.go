package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mprog/internal/domain"
)

// Save writes the launch report to the configured JSON report file.
func (s *JSONStorage) Save(report *domain.LaunchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal launch report: %w", err)
	}

	path := s.cfg.ReportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write launch report: %w", err)
	}
	return nil
}

// Load reads the last launch report from the configured JSON report file.
func (s *JSONStorage) Load() (*domain.LaunchReport, error) {
	path := s.cfg.ReportPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read launch report: %w", err)
	}
	var report domain.LaunchReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse launch report: %w", err)
	}
	return &report, nil
}
