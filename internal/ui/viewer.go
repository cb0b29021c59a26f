package ui

import "mprog/internal/domain"

// Viewer displays a launch report in an interactive TUI
type Viewer interface {
	View(report *domain.LaunchReport) error
}
