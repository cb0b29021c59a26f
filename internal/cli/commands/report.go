package commands

import (
	"github.com/spf13/cobra"
	"mprog/internal/config"
	"mprog/internal/storage"
	"mprog/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ReportCommand {
	return &ReportCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := rc.storage.Load()
	if err != nil {
		return err
	}

	return rc.viewer.View(report)
}
