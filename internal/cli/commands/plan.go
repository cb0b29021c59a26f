package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"mprog/internal/config"
	"mprog/internal/distribute"
	"mprog/internal/domain"
	"mprog/internal/slurm"
	"mprog/internal/ui"
)

// PlanCommand handles the plan command
type PlanCommand struct {
	config    *config.Config
	scheduler distribute.Scheduler
	formatter *ui.Formatter
}

// NewPlanCommand creates a new PlanCommand
func NewPlanCommand(
	cfg *config.Config,
	scheduler distribute.Scheduler,
	formatter *ui.Formatter,
) *PlanCommand {
	return &PlanCommand{
		config:    cfg,
		scheduler: scheduler,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *PlanCommand) Execute(cmd *cobra.Command, args []string) error {
	// With --slots the plan needs no allocation at all, which makes dry
	// runs on a login node possible.
	slots := pc.config.Flags.Slots
	if slots <= 0 {
		allocation, err := slurm.FromEnv()
		if err != nil {
			return err
		}
		slots, err = allocation.SlotCount()
		if err != nil {
			return err
		}
	}

	mode, taskList, err := resolveTasks(pc.config, args, slots)
	if err != nil {
		return err
	}
	if len(taskList) == 0 {
		color.Yellow("No tasks to plan")
		return nil
	}

	if mode == modeFile {
		pc.formatter.PrintFilePlan(pc.scheduler.Schedule(taskList, slots))
		return nil
	}

	delayer := distribute.NewDelayer(pc.config.DelayStep)
	var rounds []domain.Round
	for r, chunk := range pc.scheduler.Rounds(taskList, slots) {
		entries := distribute.Pad(chunk, slots, pc.config.Noop)
		if pc.config.Flags.Delay {
			entries = delayer.Stagger(entries)
		}
		rounds = append(rounds, domain.Round{Number: r, Entries: entries})
	}
	pc.formatter.PrintRounds(rounds)
	return nil
}
