package commands

import (
	"context"
	"fmt"
	"time"

	"mprog/internal/config"
	"mprog/internal/distribute"
	"mprog/internal/domain"
	"mprog/internal/launch"
	"mprog/internal/slurm"
	"mprog/internal/storage"
	"mprog/internal/tasks"
	"mprog/internal/ui"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// LaunchCommand handles the launch command
type LaunchCommand struct {
	config    *config.Config
	scheduler distribute.Scheduler
	invoker   *launch.Invoker
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewLaunchCommand creates a new LaunchCommand
func NewLaunchCommand(
	cfg *config.Config,
	scheduler distribute.Scheduler,
	invoker *launch.Invoker,
	st storage.Storage,
	formatter *ui.Formatter,
) *LaunchCommand {
	return &LaunchCommand{
		config:    cfg,
		scheduler: scheduler,
		invoker:   invoker,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *LaunchCommand) Execute(cmd *cobra.Command, args []string) error {
	allocation, err := slurm.FromEnv()
	if err != nil {
		return err
	}

	slots := lc.config.Flags.Slots
	if slots <= 0 {
		slots, err = allocation.SlotCount()
		if err != nil {
			return err
		}
	}

	mode, taskList, err := resolveTasks(lc.config, args, slots)
	if err != nil {
		return err
	}
	if len(taskList) == 0 {
		color.Yellow("No tasks to launch")
		return nil
	}

	if !tasks.AnyRedirection(taskList) {
		color.Yellow("Warning: no output redirection detected in any task; slot output will interleave")
	}

	workdir := &launch.Workdir{Path: lc.config.Workdir(allocation.JobID)}
	if err := workdir.Prepare(); err != nil {
		return err
	}

	rounds, err := lc.buildRounds(mode, taskList, slots, workdir)
	if err != nil {
		return err
	}

	padded := 0
	for _, round := range rounds {
		padded += round.PaddedSlots()
	}
	if padded > 0 {
		color.Yellow("Warning: %d slot(s) have no work and were padded with %q", padded, lc.config.Noop)
	}

	if lc.config.Flags.Verbose {
		fmt.Printf("job %s: %d task(s) over %d slot(s) in %d round(s), workdir %s\n",
			allocation.JobID, len(taskList), slots, len(rounds), workdir.Path)
	}

	// Rounds run strictly one after another; the launcher owns all
	// parallelism within a round.
	startTime := time.Now()
	exitCode := 0
	succeeded, failed := 0, 0
	var progress *ui.ProgressBar
	if len(rounds) > 1 {
		progress = ui.NewProgressBar(len(rounds))
	}
	ctx := context.Background()
	for _, round := range rounds {
		configPath := workdir.ConfigPath(round.Number)
		if err := launch.WriteConfig(configPath, round.Entries); err != nil {
			return err
		}
		code, err := lc.invoker.Run(ctx, configPath, lc.config.Flags.Threads)
		if err != nil {
			return err
		}
		if code != 0 {
			exitCode = code
			failed++
		} else {
			succeeded++
		}
		if progress != nil {
			progress.Update(succeeded+failed, succeeded, failed)
		}
	}
	if progress != nil {
		progress.Finish()
	}
	duration := time.Since(startTime)

	report := &domain.LaunchReport{
		Meta: domain.LaunchMeta{
			RunID:           uuid.NewString(),
			JobID:           allocation.JobID,
			Slots:           slots,
			Tasks:           len(taskList),
			Rounds:          len(rounds),
			PaddedSlots:     padded,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			ExitCode:        exitCode,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Rounds: rounds,
	}
	if err := lc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save launch report: %w", err)
	}

	lc.formatter.PrintSummary(report)

	// The launcher's failure is opaque; its status is surfaced, not
	// interpreted.
	if exitCode != 0 {
		return fmt.Errorf("launcher exited with status %d", exitCode)
	}
	return nil
}

// buildRounds turns the task list into complete launcher rounds. File mode
// writes per-slot scripts and delegates to them in a single round; the
// other modes emit the composed commands directly, one round per slot-count
// tasks.
func (lc *LaunchCommand) buildRounds(mode sourceMode, taskList []string, slots int, workdir *launch.Workdir) ([]domain.Round, error) {
	delayer := distribute.NewDelayer(lc.config.DelayStep)

	if mode == modeFile {
		distribution := lc.scheduler.Schedule(taskList, slots)
		commands, err := workdir.WriteScripts(distribution, lc.config.Shell)
		if err != nil {
			return nil, err
		}
		entries := distribute.Pad(commands, slots, lc.config.Noop)
		if lc.config.Flags.Delay {
			entries = delayer.Stagger(entries)
		}
		return []domain.Round{{Number: 0, Entries: entries}}, nil
	}

	var rounds []domain.Round
	for r, chunk := range lc.scheduler.Rounds(taskList, slots) {
		entries := distribute.Pad(chunk, slots, lc.config.Noop)
		if lc.config.Flags.Delay {
			entries = delayer.Stagger(entries)
		}
		rounds = append(rounds, domain.Round{Number: r, Entries: entries})
	}
	return rounds, nil
}
