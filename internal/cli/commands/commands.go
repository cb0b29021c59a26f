package commands

import (
	"mprog/internal/cli"
	"mprog/internal/config"
	"mprog/internal/distribute"
	"mprog/internal/launch"
	"mprog/internal/storage"
	"mprog/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Launch *LaunchCommand
	Plan   *PlanCommand
	Report *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scheduler := distribute.NewRoundRobinScheduler()
	invoker := launch.NewInvoker(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	reportViewer := ui.NewReportViewer(cfg)

	return &Commands{
		Launch: NewLaunchCommand(cfg, scheduler, invoker, jsonStorage, formatter),
		Plan:   NewPlanCommand(cfg, scheduler, formatter),
		Report: NewReportCommand(cfg, jsonStorage, reportViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		cfg.LoadEnv()
		return nil
	}

	// Launch command
	launchCmd := &cobra.Command{
		Use:   "launch <command-file | template> [file or parameter ...]",
		Short: "Distribute tasks across the allocation and launch them",
		Long: `Read tasks from a command file (one shell command per line), or combine a
command template with trailing file/parameter arguments, distribute them
round-robin over the allocation's execution slots and hand the resulting
multi-prog configuration to the launcher. A single argument that is not a
file but resolves on the search path is replicated to every slot.`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    c.Launch.Execute,
		PreRunE: applyFlags,
	}
	launchCmd.Flags().IntVarP(&flags.Threads, "threads", "T", 0, "Worker threads per task (sets OMP_NUM_THREADS and the launcher's cpu hint)")
	launchCmd.Flags().BoolVarP(&flags.Delay, "delay", "d", false, "Stagger slot startup by 0.1s per slot index")
	launchCmd.Flags().BoolVarP(&flags.BareParams, "params", "b", false, "Treat trailing arguments as bare parameters rather than files")
	launchCmd.Flags().BoolVar(&flags.StrictArgs, "strict-args", false, "Fail on a missing file argument instead of skipping it")
	launchCmd.Flags().IntVarP(&flags.Slots, "slots", "n", 0, "Override the slot count resolved from the allocation")
	launchCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Env file to load before resolving the allocation context")
	launchCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.AddCommand(launchCmd)

	// Plan command
	planCmd := &cobra.Command{
		Use:     "plan <command-file | template> [file or parameter ...]",
		Short:   "Show the slot assignment without launching",
		Long:    "Compute and display the round-robin assignment, padding and delays without touching the working directory or invoking the launcher",
		Args:    cobra.MinimumNArgs(1),
		RunE:    c.Plan.Execute,
		PreRunE: applyFlags,
	}
	planCmd.Flags().BoolVarP(&flags.Delay, "delay", "d", false, "Stagger slot startup by 0.1s per slot index")
	planCmd.Flags().BoolVarP(&flags.BareParams, "params", "b", false, "Treat trailing arguments as bare parameters rather than files")
	planCmd.Flags().BoolVar(&flags.StrictArgs, "strict-args", false, "Fail on a missing file argument instead of skipping it")
	planCmd.Flags().IntVarP(&flags.Slots, "slots", "n", 0, "Slot count to plan for (skips allocation lookup)")
	planCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Env file to load before resolving the allocation context")
	planCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.AddCommand(planCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "View the last launch report interactively",
		Long:    "Display the rounds and slot assignments of the last launch in an interactive viewer",
		RunE:    c.Report.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(reportCmd)
}
