package main

import (
	"fmt"
	"os"

	"mprog/internal/cli"
	"mprog/internal/cli/commands"
	"mprog/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "mprog",
		Short:   "Multi-prog task distributor for Slurm allocations",
		Long:    `Distributes an arbitrary list of shell commands over the execution slots of an active Slurm allocation and launches them through srun --multi-prog, working around the launcher's one-program-per-slot configuration format.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
