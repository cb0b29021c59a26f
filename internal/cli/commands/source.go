package commands

import (
	"fmt"
	"os"

	"mprog/internal/config"
	"mprog/internal/tasks"
)

// sourceMode selects how the positional arguments become tasks
type sourceMode int

const (
	// modeFile reads tasks from a command file, one per line
	modeFile sourceMode = iota
	// modeTemplate combines a command template with trailing arguments
	modeTemplate
	// modeReplicate runs the same command on every slot
	modeReplicate
)

// resolveTasks decides between file, templated and replicate mode from the
// positional arguments and produces the ordered task list. A single argument
// names a command file when it exists; otherwise it must resolve to an
// executable on the search path and is replicated to every slot.
func resolveTasks(cfg *config.Config, args []string, slotCount int) (sourceMode, []string, error) {
	src := tasks.NewSource(cfg.Flags.BareParams, cfg.Flags.StrictArgs, cfg.Flags.Verbose)

	if len(args) > 1 {
		list, err := src.FromTemplate(args[0], args[1:])
		return modeTemplate, list, err
	}

	arg := args[0]
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		list, err := src.FromFile(arg)
		return modeFile, list, err
	}
	if tasks.Resolvable(arg) {
		return modeReplicate, src.Replicate(arg, slotCount), nil
	}
	return modeFile, nil, fmt.Errorf("command file %s not found and not resolvable on the search path", arg)
}
