package ui

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"mprog/internal/config"
	"mprog/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintFilePlan prints the per-slot task distribution of file mode: each
// slot with its own multi-line script, empty slots showing the noop filler.
func (f *Formatter) PrintFilePlan(distribution [][]string) {
	total := 0
	for slot, lines := range distribution {
		if len(lines) == 0 {
			color.Yellow("slot %d: %s (padding)", slot, f.config.Noop)
			continue
		}
		color.Cyan("slot %d: %d task(s)", slot, len(lines))
		for _, line := range lines {
			fmt.Printf("    %s\n", line)
		}
		total += len(lines)
	}
	fmt.Println()
	fmt.Printf("%d task(s) over %d slot(s), one launcher invocation\n", total, len(distribution))
}

// PrintRounds prints the templated-mode assignment, one block per launcher
// round.
func (f *Formatter) PrintRounds(rounds []domain.Round) {
	for _, round := range rounds {
		color.Cyan("round %d", round.Number)
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, e := range round.Entries {
			marker := ""
			if e.Padding {
				marker = "(padding)"
			}
			fmt.Fprintf(w, "  %d\t%s\t%s\n", e.Slot, e.Command, marker)
		}
		w.Flush()
	}
	fmt.Println()
	fmt.Printf("%d launcher round(s)\n", len(rounds))
}

// PrintSummary displays launch statistics after a run
func (f *Formatter) PrintSummary(report *domain.LaunchReport) {
	meta := report.Meta

	fmt.Println()
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Job")
	color.White("%-27s │\n", meta.JobID)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Slots")
	color.White("%-27d │\n", meta.Slots)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Tasks")
	color.White("%-27d │\n", meta.Tasks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Rounds")
	color.White("%-27d │\n", meta.Rounds)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Padded Slots")
	if meta.PaddedSlots > 0 {
		color.Yellow("%-27d │\n", meta.PaddedSlots)
	} else {
		color.White("%-27d │\n", meta.PaddedSlots)
	}
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Exit Code")
	if meta.ExitCode == 0 {
		color.Green("%-27d │\n", meta.ExitCode)
	} else {
		color.Red("%-27d │\n", meta.ExitCode)
	}

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.ExitCode == 0 {
		color.Green("✓ Launcher completed successfully")
	} else {
		color.Red("✗ Launcher exited with status %d", meta.ExitCode)
	}
}
