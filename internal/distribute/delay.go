package distribute

import (
	"fmt"

	"mprog/internal/domain"
)

// Delayer staggers per-slot startup. Some executables crash when many
// instances start in the same instant and race for a shared-memory lock;
// a small per-slot offset removes the race without touching the executable.
type Delayer struct {
	Step float64 // seconds added per slot index
}

// NewDelayer creates a Delayer with the given per-slot step.
func NewDelayer(step float64) *Delayer {
	return &Delayer{Step: step}
}

// Stagger prefixes every entry's command with a sleep proportional to its
// slot index. The offset is a function of the slot index only, never of the
// task content.
func (d *Delayer) Stagger(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	for i, e := range entries {
		e.Command = fmt.Sprintf("sleep %.1f && %s", float64(e.Slot)*d.Step, e.Command)
		out[i] = e
	}
	return out
}
