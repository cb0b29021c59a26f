package domain

// Entry is one line of a launch configuration: a command bound to a slot.
type Entry struct {
	Slot    int    `json:"slot"`              // slot id in [0, N)
	Command string `json:"command"`           // fully composed command string
	Padding bool   `json:"padding,omitempty"` // true when the slot received the no-op filler
}

// Round is one complete N-slot assignment, consumed by a single launcher
// invocation. File mode produces exactly one round; templated mode produces
// ceil(M/N) of them.
type Round struct {
	Number  int     `json:"round"`
	Entries []Entry `json:"entries"`
}

// PaddedSlots counts the entries that carry the no-op filler.
func (r Round) PaddedSlots() int {
	count := 0
	for _, e := range r.Entries {
		if e.Padding {
			count++
		}
	}
	return count
}
