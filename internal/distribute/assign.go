package distribute

import (
	"mprog/internal/domain"
)

// Pad turns at most slotCount commands into exactly slotCount entries with
// contiguous slot ids. Slots beyond the command list, and slots whose
// command is empty, receive the noop filler so every slot in [0, N) carries
// a program before serialization.
func Pad(commands []string, slotCount int, noop string) []domain.Entry {
	entries := make([]domain.Entry, slotCount)
	for i := 0; i < slotCount; i++ {
		cmd := ""
		if i < len(commands) {
			cmd = commands[i]
		}
		if cmd == "" {
			entries[i] = domain.Entry{Slot: i, Command: noop, Padding: true}
		} else {
			entries[i] = domain.Entry{Slot: i, Command: cmd}
		}
	}
	return entries
}
