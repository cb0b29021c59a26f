package launch

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"mprog/internal/domain"
)

// SlotToken is the wildcard the launcher substitutes with the slot id in
// per-slot script paths. The emitter expands it eagerly so every line of the
// configuration is literal.
const SlotToken = "%t"

// WriteConfig serializes one round into the launcher's configuration format:
// one line per slot, "<slot-id> <command>", slot ids contiguous from 0. The
// launcher rejects, or misassigns programs for, anything else.
func WriteConfig(path string, entries []domain.Entry) error {
	var b strings.Builder
	for i, e := range entries {
		if e.Slot != i {
			return fmt.Errorf("slot ids must be contiguous from 0: entry %d carries slot %d", i, e.Slot)
		}
		b.WriteString(strconv.Itoa(e.Slot))
		b.WriteByte(' ')
		b.WriteString(ExpandSlot(e.Command, e.Slot))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write launch configuration %s: %w", path, err)
	}
	return nil
}

// ExpandSlot replaces the slot wildcard token in command with the slot id.
func ExpandSlot(command string, slot int) string {
	return strings.ReplaceAll(command, SlotToken, strconv.Itoa(slot))
}
