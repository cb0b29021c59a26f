package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Workdir manages the working directory holding per-slot scripts and launch
// configuration files. The directory is keyed by allocation id and reused
// across invocations under the same id.
type Workdir struct {
	Path string
}

// Prepare clears any stale state left by a previous run under the same
// allocation id and recreates the directory. Script and configuration names
// derive purely from slot and round indexes, so leftovers would otherwise be
// picked up by the launcher.
func (w *Workdir) Prepare() error {
	if err := os.RemoveAll(w.Path); err != nil {
		return fmt.Errorf("clear stale working directory %s: %w", w.Path, err)
	}
	if err := os.MkdirAll(w.Path, 0755); err != nil {
		return fmt.Errorf("create working directory %s: %w", w.Path, err)
	}
	return nil
}

// ScriptPath returns the script path for slot.
func (w *Workdir) ScriptPath(slot int) string {
	return filepath.Join(w.Path, fmt.Sprintf("slot_%d.sh", slot))
}

// ScriptPattern returns the script path with the slot wildcard token in
// place of a concrete slot id.
func (w *Workdir) ScriptPattern() string {
	return filepath.Join(w.Path, fmt.Sprintf("slot_%s.sh", SlotToken))
}

// ConfigPath returns the configuration file path for round.
func (w *Workdir) ConfigPath(round int) string {
	return filepath.Join(w.Path, fmt.Sprintf("round_%d.conf", round))
}

// WriteScripts writes one multi-line script per slot that has work and
// returns the launcher commands, one per slot in slot order. A slot without
// work yields the empty string, to be filled by the padding step. Each
// command delegates to that slot's script through the wildcard pattern.
func (w *Workdir) WriteScripts(distribution [][]string, shell string) ([]string, error) {
	commands := make([]string, len(distribution))
	for slot, lines := range distribution {
		if len(lines) == 0 {
			continue
		}
		script := "#!/bin/sh\n" + strings.Join(lines, "\n") + "\n"
		path := w.ScriptPath(slot)
		if err := os.WriteFile(path, []byte(script), 0755); err != nil {
			return nil, fmt.Errorf("write slot script %s: %w", path, err)
		}
		commands[slot] = shell + " " + w.ScriptPattern()
	}
	return commands, nil
}
