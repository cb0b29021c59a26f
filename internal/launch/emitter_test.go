package launch

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"mprog/internal/domain"
)

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()

	entries := []domain.Entry{
		{Slot: 0, Command: "./sim a"},
		{Slot: 1, Command: "./sim b"},
		{Slot: 2, Command: "true", Padding: true},
	}

	path := filepath.Join(dir, "round_0.conf")
	if err := WriteConfig(path, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	seen := make(map[int]bool)
	for i, line := range lines {
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			t.Fatalf("line %d is not \"<slot> <command>\": %q", i, line)
		}
		slot, err := strconv.Atoi(fields[0])
		if err != nil {
			t.Fatalf("line %d has non-integer slot id: %q", i, line)
		}
		if seen[slot] {
			t.Errorf("duplicate slot id %d", slot)
		}
		seen[slot] = true
		if slot != i {
			t.Errorf("expected slot id %d on line %d, got %d", i, i, slot)
		}
	}
}

func TestWriteConfig_SlotGap(t *testing.T) {
	entries := []domain.Entry{
		{Slot: 0, Command: "a"},
		{Slot: 2, Command: "b"},
	}
	if err := WriteConfig(filepath.Join(t.TempDir(), "bad.conf"), entries); err == nil {
		t.Error("expected error for a gap in slot ids")
	}
}

func TestWriteConfig_TokenExpansion(t *testing.T) {
	dir := t.TempDir()
	entries := []domain.Entry{
		{Slot: 0, Command: "/bin/sh /work/slot_%t.sh"},
		{Slot: 1, Command: "/bin/sh /work/slot_%t.sh"},
	}

	path := filepath.Join(dir, "round_0.conf")
	if err := WriteConfig(path, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	expected := "0 /bin/sh /work/slot_0.sh\n1 /bin/sh /work/slot_1.sh\n"
	if string(data) != expected {
		t.Errorf("expected %q, got %q", expected, string(data))
	}
}

func TestExpandSlot(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		slot     int
		expected string
	}{
		{name: "token replaced", command: "sh slot_%t.sh", slot: 3, expected: "sh slot_3.sh"},
		{name: "no token", command: "./sim a", slot: 1, expected: "./sim a"},
		{name: "multiple tokens", command: "%t > out_%t.log", slot: 2, expected: "2 > out_2.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandSlot(tt.command, tt.slot); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
