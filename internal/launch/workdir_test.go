package launch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWorkdir_PrepareClearsStaleFiles(t *testing.T) {
	base := t.TempDir()
	wd := &Workdir{Path: filepath.Join(base, "mprog_123")}

	if err := os.MkdirAll(wd.Path, 0755); err != nil {
		t.Fatal(err)
	}
	stale := wd.ScriptPath(0)
	if err := os.WriteFile(stale, []byte("#!/bin/sh\necho stale\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := wd.Prepare(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale slot script should have been removed")
	}
	if info, err := os.Stat(wd.Path); err != nil || !info.IsDir() {
		t.Error("working directory should exist after Prepare")
	}
}

func TestWorkdir_WriteScripts(t *testing.T) {
	wd := &Workdir{Path: t.TempDir()}

	distribution := [][]string{
		{"./sim a", "./sim d"},
		{"./sim b"},
		{},
	}

	commands, err := wd.WriteScripts(distribution, "/bin/sh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(commands))
	}
	if commands[2] != "" {
		t.Errorf("empty slot should yield an empty command, got %q", commands[2])
	}
	if !strings.Contains(commands[0], "slot_"+SlotToken+".sh") {
		t.Errorf("command should reference the wildcard script pattern, got %q", commands[0])
	}

	data, err := os.ReadFile(wd.ScriptPath(0))
	if err != nil {
		t.Fatalf("read slot script: %v", err)
	}
	expected := "#!/bin/sh\n./sim a\n./sim d\n"
	if string(data) != expected {
		t.Errorf("expected script %q, got %q", expected, string(data))
	}

	info, err := os.Stat(wd.ScriptPath(1))
	if err != nil {
		t.Fatalf("stat slot script: %v", err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Error("slot script should be executable")
	}

	if _, err := os.Stat(wd.ScriptPath(2)); !os.IsNotExist(err) {
		t.Error("no script should be written for an empty slot")
	}
}

func TestWorkdir_Paths(t *testing.T) {
	wd := &Workdir{Path: "/work/mprog_5"}

	if got := wd.ScriptPath(4); got != "/work/mprog_5/slot_4.sh" {
		t.Errorf("unexpected script path %s", got)
	}
	if got := wd.ConfigPath(2); got != "/work/mprog_5/round_2.conf" {
		t.Errorf("unexpected config path %s", got)
	}
}
