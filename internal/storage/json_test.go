package storage

import (
	"testing"

	"mprog/internal/config"
	"mprog/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ReportDir = t.TempDir()

	st := NewJSONStorage(cfg)

	report := &domain.LaunchReport{
		Meta: domain.LaunchMeta{
			RunID:    "f3b7c9a0-0000-0000-0000-000000000000",
			JobID:    "123456",
			Slots:    3,
			Tasks:    6,
			Rounds:   1,
			ExitCode: 0,
		},
		Rounds: []domain.Round{
			{
				Number: 0,
				Entries: []domain.Entry{
					{Slot: 0, Command: "/bin/sh /work/slot_0.sh"},
					{Slot: 1, Command: "/bin/sh /work/slot_1.sh"},
					{Slot: 2, Command: "true", Padding: true},
				},
			},
		},
	}

	if err := st.Save(report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Meta.JobID != "123456" || loaded.Meta.Slots != 3 {
		t.Errorf("meta not round-tripped: %+v", loaded.Meta)
	}
	if len(loaded.Rounds) != 1 || len(loaded.Rounds[0].Entries) != 3 {
		t.Fatalf("rounds not round-tripped: %+v", loaded.Rounds)
	}
	if !loaded.Rounds[0].Entries[2].Padding {
		t.Error("padding flag should survive the round trip")
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.ReportDir = t.TempDir()

	st := NewJSONStorage(cfg)
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no report has been saved")
	}
}
