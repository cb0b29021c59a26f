package slurm

import (
	"testing"
)

func clearSlurmEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SLURM_JOB_ID", "SLURM_JOBID", "SLURM_NTASKS", "SLURM_CPUS_ON_NODE", "SLURM_JOB_NODELIST"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_NoAllocation(t *testing.T) {
	clearSlurmEnv(t)

	if _, err := FromEnv(); err == nil {
		t.Error("expected error without SLURM_JOB_ID")
	}
}

func TestFromEnv_ExplicitTaskCount(t *testing.T) {
	clearSlurmEnv(t)
	t.Setenv("SLURM_JOB_ID", "424242")
	t.Setenv("SLURM_NTASKS", "16")

	ctx, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.JobID != "424242" {
		t.Errorf("expected job id 424242, got %s", ctx.JobID)
	}

	n, err := ctx.SlotCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 16 {
		t.Errorf("expected 16 slots, got %d", n)
	}
}

func TestFromEnv_LegacyJobIDVariable(t *testing.T) {
	clearSlurmEnv(t)
	t.Setenv("SLURM_JOBID", "7")

	ctx, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.JobID != "7" {
		t.Errorf("expected job id 7, got %s", ctx.JobID)
	}
}

func TestSlotCount_DerivedFromNodeList(t *testing.T) {
	clearSlurmEnv(t)
	t.Setenv("SLURM_JOB_ID", "99")
	t.Setenv("SLURM_CPUS_ON_NODE", "8")
	t.Setenv("SLURM_JOB_NODELIST", "nid[001-004]")

	ctx, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := ctx.SlotCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 32 {
		t.Errorf("expected 8 cpus x 4 nodes = 32 slots, got %d", n)
	}
}

func TestSlotCount_Unresolvable(t *testing.T) {
	ctx := &Context{JobID: "1"}

	if _, err := ctx.SlotCount(); err == nil {
		t.Error("expected error when neither task count nor node list is available")
	}
}

func TestFromEnv_BadTaskCount(t *testing.T) {
	clearSlurmEnv(t)
	t.Setenv("SLURM_JOB_ID", "5")
	t.Setenv("SLURM_NTASKS", "many")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for non-numeric SLURM_NTASKS")
	}
}
