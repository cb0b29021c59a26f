package slurm

import (
	"fmt"
	"os"
	"strconv"
)

// Context is the read-only execution context supplied by an active
// allocation. It is resolved once at startup and passed around explicitly
// instead of being re-read from the process environment.
type Context struct {
	JobID      string // allocation identifier, names the working directory
	NTasks     int    // explicit slot count, 0 when the variable is absent
	CPUsOnNode int    // CPUs available per node, 0 when absent
	NodeList   string // compressed hostlist, e.g. "nid[00120-00123]"
}

// FromEnv resolves the allocation context from the Slurm environment.
// Returns an error when no allocation is active.
func FromEnv() (*Context, error) {
	jobID := os.Getenv("SLURM_JOB_ID")
	if jobID == "" {
		jobID = os.Getenv("SLURM_JOBID")
	}
	if jobID == "" {
		return nil, fmt.Errorf("no active allocation: SLURM_JOB_ID is not set (run inside salloc or sbatch)")
	}

	ctx := &Context{
		JobID:    jobID,
		NodeList: os.Getenv("SLURM_JOB_NODELIST"),
	}

	if v := os.Getenv("SLURM_NTASKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse SLURM_NTASKS %q: %w", v, err)
		}
		ctx.NTasks = n
	}

	if v := os.Getenv("SLURM_CPUS_ON_NODE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse SLURM_CPUS_ON_NODE %q: %w", v, err)
		}
		ctx.CPUsOnNode = n
	}

	return ctx, nil
}

// SlotCount resolves N, the number of execution slots. An explicit task
// count wins; otherwise N = CPUs per node x node count, with the node count
// taken from the expanded node list.
func (c *Context) SlotCount() (int, error) {
	if c.NTasks > 0 {
		return c.NTasks, nil
	}
	if c.CPUsOnNode > 0 && c.NodeList != "" {
		nodes, err := ExpandHostlist(c.NodeList)
		if err != nil {
			return 0, fmt.Errorf("expand node list %q: %w", c.NodeList, err)
		}
		if len(nodes) > 0 {
			return c.CPUsOnNode * len(nodes), nil
		}
	}
	return 0, fmt.Errorf("cannot resolve slot count: neither SLURM_NTASKS nor SLURM_CPUS_ON_NODE with SLURM_JOB_NODELIST is available")
}
