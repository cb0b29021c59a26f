package cli

import "mprog/internal/config"

// Flags holds command-line flags
type Flags struct {
	Threads    int
	Delay      bool
	BareParams bool
	StrictArgs bool
	Slots      int
	EnvFile    string
	Verbose    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Threads:    f.Threads,
		Delay:      f.Delay,
		BareParams: f.BareParams,
		StrictArgs: f.StrictArgs,
		Slots:      f.Slots,
		EnvFile:    f.EnvFile,
		Verbose:    f.Verbose,
	}
}
