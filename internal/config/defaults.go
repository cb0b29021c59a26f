package config

const (
	// DefaultLauncher is the external multi-program launcher binary
	DefaultLauncher = "srun"
	// DefaultShell is the interpreter for per-slot scripts in file mode
	DefaultShell = "/bin/sh"
	// DefaultNoop is the filler command for slots left without work
	DefaultNoop = "true"
	// DefaultDelayStep is the per-slot startup stagger in seconds
	DefaultDelayStep = 0.1
	// DefaultWorkdirPrefix names the per-allocation working directory
	DefaultWorkdirPrefix = "mprog"
	// DefaultReportDir is the directory holding the launch report
	DefaultReportDir = ".mprog"
	// DefaultReportFile is the launch report file name
	DefaultReportFile = "launch-report.json"
)
