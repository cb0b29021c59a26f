package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Launcher settings
	Launcher string
	Shell    string
	Noop     string

	// Per-slot startup stagger in seconds
	DelayStep float64

	// Working directory settings
	WorkRoot      string
	WorkdirPrefix string

	// Report output settings
	ReportDir  string
	ReportFile string

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Launcher:      DefaultLauncher,
		Shell:         DefaultShell,
		Noop:          DefaultNoop,
		DelayStep:     DefaultDelayStep,
		WorkRoot:      defaultWorkRoot(),
		WorkdirPrefix: DefaultWorkdirPrefix,
		ReportDir:     DefaultReportDir,
		ReportFile:    DefaultReportFile,
	}
}

// Load creates a config, applies flags and loads the optional env file
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	cfg.LoadEnv()
	return cfg
}

// LoadEnv loads the env file named by the flags, or ".env" when none was
// given. A missing file is fine - the allocation context usually comes from
// the real environment.
func (c *Config) LoadEnv() {
	if c.Flags.EnvFile != "" {
		_ = godotenv.Load(c.Flags.EnvFile)
		return
	}
	_ = godotenv.Load()
}

// defaultWorkRoot prefers the allocation scratch space when one is configured
func defaultWorkRoot() string {
	if scratch := os.Getenv("SCRATCH"); scratch != "" {
		return scratch
	}
	return os.TempDir()
}

// Workdir returns the working directory for the given allocation id. Script
// and configuration paths inside it derive purely from slot and round
// indexes, so the directory is exclusive to one allocation at a time.
func (c *Config) Workdir(jobID string) string {
	return filepath.Join(c.WorkRoot, fmt.Sprintf("%s_%s", c.WorkdirPrefix, jobID))
}

// ReportPath returns the full path to the launch report file.
// Resolves to an absolute path so launch and report always read/write the
// same file regardless of cwd.
func (c *Config) ReportPath() string {
	p := filepath.Join(c.ReportDir, c.ReportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
