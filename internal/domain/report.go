package domain

// LaunchMeta contains metadata about a launch
type LaunchMeta struct {
	RunID           string  `json:"run_id"`
	JobID           string  `json:"job_id"`
	Slots           int     `json:"slots"`
	Tasks           int     `json:"tasks"`
	Rounds          int     `json:"rounds"`
	PaddedSlots     int     `json:"padded_slots"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	ExitCode        int     `json:"exit_code"`
	Timestamp       string  `json:"timestamp"`
}

// LaunchReport is the complete record of one launch, persisted for the
// report viewer.
type LaunchReport struct {
	Meta   LaunchMeta `json:"meta"`
	Rounds []Round    `json:"rounds"`
}
