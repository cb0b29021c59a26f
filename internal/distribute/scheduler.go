package distribute

// Scheduler distributes tasks across execution slots
type Scheduler interface {
	Schedule(tasks []string, slotCount int) [][]string
	Rounds(tasks []string, slotCount int) [][]string
}

// RoundRobinScheduler distributes tasks cyclically by index modulo slot
// count. Stateless and deterministic; no load awareness.
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule assigns task k to slot k mod slotCount, preserving source order
// within each slot. Used in file mode, where a slot may carry several tasks
// in its own script. Per-slot counts differ by at most one.
func (s *RoundRobinScheduler) Schedule(tasks []string, slotCount int) [][]string {
	if slotCount <= 0 {
		slotCount = 1
	}

	distribution := make([][]string, slotCount)
	for i := range distribution {
		distribution[i] = make([]string, 0)
	}

	for i, task := range tasks {
		slot := i % slotCount
		distribution[slot] = append(distribution[slot], task)
	}

	return distribution
}

// Rounds splits tasks into ceil(M/N) successive groups of at most slotCount
// tasks each. Used in templated mode, where every slot runs exactly one
// command per launcher round; each round becomes one launcher invocation.
// An empty task list still yields one (empty) round so the padding step can
// produce a complete configuration.
func (s *RoundRobinScheduler) Rounds(tasks []string, slotCount int) [][]string {
	if slotCount <= 0 {
		slotCount = 1
	}

	var rounds [][]string
	for start := 0; start < len(tasks); start += slotCount {
		end := start + slotCount
		if end > len(tasks) {
			end = len(tasks)
		}
		rounds = append(rounds, tasks[start:end])
	}
	if len(rounds) == 0 {
		rounds = append(rounds, nil)
	}
	return rounds
}
