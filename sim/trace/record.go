// Package trace provides per-step trace recording for engine runs.
// This package has no dependencies on sim/ -- it stores pure data types.
package trace

// DispatchRecord captures a single CPU dispatch decision.
type DispatchRecord struct {
	PID      int
	Name     string
	Clock    int64 // logical time after the dispatch
	Duration int64 // ticks executed in this dispatch
	Requeued bool  // true when the process went back to READY (round-robin)
}

// ExtentRecord captures a single allocator split or merge.
type ExtentRecord struct {
	Op      string // "split" or "merge"
	Address int64
	Size    int64
}

// SeekRecord captures a single disk head movement.
type SeekRecord struct {
	From     int
	To       int
	Distance int
}

// SafetyRecord captures one deadlock-detection verdict.
type SafetyRecord struct {
	Safe         bool
	SafeSequence []int
	Deadlocked   []int
}
