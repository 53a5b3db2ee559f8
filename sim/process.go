// Defines the Process descriptor that models a simulated process.
// Tracks identity, burst requirements, logical arrival time, lifecycle state,
// and the timing metrics filled in as scheduling policies run.

package sim

import "fmt"

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "NEW"
	StateReady      ProcessState = "READY"
	StateRunning    ProcessState = "RUNNING"
	StateWaiting    ProcessState = "WAITING" // reserved for blocking I/O; no dispatch policy reaches it
	StateTerminated ProcessState = "TERMINATED"
)

// Process models a single process's lifecycle in the simulation.
// Times are logical ticks, never wall-clock.
//
// Invariants maintained by the scheduler:
//   - RemainingTime stays in [0, BurstTime]
//   - WaitingTime >= 0
//   - TurnaroundTime == completion clock - ArrivalTime once TERMINATED
type Process struct {
	PID      int    // Unique identifier
	Name     string // Display name
	Priority int    // Scheduling priority (carried, not used by the policies in scope)

	BurstTime   int64 // Total CPU time required to complete
	ArrivalTime int64 // Logical tick when the process arrives

	State          ProcessState
	WaitingTime    int64 // Accumulated time spent waiting, set at finalization
	TurnaroundTime int64 // Completion - arrival, set at finalization
	RemainingTime  int64 // Burst time not yet executed; decremented by round-robin
}

// NewProcess creates a Process in state NEW with RemainingTime seeded
// from the burst time.
func NewProcess(pid int, name string, priority int, burstTime, arrivalTime int64) *Process {
	return &Process{
		PID:           pid,
		Name:          name,
		Priority:      priority,
		BurstTime:     burstTime,
		ArrivalTime:   arrivalTime,
		State:         StateNew,
		RemainingTime: burstTime,
	}
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Name: %s, State: %s, Burst: %d, Arrival: %d)",
		p.PID, p.Name, p.State, p.BurstTime, p.ArrivalTime)
}
