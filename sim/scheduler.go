// Implements the CPU scheduling engine: a pool of admitted processes, a
// monotonically increasing logical clock, and the selectable dispatch
// policies (FCFS, SJF, round-robin) that drain the pool into a completed
// collection while filling in per-process timing metrics.

package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/os-sim/os-sim/sim/trace"
)

// Scheduler holds the ready and completed process collections and owns the
// logical clock. The clock is advanced only by dispatch operations, never
// by wall-clock time. Not safe for concurrent use; callers embedding the
// engine must serialize access per instance.
type Scheduler struct {
	ready     ReadyQueue
	completed []*Process
	clock     int64

	// Trace is an optional observer receiving one record per dispatch.
	// Nil disables tracing; correctness never depends on it.
	Trace *trace.SimulationTrace
}

// NewScheduler creates an empty Scheduler with the clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Clock returns the current logical time in ticks.
func (s *Scheduler) Clock() int64 {
	return s.clock
}

// ReadyLen returns the number of processes awaiting dispatch.
func (s *Scheduler) ReadyLen() int {
	return s.ready.Len()
}

// Admit transitions a process to READY and appends it to the ready queue.
// The process must be in state NEW or READY; anything else wraps
// ErrInvalidArgument. Admission never touches the clock.
func (s *Scheduler) Admit(p *Process) error {
	if p == nil {
		panic("Admit: p must not be nil")
	}
	if p.State != StateNew && p.State != StateReady {
		return fmt.Errorf("%w: cannot admit process %d in state %s", ErrInvalidArgument, p.PID, p.State)
	}
	p.State = StateReady
	s.ready.Enqueue(p)
	logrus.Infof("<< Admit: process %s (PID %d) at %d ticks", p.Name, p.PID, s.clock)
	return nil
}

// runToCompletion drains the ready queue in its current order, running each
// process for its full burst. Shared by FCFS and SJF, which differ only in
// how they sort the queue beforehand.
func (s *Scheduler) runToCompletion(policy string) *ScheduleResult {
	drained := s.ready.Drain()
	for _, p := range drained {
		p.State = StateRunning
		logrus.Infof("<< Dispatch: %s for %d units at %d ticks", p.Name, p.BurstTime, s.clock)

		p.WaitingTime = s.clock - p.ArrivalTime
		s.clock += p.BurstTime
		p.TurnaroundTime = s.clock - p.ArrivalTime
		p.RemainingTime = 0

		p.State = StateTerminated
		s.completed = append(s.completed, p)
		s.recordDispatch(p, p.BurstTime, false)
	}
	return s.resultFor(policy, drained)
}

// RunFCFS runs First-Come-First-Served: the ready collection is ordered by
// arrival time ascending (stable, so admission order breaks ties) and each
// process runs its full burst. Consumes the entire ready collection.
func (s *Scheduler) RunFCFS() *ScheduleResult {
	s.ready.Reorder(func(procs []*Process) {
		sort.SliceStable(procs, func(i, j int) bool {
			return procs[i].ArrivalTime < procs[j].ArrivalTime
		})
	})
	return s.runToCompletion(PolicyFCFS)
}

// RunSJF runs non-preemptive Shortest-Job-First: the ready collection is
// ordered by burst time ascending (stable on ties) and each process runs
// its full burst.
//
// SJF does not filter by arrival time, so it may "run" a job whose arrival
// lies in the simulated future; the job's waiting time then comes out
// negative. This mirrors the source algorithm and is kept as documented
// behavior rather than silently corrected.
func (s *Scheduler) RunSJF() *ScheduleResult {
	s.ready.Reorder(func(procs []*Process) {
		sort.SliceStable(procs, func(i, j int) bool {
			return procs[i].BurstTime < procs[j].BurstTime
		})
	})
	return s.runToCompletion(PolicySJF)
}

// RunRoundRobin runs preemptive round-robin with the given quantum.
// Processes are dispatched in strict FIFO order from a working queue seeded
// from the ready collection in admission order (no re-sort). Each dispatch
// runs min(quantum, remaining) ticks; a process with work left is requeued
// at the back in state READY, otherwise it is finalized with
// turnaround = clock - arrival and waiting = turnaround - burst.
// A non-positive quantum wraps ErrInvalidArgument.
func (s *Scheduler) RunRoundRobin(quantum int64) (*ScheduleResult, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidArgument, quantum)
	}

	working := s.ready.Drain()
	var finished []*Process
	for len(working) > 0 {
		p := working[0]
		working = working[1:]
		p.State = StateRunning

		execTime := quantum
		if p.RemainingTime < execTime {
			execTime = p.RemainingTime
		}
		logrus.Infof("<< Dispatch: %s for %d units at %d ticks", p.Name, execTime, s.clock)

		s.clock += execTime
		p.RemainingTime -= execTime

		if p.RemainingTime > 0 {
			p.State = StateReady
			working = append(working, p)
			s.recordDispatch(p, execTime, true)
			continue
		}

		p.TurnaroundTime = s.clock - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
		p.State = StateTerminated
		s.completed = append(s.completed, p)
		finished = append(finished, p)
		s.recordDispatch(p, execTime, false)
	}
	return s.resultFor(PolicyRoundRobin, finished), nil
}

func (s *Scheduler) recordDispatch(p *Process, duration int64, requeued bool) {
	if s.Trace == nil {
		return
	}
	s.Trace.RecordDispatch(trace.DispatchRecord{
		PID:      p.PID,
		Name:     p.Name,
		Clock:    s.clock,
		Duration: duration,
		Requeued: requeued,
	})
}

// resultFor builds the value-object result for one policy run. The order
// slice reflects completion order for the processes finished by this run.
func (s *Scheduler) resultFor(policy string, finished []*Process) *ScheduleResult {
	res := &ScheduleResult{Policy: policy, Clock: s.clock}
	for _, p := range finished {
		res.Processes = append(res.Processes, ProcessTimes{
			PID:            p.PID,
			Name:           p.Name,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
		})
	}
	return res
}

// Dispatch policy names accepted by the scenario runner and CLI.
const (
	PolicyFCFS       = "fcfs"
	PolicySJF        = "sjf"
	PolicyRoundRobin = "round-robin"
)

// ValidDispatchPolicies is the set of recognized dispatch policy names.
// Shared by Scenario.Validate() and the CLI to avoid duplication.
var ValidDispatchPolicies = map[string]bool{PolicyFCFS: true, PolicySJF: true, PolicyRoundRobin: true}
