// Aggregates per-process timing metrics over the completed collection
// for final reporting.

package sim

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ProcessTimes carries the timing metrics of one finished process.
type ProcessTimes struct {
	PID            int
	Name           string
	WaitingTime    int64
	TurnaroundTime int64
}

// ScheduleResult is the value-object outcome of one dispatch policy run:
// the processes finished by that run in completion order, plus the clock
// reading after the run. No references into scheduler state are retained.
type ScheduleResult struct {
	Policy    string
	Clock     int64 // logical time after the run
	Processes []ProcessTimes
}

// ScheduleStats summarizes the completed collection across all runs so far.
type ScheduleStats struct {
	Processes     []ProcessTimes
	AvgWaiting    float64
	AvgTurnaround float64
}

// Statistics returns per-process waiting/turnaround times over the completed
// collection and the arithmetic mean of each. Wraps ErrEmptyResult when no
// process has completed yet.
func (s *Scheduler) Statistics() (*ScheduleStats, error) {
	if len(s.completed) == 0 {
		return nil, fmt.Errorf("%w: no completed processes", ErrEmptyResult)
	}

	out := &ScheduleStats{}
	waiting := make([]float64, 0, len(s.completed))
	turnaround := make([]float64, 0, len(s.completed))
	for _, p := range s.completed {
		out.Processes = append(out.Processes, ProcessTimes{
			PID:            p.PID,
			Name:           p.Name,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
		})
		waiting = append(waiting, float64(p.WaitingTime))
		turnaround = append(turnaround, float64(p.TurnaroundTime))
	}

	// stats.Mean only errors on empty input, which the guard above rules out.
	out.AvgWaiting, _ = stats.Mean(waiting)
	out.AvgTurnaround, _ = stats.Mean(turnaround)
	return out, nil
}
