// Implements the deadlock detector: Banker's safety algorithm run as a
// detection tool over caller-supplied allocation/claim/available matrices.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/os-sim/os-sim/sim/trace"
)

// ResourceState is the caller-supplied input to one detection run:
// current allocation, maximum claims, and the unallocated pool. The
// detector retains no mutable state between runs beyond these matrices.
//
// Allocation[p][r] <= MaxNeed[p][r] is required for a meaningful run but
// is not enforced: need = max - allocation may come out negative, and the
// safety test treats negative needs as always satisfiable.
type ResourceState struct {
	Allocation []Vector // Allocation[p][r]: units of r currently held by p
	MaxNeed    []Vector // MaxNeed[p][r]: maximum units of r ever claimed by p
	Available  Vector   // Available[r]: unallocated units of r
}

// Validate checks dimensions and sign, wrapping ErrInvalidArgument on
// ragged matrices, mismatched widths, or negative quantities.
func (rs *ResourceState) Validate() error {
	numResources := len(rs.Available)
	if len(rs.Allocation) != len(rs.MaxNeed) {
		return fmt.Errorf("%w: allocation has %d rows, max need has %d",
			ErrInvalidArgument, len(rs.Allocation), len(rs.MaxNeed))
	}
	for p := range rs.Allocation {
		if len(rs.Allocation[p]) != numResources {
			return fmt.Errorf("%w: allocation row %d has width %d, want %d",
				ErrInvalidArgument, p, len(rs.Allocation[p]), numResources)
		}
		if len(rs.MaxNeed[p]) != numResources {
			return fmt.Errorf("%w: max need row %d has width %d, want %d",
				ErrInvalidArgument, p, len(rs.MaxNeed[p]), numResources)
		}
		if !rs.Allocation[p].NonNegative() || !rs.MaxNeed[p].NonNegative() {
			return fmt.Errorf("%w: negative resource quantity in row %d", ErrInvalidArgument, p)
		}
	}
	if !rs.Available.NonNegative() {
		return fmt.Errorf("%w: negative available quantity", ErrInvalidArgument)
	}
	return nil
}

// SafetyReport is the verdict of one detection run. UNSAFE is a valid,
// expected outcome carrying the deadlocked set, not an error path.
type SafetyReport struct {
	Safe         bool
	SafeSequence []int // completion order when Safe; nil otherwise
	Deadlocked   []int // unfinished process indices when not Safe; nil otherwise
}

// DeadlockDetector runs the Banker's safety algorithm.
type DeadlockDetector struct {
	// Trace is an optional observer receiving one record per verdict.
	Trace *trace.SimulationTrace
}

// NewDeadlockDetector creates a detector.
func NewDeadlockDetector() *DeadlockDetector {
	return &DeadlockDetector{}
}

// Detect computes whether a safe completion order exists for the given
// state. It repeatedly scans processes in increasing index order and
// finishes the first unfinished process whose need fits within work,
// restarting the scan from index 0 after each finish. The lowest-index
// tie-break makes the safe sequence reproducible for identical inputs.
// A full scan with no eligible process while some remain unfinished is
// the UNSAFE verdict; the unfinished indices are the deadlocked set.
func (d *DeadlockDetector) Detect(state *ResourceState) (*SafetyReport, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	numProcesses := len(state.Allocation)
	need := make([]Vector, numProcesses)
	for p := range state.Allocation {
		need[p] = state.MaxNeed[p].Sub(state.Allocation[p])
	}

	work := state.Available.Clone()
	finish := make([]bool, numProcesses)
	sequence := make([]int, 0, numProcesses)

	for len(sequence) < numProcesses {
		found := false
		for p := 0; p < numProcesses; p++ {
			if finish[p] || !need[p].LessEq(work) {
				continue
			}
			work = work.Add(state.Allocation[p])
			finish[p] = true
			sequence = append(sequence, p)
			logrus.Debugf("<< Detect: process %d safe to finish, work now %v", p, work)
			found = true
			break
		}
		if !found {
			var deadlocked []int
			for p, f := range finish {
				if !f {
					deadlocked = append(deadlocked, p)
				}
			}
			logrus.Infof("<< Detect: UNSAFE, deadlocked processes %v", deadlocked)
			report := &SafetyReport{Safe: false, Deadlocked: deadlocked}
			d.recordSafety(report)
			return report, nil
		}
	}

	logrus.Infof("<< Detect: SAFE, sequence %v", sequence)
	report := &SafetyReport{Safe: true, SafeSequence: sequence}
	d.recordSafety(report)
	return report, nil
}

func (d *DeadlockDetector) recordSafety(report *SafetyReport) {
	if d.Trace == nil {
		return
	}
	d.Trace.RecordSafety(trace.SafetyRecord{
		Safe:         report.Safe,
		SafeSequence: append([]int(nil), report.SafeSequence...),
		Deadlocked:   append([]int(nil), report.Deadlocked...),
	})
}
