// Implements the disk-head scheduling engine: pure functions ordering a
// batch of pending track requests under a selectable seek policy and
// totaling head movement.

package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/os-sim/os-sim/sim/trace"
)

// SweepDirection selects which way a SCAN sweep moves first.
type SweepDirection string

const (
	// SweepUp sweeps toward increasing track numbers first.
	SweepUp SweepDirection = "up"
	// SweepDown sweeps toward decreasing track numbers first.
	SweepDown SweepDirection = "down"
)

// ValidSweepDirections is the set of recognized sweep direction names.
var ValidSweepDirections = map[string]bool{string(SweepUp): true, string(SweepDown): true}

// SeekResult is the value-object outcome of one disk scheduling call:
// the visiting order (boundary stops included for SCAN) and the summed
// head movement, starting from the initial head position.
type SeekResult struct {
	Policy    string
	Sequence  []int
	TotalSeek int
}

// DiskScheduler orders request batches over a fixed cylinder count.
// Each scheduling call is a pure function over its batch; no state
// persists between calls.
type DiskScheduler struct {
	totalCylinders int

	// Trace is an optional observer receiving one record per head move.
	Trace *trace.SimulationTrace
}

// NewDiskScheduler creates a scheduler for a disk with the given cylinder
// count. Wraps ErrInvalidArgument for a non-positive count.
func NewDiskScheduler(totalCylinders int) (*DiskScheduler, error) {
	if totalCylinders <= 0 {
		return nil, fmt.Errorf("%w: cylinder count must be positive, got %d", ErrInvalidArgument, totalCylinders)
	}
	return &DiskScheduler{totalCylinders: totalCylinders}, nil
}

// TotalCylinders returns the cylinder count bounding valid tracks.
func (d *DiskScheduler) TotalCylinders() int {
	return d.totalCylinders
}

// validateBatch checks the head position and every requested track against
// [0, totalCylinders), wrapping ErrInvalidArgument on any violation.
func (d *DiskScheduler) validateBatch(requests []int, headStart int) error {
	if headStart < 0 || headStart >= d.totalCylinders {
		return fmt.Errorf("%w: head position %d outside [0, %d)", ErrInvalidArgument, headStart, d.totalCylinders)
	}
	for _, track := range requests {
		if track < 0 || track >= d.totalCylinders {
			return fmt.Errorf("%w: track %d outside [0, %d)", ErrInvalidArgument, track, d.totalCylinders)
		}
	}
	return nil
}

// walk totals the absolute head movement along sequence starting from
// headStart, emitting one trace record per move.
func (d *DiskScheduler) walk(policy string, headStart int, sequence []int) *SeekResult {
	total := 0
	current := headStart
	for _, track := range sequence {
		seek := track - current
		if seek < 0 {
			seek = -seek
		}
		total += seek
		logrus.Debugf("<< Seek: move %d -> %d (%d)", current, track, seek)
		if d.Trace != nil {
			d.Trace.RecordSeek(trace.SeekRecord{From: current, To: track, Distance: seek})
		}
		current = track
	}
	return &SeekResult{Policy: policy, Sequence: sequence, TotalSeek: total}
}

// FCFS services requests strictly in input order. The total seek is the
// sum of absolute differences between consecutive positions, the initial
// head position counting as the first "current".
func (d *DiskScheduler) FCFS(requests []int, headStart int) (*SeekResult, error) {
	if err := d.validateBatch(requests, headStart); err != nil {
		return nil, err
	}
	sequence := append([]int(nil), requests...)
	res := d.walk("fcfs", headStart, sequence)
	logrus.Infof("<< FCFS disk: %d requests, total seek %d", len(requests), res.TotalSeek)
	return res, nil
}

// SCAN services requests in elevator order: tracks on the first-sweep side
// of the head in sweep order, then the boundary cylinder at that end, then
// the remaining tracks on the way back. The sweep always runs to the
// boundary (no early reversal), so both forced boundary visits count
// toward the total. An unrecognized direction wraps ErrInvalidArgument
// rather than defaulting.
func (d *DiskScheduler) SCAN(requests []int, headStart int, direction SweepDirection) (*SeekResult, error) {
	if !ValidSweepDirections[string(direction)] {
		return nil, fmt.Errorf("%w: unrecognized sweep direction %q", ErrInvalidArgument, direction)
	}
	if err := d.validateBatch(requests, headStart); err != nil {
		return nil, err
	}

	var left, right []int // left: strictly below the head; right: at or above
	for _, track := range requests {
		if track < headStart {
			left = append(left, track)
		} else {
			right = append(right, track)
		}
	}
	sort.Ints(left)
	sort.Ints(right)

	sequence := make([]int, 0, len(requests)+1)
	switch direction {
	case SweepUp:
		sequence = append(sequence, right...)
		sequence = append(sequence, d.totalCylinders-1)
		for i := len(left) - 1; i >= 0; i-- {
			sequence = append(sequence, left[i])
		}
	case SweepDown:
		for i := len(left) - 1; i >= 0; i-- {
			sequence = append(sequence, left[i])
		}
		sequence = append(sequence, 0)
		sequence = append(sequence, right...)
	}

	res := d.walk("scan", headStart, sequence)
	logrus.Infof("<< SCAN disk: %d requests, direction %s, total seek %d", len(requests), direction, res.TotalSeek)
	return res, nil
}
