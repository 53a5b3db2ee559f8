// Implements the contiguous-memory allocator: a linear address space
// managed as an ordered sequence of extents with first-fit allocation,
// split on allocate, and a coalescing pass on free.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/os-sim/os-sim/sim/trace"
)

// Extent is a contiguous run of address space with a free/allocated flag.
// PID is meaningful only when the extent is allocated.
type Extent struct {
	Start int64
	Size  int64
	Free  bool
	PID   int
}

func (e Extent) String() string {
	if e.Free {
		return fmt.Sprintf("[%d-%d) %dKB FREE", e.Start, e.Start+e.Size, e.Size)
	}
	return fmt.Sprintf("[%d-%d) %dKB P%d", e.Start, e.Start+e.Size, e.Size, e.PID)
}

// MemoryManager manages [0, totalMemory) as an ordered extent sequence.
//
// Invariants after every mutation:
//   - extents partition the address space exactly (no gaps, no overlaps)
//   - no two adjacent extents are both free
//
// Not safe for concurrent use; one instance per logical simulation run.
type MemoryManager struct {
	totalMemory int64
	extents     []Extent

	// Trace is an optional observer receiving one record per split/merge.
	Trace *trace.SimulationTrace
}

// NewMemoryManager creates a manager whose address space starts as one
// free extent of the given size. Wraps ErrInvalidArgument for a
// non-positive size.
func NewMemoryManager(totalMemory int64) (*MemoryManager, error) {
	if totalMemory <= 0 {
		return nil, fmt.Errorf("%w: total memory must be positive, got %d", ErrInvalidArgument, totalMemory)
	}
	return &MemoryManager{
		totalMemory: totalMemory,
		extents:     []Extent{{Start: 0, Size: totalMemory, Free: true}},
	}, nil
}

// TotalMemory returns the managed address-space size.
func (m *MemoryManager) TotalMemory() int64 {
	return m.totalMemory
}

// Allocate finds the first free extent of at least size (first-fit, address
// order) and assigns it to pid, splitting off a free remainder when the
// extent is larger than requested. Returns the allocated start address.
// Wraps ErrInvalidArgument for a non-positive size and ErrInsufficientMemory
// when no single free extent qualifies; callers must not assume any
// allocation ever succeeds.
func (m *MemoryManager) Allocate(pid int, size int64) (int64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: allocation size must be positive, got %d", ErrInvalidArgument, size)
	}

	for i := range m.extents {
		ext := &m.extents[i]
		if !ext.Free || ext.Size < size {
			continue
		}
		if ext.Size > size {
			// Split: free remainder inserted immediately after, index-based
			// rebuild so no iterator is live across the mutation.
			remainder := Extent{Start: ext.Start + size, Size: ext.Size - size, Free: true}
			rebuilt := make([]Extent, 0, len(m.extents)+1)
			rebuilt = append(rebuilt, m.extents[:i+1]...)
			rebuilt = append(rebuilt, remainder)
			rebuilt = append(rebuilt, m.extents[i+1:]...)
			m.extents = rebuilt
			ext = &m.extents[i]
			m.recordExtent("split", ext.Start, size)
		}
		ext.Size = size
		ext.Free = false
		ext.PID = pid
		logrus.Infof("<< Allocate: %dKB to P%d at address %d", size, pid, ext.Start)
		return ext.Start, nil
	}

	logrus.Infof("<< Allocate: no extent of %dKB for P%d", size, pid)
	return 0, fmt.Errorf("%w: no free extent of size %d", ErrInsufficientMemory, size)
}

// Deallocate frees the (at most one, by invariant) extent owned by pid,
// clears ownership, and coalesces. Wraps ErrNotFound if pid owns nothing.
func (m *MemoryManager) Deallocate(pid int) error {
	for i := range m.extents {
		ext := &m.extents[i]
		if ext.Free || ext.PID != pid {
			continue
		}
		ext.Free = true
		ext.PID = 0
		logrus.Infof("<< Deallocate: freed %s for P%d", ext, pid)
		m.Coalesce()
		return nil
	}
	return fmt.Errorf("%w: no extent allocated to process %d", ErrNotFound, pid)
}

// Coalesce merges every maximal run of adjacent free extents into one
// extent whose size is the sum. Single left-to-right pass, linear in extent
// count, idempotent. The sequence is rebuilt rather than edited in place.
func (m *MemoryManager) Coalesce() {
	rebuilt := make([]Extent, 0, len(m.extents))
	for _, ext := range m.extents {
		last := len(rebuilt) - 1
		if last >= 0 && rebuilt[last].Free && ext.Free {
			rebuilt[last].Size += ext.Size
			m.recordExtent("merge", rebuilt[last].Start, rebuilt[last].Size)
			continue
		}
		rebuilt = append(rebuilt, ext)
	}
	m.extents = rebuilt
}

// Snapshot returns a copy of the ordered extent list for display and
// verification. The copy shares nothing with manager state.
func (m *MemoryManager) Snapshot() []Extent {
	out := make([]Extent, len(m.extents))
	copy(out, m.extents)
	return out
}

func (m *MemoryManager) recordExtent(op string, addr, size int64) {
	if m.Trace == nil {
		return
	}
	m.Trace.RecordExtent(trace.ExtentRecord{Op: op, Address: addr, Size: size})
}
