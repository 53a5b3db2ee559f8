// Scenario configuration: a YAML file describing one run of each engine.
// Sections are optional; a section that is absent is simply not run.
// Loading and validation are separated from execution so the CLI can fail
// fast on malformed input before any engine state exists.

package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/os-sim/os-sim/sim/trace"
)

// ProcessSpec describes one process in a schedule section.
type ProcessSpec struct {
	PID      int    `yaml:"pid"`
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
	Burst    int64  `yaml:"burst"`
	Arrival  int64  `yaml:"arrival"`
}

// ScheduleSpec describes one CPU scheduling run.
type ScheduleSpec struct {
	Policy    string        `yaml:"policy"`
	Quantum   int64         `yaml:"quantum"` // round-robin only
	Processes []ProcessSpec `yaml:"processes"`
}

// MemoryOp describes one allocator operation.
type MemoryOp struct {
	Op   string `yaml:"op"` // "allocate" or "deallocate"
	PID  int    `yaml:"pid"`
	Size int64  `yaml:"size"` // allocate only
}

// MemorySpec describes one allocator run.
type MemorySpec struct {
	Total int64      `yaml:"total"`
	Ops   []MemoryOp `yaml:"ops"`
}

// DeadlockSpec describes one detection run.
type DeadlockSpec struct {
	Allocation [][]int `yaml:"allocation"`
	MaxNeed    [][]int `yaml:"max_need"`
	Available  []int   `yaml:"available"`
}

// DiskSpec describes one disk scheduling run.
type DiskSpec struct {
	Cylinders int    `yaml:"cylinders"`
	Head      int    `yaml:"head"`
	Policy    string `yaml:"policy"`    // "fcfs" or "scan"
	Direction string `yaml:"direction"` // scan only: "up" or "down"
	Requests  []int  `yaml:"requests"`
}

// Scenario holds one optional run per engine, loadable from a YAML file.
// Nil sections are skipped.
type Scenario struct {
	Schedule *ScheduleSpec `yaml:"schedule"`
	Memory   *MemorySpec   `yaml:"memory"`
	Deadlock *DeadlockSpec `yaml:"deadlock"`
	Disk     *DiskSpec     `yaml:"disk"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// ValidDiskPolicies is the set of recognized disk policy names.
var ValidDiskPolicies = map[string]bool{"fcfs": true, "scan": true}

// Validate checks policy names and parameter ranges across all present
// sections, wrapping ErrInvalidArgument on the first violation.
func (sc *Scenario) Validate() error {
	if sc.Schedule != nil {
		if !ValidDispatchPolicies[sc.Schedule.Policy] {
			return fmt.Errorf("%w: unknown dispatch policy %q", ErrInvalidArgument, sc.Schedule.Policy)
		}
		if sc.Schedule.Policy == PolicyRoundRobin && sc.Schedule.Quantum <= 0 {
			return fmt.Errorf("%w: round-robin quantum must be positive, got %d", ErrInvalidArgument, sc.Schedule.Quantum)
		}
		for _, p := range sc.Schedule.Processes {
			if p.Burst <= 0 {
				return fmt.Errorf("%w: process %d burst must be positive, got %d", ErrInvalidArgument, p.PID, p.Burst)
			}
			if p.Arrival < 0 {
				return fmt.Errorf("%w: process %d arrival must be non-negative, got %d", ErrInvalidArgument, p.PID, p.Arrival)
			}
		}
	}
	if sc.Memory != nil {
		if sc.Memory.Total <= 0 {
			return fmt.Errorf("%w: total memory must be positive, got %d", ErrInvalidArgument, sc.Memory.Total)
		}
		for i, op := range sc.Memory.Ops {
			switch op.Op {
			case "allocate", "deallocate":
			default:
				return fmt.Errorf("%w: memory op %d has unknown kind %q", ErrInvalidArgument, i, op.Op)
			}
		}
	}
	if sc.Disk != nil {
		if !ValidDiskPolicies[sc.Disk.Policy] {
			return fmt.Errorf("%w: unknown disk policy %q", ErrInvalidArgument, sc.Disk.Policy)
		}
		if sc.Disk.Policy == "scan" && !ValidSweepDirections[sc.Disk.Direction] {
			return fmt.Errorf("%w: unrecognized sweep direction %q", ErrInvalidArgument, sc.Disk.Direction)
		}
		if sc.Disk.Cylinders <= 0 {
			return fmt.Errorf("%w: cylinder count must be positive, got %d", ErrInvalidArgument, sc.Disk.Cylinders)
		}
	}
	return nil
}

// ScenarioResult aggregates the outcome of every section that ran.
type ScenarioResult struct {
	Schedule      *ScheduleResult
	ScheduleStats *ScheduleStats
	Memory        []Extent // final extent snapshot
	MemoryErrs    []error  // per-op outcomes, nil entries for successes
	Safety        *SafetyReport
	Disk          *SeekResult
}

// toResourceState converts the YAML matrices into a ResourceState.
func (ds *DeadlockSpec) toResourceState() *ResourceState {
	state := &ResourceState{Available: Vector(ds.Available)}
	for _, row := range ds.Allocation {
		state.Allocation = append(state.Allocation, Vector(row))
	}
	for _, row := range ds.MaxNeed {
		state.MaxNeed = append(state.MaxNeed, Vector(row))
	}
	return state
}

// Run executes every present section against fresh engine instances,
// recording into tr when it is non-nil. The scenario must already be
// validated; engine-level failures that validation cannot see (for
// example InsufficientMemory) land in the result, not in the returned
// error, because the reporting layer surfaces them as-is without retry.
func (sc *Scenario) Run(tr *trace.SimulationTrace) (*ScenarioResult, error) {
	out := &ScenarioResult{}

	if sc.Schedule != nil {
		sched := NewScheduler()
		sched.Trace = tr
		for _, spec := range sc.Schedule.Processes {
			p := NewProcess(spec.PID, spec.Name, spec.Priority, spec.Burst, spec.Arrival)
			if err := sched.Admit(p); err != nil {
				return nil, err
			}
		}
		switch sc.Schedule.Policy {
		case PolicyFCFS:
			out.Schedule = sched.RunFCFS()
		case PolicySJF:
			out.Schedule = sched.RunSJF()
		case PolicyRoundRobin:
			res, err := sched.RunRoundRobin(sc.Schedule.Quantum)
			if err != nil {
				return nil, err
			}
			out.Schedule = res
		}
		stats, err := sched.Statistics()
		if err != nil {
			return nil, err
		}
		out.ScheduleStats = stats
	}

	if sc.Memory != nil {
		mm, err := NewMemoryManager(sc.Memory.Total)
		if err != nil {
			return nil, err
		}
		mm.Trace = tr
		for _, op := range sc.Memory.Ops {
			switch op.Op {
			case "allocate":
				_, opErr := mm.Allocate(op.PID, op.Size)
				out.MemoryErrs = append(out.MemoryErrs, opErr)
			case "deallocate":
				out.MemoryErrs = append(out.MemoryErrs, mm.Deallocate(op.PID))
			}
		}
		out.Memory = mm.Snapshot()
	}

	if sc.Deadlock != nil {
		det := NewDeadlockDetector()
		det.Trace = tr
		report, err := det.Detect(sc.Deadlock.toResourceState())
		if err != nil {
			return nil, err
		}
		out.Safety = report
	}

	if sc.Disk != nil {
		disk, err := NewDiskScheduler(sc.Disk.Cylinders)
		if err != nil {
			return nil, err
		}
		disk.Trace = tr
		switch sc.Disk.Policy {
		case "fcfs":
			out.Disk, err = disk.FCFS(sc.Disk.Requests, sc.Disk.Head)
		case "scan":
			out.Disk, err = disk.SCAN(sc.Disk.Requests, sc.Disk.Head, SweepDirection(sc.Disk.Direction))
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
