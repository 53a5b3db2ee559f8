package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-sim/os-sim/sim/trace"
)

const fullScenarioYAML = `
schedule:
  policy: round-robin
  quantum: 2
  processes:
    - {pid: 1, name: P1, priority: 1, burst: 5, arrival: 0}
    - {pid: 2, name: P2, priority: 2, burst: 3, arrival: 1}
    - {pid: 3, name: P3, priority: 1, burst: 8, arrival: 2}
memory:
  total: 100
  ops:
    - {op: allocate, pid: 1, size: 20}
    - {op: allocate, pid: 2, size: 30}
    - {op: allocate, pid: 3, size: 15}
    - {op: deallocate, pid: 2}
    - {op: allocate, pid: 4, size: 35}
deadlock:
  allocation: [[0, 1, 0], [2, 0, 0], [3, 0, 2], [2, 1, 1], [0, 0, 2]]
  max_need: [[7, 5, 3], [3, 2, 2], [9, 0, 2], [2, 2, 2], [4, 3, 3]]
  available: [3, 3, 2]
disk:
  cylinders: 200
  head: 53
  policy: scan
  direction: up
  requests: [98, 183, 37, 122, 14, 124, 65, 67]
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_ParsesAllSections(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, fullScenarioYAML))

	require.NoError(t, err)
	require.NotNil(t, sc.Schedule)
	assert.Equal(t, PolicyRoundRobin, sc.Schedule.Policy)
	assert.Len(t, sc.Schedule.Processes, 3)
	require.NotNil(t, sc.Memory)
	assert.Len(t, sc.Memory.Ops, 5)
	require.NotNil(t, sc.Deadlock)
	require.NotNil(t, sc.Disk)
	assert.Equal(t, "up", sc.Disk.Direction)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestScenario_Validate_Errors(t *testing.T) {
	cases := []struct {
		name string
		sc   Scenario
	}{
		{"unknown dispatch policy", Scenario{Schedule: &ScheduleSpec{Policy: "priority"}}},
		{"round-robin without quantum", Scenario{Schedule: &ScheduleSpec{Policy: PolicyRoundRobin}}},
		{"non-positive burst", Scenario{Schedule: &ScheduleSpec{
			Policy:    PolicyFCFS,
			Processes: []ProcessSpec{{PID: 1, Burst: 0}},
		}}},
		{"negative arrival", Scenario{Schedule: &ScheduleSpec{
			Policy:    PolicyFCFS,
			Processes: []ProcessSpec{{PID: 1, Burst: 1, Arrival: -1}},
		}}},
		{"non-positive total memory", Scenario{Memory: &MemorySpec{Total: 0}}},
		{"unknown memory op", Scenario{Memory: &MemorySpec{Total: 10, Ops: []MemoryOp{{Op: "shrink"}}}}},
		{"unknown disk policy", Scenario{Disk: &DiskSpec{Policy: "sstf", Cylinders: 10}}},
		{"unknown sweep direction", Scenario{Disk: &DiskSpec{Policy: "scan", Direction: "left", Cylinders: 10}}},
		{"non-positive cylinders", Scenario{Disk: &DiskSpec{Policy: "fcfs", Cylinders: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.sc.Validate(), ErrInvalidArgument)
		})
	}
}

func TestScenario_Validate_AcceptsFullScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, fullScenarioYAML))
	require.NoError(t, err)

	assert.NoError(t, sc.Validate())
}

func TestScenario_Run_AllEngines(t *testing.T) {
	// GIVEN the full scenario with a trace attached
	sc, err := LoadScenario(writeScenario(t, fullScenarioYAML))
	require.NoError(t, err)
	require.NoError(t, sc.Validate())
	tr := trace.NewSimulationTrace()

	// WHEN it runs
	result, err := sc.Run(tr)

	// THEN every section produced its result
	require.NoError(t, err)

	require.NotNil(t, result.Schedule)
	assert.Equal(t, int64(16), result.Schedule.Clock)
	require.NotNil(t, result.ScheduleStats)
	assert.Len(t, result.ScheduleStats.Processes, 3)

	require.Len(t, result.MemoryErrs, 5)
	for i := 0; i < 4; i++ {
		assert.NoError(t, result.MemoryErrs[i], "op %d", i)
	}
	assert.ErrorIs(t, result.MemoryErrs[4], ErrInsufficientMemory)
	require.NotEmpty(t, result.Memory)

	require.NotNil(t, result.Safety)
	assert.True(t, result.Safety.Safe)
	assert.Equal(t, []int{1, 3, 0, 2, 4}, result.Safety.SafeSequence)

	require.NotNil(t, result.Disk)
	assert.Equal(t, 331, result.Disk.TotalSeek)

	// AND the trace observed every engine
	assert.NotEmpty(t, tr.Dispatches)
	assert.NotEmpty(t, tr.Extents)
	assert.NotEmpty(t, tr.Seeks)
	assert.Len(t, tr.Safety, 1)
	assert.NotEmpty(t, tr.RunID)
}

func TestScenario_Run_NilTraceAndEmptySections(t *testing.T) {
	// A scenario with only a disk section runs without a trace observer.
	sc := &Scenario{Disk: &DiskSpec{
		Cylinders: 200, Head: 53, Policy: "fcfs",
		Requests: []int{98, 183},
	}}
	require.NoError(t, sc.Validate())

	result, err := sc.Run(nil)

	require.NoError(t, err)
	assert.Nil(t, result.Schedule)
	assert.Nil(t, result.Safety)
	require.NotNil(t, result.Disk)
	assert.Equal(t, 130, result.Disk.TotalSeek)
}
