package trace

import "github.com/google/uuid"

// SimulationTrace collects per-step records during engine runs. It is an
// optional observer: engines accept a nil trace and skip recording, so
// correctness never depends on it. Each trace carries a unique run ID so
// independent scenario replays are distinguishable in output.
type SimulationTrace struct {
	RunID      string
	Dispatches []DispatchRecord
	Extents    []ExtentRecord
	Seeks      []SeekRecord
	Safety     []SafetyRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		RunID:      uuid.NewString(),
		Dispatches: make([]DispatchRecord, 0),
		Extents:    make([]ExtentRecord, 0),
		Seeks:      make([]SeekRecord, 0),
		Safety:     make([]SafetyRecord, 0),
	}
}

// RecordDispatch appends a CPU dispatch record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordExtent appends an allocator split/merge record.
func (st *SimulationTrace) RecordExtent(record ExtentRecord) {
	st.Extents = append(st.Extents, record)
}

// RecordSeek appends a disk head movement record.
func (st *SimulationTrace) RecordSeek(record SeekRecord) {
	st.Seeks = append(st.Seeks, record)
}

// RecordSafety appends a deadlock-detection verdict record.
func (st *SimulationTrace) RecordSafety(record SafetyRecord) {
	st.Safety = append(st.Safety, record)
}
