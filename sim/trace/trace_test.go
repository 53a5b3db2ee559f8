package trace

import (
	"testing"
)

func TestNewSimulationTrace_AssignsRunID(t *testing.T) {
	a := NewSimulationTrace()
	b := NewSimulationTrace()

	if a.RunID == "" {
		t.Fatal("expected a non-empty run ID")
	}
	if a.RunID == b.RunID {
		t.Errorf("expected distinct run IDs, both were %s", a.RunID)
	}
}

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a fresh trace
	st := NewSimulationTrace()

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		PID:      1,
		Name:     "P1",
		Clock:    2,
		Duration: 2,
		Requeued: true,
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].PID != 1 {
		t.Errorf("expected PID 1, got %d", st.Dispatches[0].PID)
	}
	if !st.Dispatches[0].Requeued {
		t.Error("expected requeued=true")
	}
}

func TestSimulationTrace_RecordAllKinds(t *testing.T) {
	st := NewSimulationTrace()

	st.RecordExtent(ExtentRecord{Op: "split", Address: 20, Size: 80})
	st.RecordSeek(SeekRecord{From: 53, To: 65, Distance: 12})
	st.RecordSafety(SafetyRecord{Safe: true, SafeSequence: []int{1, 3, 0, 2, 4}})

	if len(st.Extents) != 1 || len(st.Seeks) != 1 || len(st.Safety) != 1 {
		t.Fatalf("expected one record per kind, got %d/%d/%d",
			len(st.Extents), len(st.Seeks), len(st.Safety))
	}
	if st.Extents[0].Op != "split" {
		t.Errorf("expected op split, got %s", st.Extents[0].Op)
	}
	if st.Seeks[0].Distance != 12 {
		t.Errorf("expected distance 12, got %d", st.Seeks[0].Distance)
	}
	if !st.Safety[0].Safe {
		t.Error("expected safe=true")
	}
}
