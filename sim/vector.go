// Fixed-width integer resource vectors, shared by the memory allocator
// bookkeeping and the deadlock detector. A Vector holds one quantity per
// resource type; all operations require matching widths.

package sim

import "fmt"

// Vector is a per-resource-type quantity vector.
type Vector []int

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Add returns v + o element-wise.
// Panics if the widths differ; width mismatches are programmer errors,
// caller-supplied matrices are validated before any arithmetic runs.
func (v Vector) Add(o Vector) Vector {
	if len(v) != len(o) {
		panic(fmt.Sprintf("Vector.Add: width mismatch %d vs %d", len(v), len(o)))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub returns v - o element-wise. Negative components are legal: the
// deadlock detector computes need = max - allocation without clamping,
// and LessEq treats negative needs as always satisfiable.
func (v Vector) Sub(o Vector) Vector {
	if len(v) != len(o) {
		panic(fmt.Sprintf("Vector.Sub: width mismatch %d vs %d", len(v), len(o)))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out
}

// LessEq reports whether v[i] <= o[i] for every component.
func (v Vector) LessEq(o Vector) bool {
	if len(v) != len(o) {
		panic(fmt.Sprintf("Vector.LessEq: width mismatch %d vs %d", len(v), len(o)))
	}
	for i := range v {
		if v[i] > o[i] {
			return false
		}
	}
	return true
}

// NonNegative reports whether every component of v is >= 0.
func (v Vector) NonNegative() bool {
	for _, q := range v {
		if q < 0 {
			return false
		}
	}
	return true
}
