// Implements the ReadyQueue, which holds all processes admitted for scheduling.
// Processes are enqueued on admission in FIFO order.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO collection of processes waiting to be
// dispatched. Dispatch policies either consume it in order (round-robin)
// or reorder it in place before draining it (FCFS, SJF).
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue = rq.queue[1:]
	return p
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
// For reordering, use Reorder() instead.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// The run-to-completion policies are the primary consumers:
//
//	rq.Reorder(func(procs []*Process) {
//	    sort.SliceStable(procs, byArrival)
//	})
//
// fn receives the underlying slice and may sort it in-place.
// fn MUST NOT change the slice length (no append/delete).
func (rq *ReadyQueue) Reorder(fn func([]*Process)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}

// Drain removes and returns all queued processes in order, leaving the
// queue empty. The run-to-completion policies consume the entire ready
// collection in one call.
func (rq *ReadyQueue) Drain() []*Process {
	out := rq.queue
	rq.queue = nil
	return out
}
