// Implements a counting semaphore as a bookkeeping model: acquisition is a
// queue of named waiters released strictly FIFO on signal. Blocking is
// represented as queue membership, not real thread suspension, so the
// primitive composes with the simulator's logical time rather than the
// runtime scheduler.

package sim

// Semaphore is a counting semaphore with a FIFO wait list.
// Not safe for concurrent use; it models synchronization, it does not
// provide it.
type Semaphore struct {
	value   int
	waiters []string
}

// NewSemaphore creates a semaphore with the given initial value.
func NewSemaphore(initial int) *Semaphore {
	return &Semaphore{value: initial}
}

// Value returns the current counter. Negative values mean -Value waiters
// are queued.
func (s *Semaphore) Value() int {
	return s.value
}

// Wait performs the P operation for the named holder. Returns true if the
// semaphore was acquired immediately, false if the caller joined the wait
// list.
func (s *Semaphore) Wait(name string) bool {
	s.value--
	if s.value < 0 {
		s.waiters = append(s.waiters, name)
		return false
	}
	return true
}

// Signal performs the V operation. If the wait list is non-empty the
// longest-waiting entry is released and its name returned; otherwise the
// second return is false.
func (s *Semaphore) Signal() (string, bool) {
	s.value++
	if len(s.waiters) == 0 {
		return "", false
	}
	woken := s.waiters[0]
	s.waiters = s.waiters[1:]
	return woken, true
}

// Waiters returns a copy of the wait list in FIFO order.
func (s *Semaphore) Waiters() []string {
	return append([]string(nil), s.waiters...)
}
