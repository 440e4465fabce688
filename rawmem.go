package vec

// RawMemory owns a single block of storage sized for a fixed number of
// elements of type T. It tracks capacity only: it has no idea which slots
// currently hold meaningful values, and it never runs element teardown.
// Liveness is entirely the owning Vector's responsibility.
//
// Slots outside the owner's live range are kept at the zero value of T so
// the garbage collector never retains references through dead slots.
//
// A RawMemory must not be duplicated by struct copy; ownership of the block
// is exclusive and transfers only through Move or Swap.
type RawMemory[T any] struct {
	buf []T // len(buf) == capacity; nil when capacity is 0
}

// newRawMemory reserves a zeroed block for capacity elements.
// A capacity of zero (or less) allocates nothing.
func newRawMemory[T any](capacity int) RawMemory[T] {
	if capacity <= 0 {
		return RawMemory[T]{}
	}
	return RawMemory[T]{buf: make([]T, capacity)}
}

// Cap returns the number of slots the block holds.
func (m *RawMemory[T]) Cap() int {
	return len(m.buf)
}

// Slot returns the address of slot i. The slot may or may not hold a live
// value; that is for the caller to know. Panics if i is out of range.
func (m *RawMemory[T]) Slot(i int) *T {
	if i < 0 || i >= len(m.buf) {
		panic("vec: raw slot index out of range")
	}
	return &m.buf[i]
}

// Swap exchanges blocks and capacities with other in O(1).
func (m *RawMemory[T]) Swap(other *RawMemory[T]) {
	m.buf, other.buf = other.buf, m.buf
}

// Move transfers the block out of m, leaving m empty with capacity zero.
func (m *RawMemory[T]) Move() RawMemory[T] {
	out := RawMemory[T]{buf: m.buf}
	m.buf = nil
	return out
}

// Release drops the block. Any live values the caller left inside are NOT
// torn down; the caller must have disposed them already.
func (m *RawMemory[T]) Release() {
	m.buf = nil
}
