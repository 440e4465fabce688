package vec

import "github.com/pkg/errors"

// Vector is a generic, contiguous, growable sequence. It owns one RawMemory
// block plus a live-element count; slots [0, size) hold live values, slots
// [size, capacity) are raw. Not goroutine-safe: callers that share a Vector
// across goroutines must supply their own locking.
//
// Any address obtained from Ref, Refs, Insert, Emplace, or Erase is
// invalidated by a later operation that grows the vector, and by removal at
// or before the referenced position.
type Vector[T any] struct {
	data RawMemory[T]
	size int
	grow GrowthPolicy
	prof profile[T]
}

// New creates an empty vector with capacity zero. No allocation happens
// until the first element arrives.
func New[T any]() *Vector[T] {
	return &Vector[T]{grow: Doubling, prof: profileOf[T]()}
}

// NewSized creates a vector of exactly n zero-valued live elements in a
// block of exactly n slots. Panics if n is negative.
func NewSized[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vec: negative size")
	}
	v := New[T]()
	v.data = newRawMemory[T](n)
	v.size = n
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots currently reserved.
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns a copy of element i. Panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.data.buf[i]
}

// Ref returns the address of element i for in-place mutation. Panics if i
// is out of range. See the type comment for when the address goes stale.
func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex(i)
	return &v.data.buf[i]
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
}

// Clone builds a deep copy in a block of exactly Len() slots. If any
// element's Clone fails partway, the elements already produced are
// destructed in reverse order, the new block is released, and the error is
// returned with v untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{data: newRawMemory[T](v.size), grow: v.grow, prof: v.prof}
	if v.prof.clone == nil {
		copy(out.data.buf, v.data.buf[:v.size])
		out.size = v.size
		return out, nil
	}
	for i := 0; i < v.size; i++ {
		nv, err := v.prof.clone(&v.data.buf[i])
		if err != nil {
			v.prof.unwindReverse(out.data.buf[:i])
			out.data.Release()
			return nil, errors.Wrapf(err, "vec: cloning element %d", i)
		}
		out.data.buf[i] = nv
	}
	out.size = v.size
	return out, nil
}

// Move transfers the storage and size into a new vector and leaves v empty
// with capacity zero. Never fails.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data.Move(), size: v.size, grow: v.grow, prof: v.prof}
	v.size = 0
	return out
}

// Swap exchanges contents with other in O(1). Element addresses keep
// pointing at the same values; only which vector owns them changes. Doubles
// as move assignment.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// CopyFrom replaces v's contents with a deep copy of rhs.
//
// When rhs does not fit in the current block, a complete fresh copy is
// built first and swapped in, so a mid-copy failure leaves v untouched
// (strong guarantee). When rhs fits, the existing block is reused: the
// overlapping prefix is overwritten element by element, then the trailing
// slots are either copy-constructed (rhs larger) or destructed (rhs
// smaller). The reuse path is only weakly safe: a Clone failure partway
// leaves v holding whatever the completed steps produced, with size always
// reflecting exactly the live slots. That limitation is accepted, not
// corrected.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Cap() {
		fresh, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(fresh)
		fresh.Release()
		return nil
	}
	if v.prof.clone == nil && v.prof.dispose == nil {
		// Plain types: overwrite, then zero any surplus.
		copy(v.data.buf[:rhs.size], rhs.data.buf[:rhs.size])
		if rhs.size < v.size {
			clear(v.data.buf[rhs.size:v.size])
		}
		v.size = rhs.size
		return nil
	}
	overlap := min(v.size, rhs.size)
	for i := 0; i < overlap; i++ {
		nv, err := v.prof.cloneValue(&rhs.data.buf[i])
		if err != nil {
			return errors.Wrapf(err, "vec: assigning element %d", i)
		}
		v.prof.disposeSlot(&v.data.buf[i])
		v.data.buf[i] = nv
	}
	switch {
	case rhs.size > v.size:
		for i := v.size; i < rhs.size; i++ {
			nv, err := v.prof.cloneValue(&rhs.data.buf[i])
			if err != nil {
				v.size = i
				return errors.Wrapf(err, "vec: assigning element %d", i)
			}
			v.data.buf[i] = nv
		}
	case rhs.size < v.size:
		for i := rhs.size; i < v.size; i++ {
			v.prof.disposeSlot(&v.data.buf[i])
		}
	}
	v.size = rhs.size
	return nil
}

// Reserve grows the block to exactly newCap slots; a no-op when newCap is
// not larger than the current capacity. All-or-nothing: if relocation fails
// before completion, the partially populated new block is unwound and
// released and v is left byte-for-byte as it was.
func (v *Vector[T]) Reserve(newCap int) error {
	if newCap <= v.data.Cap() {
		return nil
	}
	fresh := newRawMemory[T](newCap)
	moved, err := v.prof.relocateSpan(fresh.buf[:v.size], v.data.buf[:v.size])
	if err != nil {
		v.prof.unwindReverse(fresh.buf[:moved])
		fresh.Release()
		return err
	}
	v.adopt(&fresh)
	return nil
}

// adopt swaps a fully relocated block in and retires the old one. With a
// Relocator element type the originals are still intact in the old block at
// this point; they are disposed here, strictly after the new block is
// committed.
func (v *Vector[T]) adopt(fresh *RawMemory[T]) {
	v.data.Swap(fresh)
	if v.prof.relocate != nil {
		for i := 0; i < v.size; i++ {
			v.prof.disposeSlot(fresh.Slot(i))
		}
	}
	fresh.Release()
}

// Resize sets the live count to n. Growth is decided against capacity, not
// size, exactly as the reference behaves: a request at or above the current
// capacity reallocates to exactly n slots. Newly exposed slots are
// zero-valued (the default construction); a shrink destructs [n, size) in
// index order.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative size")
	}
	if n >= v.data.Cap() {
		if err := v.Reserve(n); err != nil {
			return err
		}
	} else if n < v.size {
		for i := n; i < v.size; i++ {
			v.prof.disposeSlot(&v.data.buf[i])
		}
	}
	v.size = n
	return nil
}

// PushBack appends value. Amortized O(1); see EmplaceBack for the growth
// contract.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.EmplaceBack(func() (T, error) { return value, nil })
	return err
}

// EmplaceBack appends the element produced by construct and returns its
// address. When the vector is full it grows by the growth policy; the new
// element is produced into its target slot in the fresh block before any
// existing element is relocated, so a constructor failure disturbs nothing.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	return v.Emplace(v.size, construct)
}

// Insert places value at position pos (0 <= pos <= Len), shifting later
// elements one slot right. Returns the address of the inserted element.
// Worst case O(Len); amortized O(1) when pos == Len.
func (v *Vector[T]) Insert(pos int, value T) (*T, error) {
	return v.Emplace(pos, func() (T, error) { return value, nil })
}

// Emplace inserts the element produced by construct at position pos.
// Panics if pos is out of [0, Len].
//
// Three cases. Growth: the element is produced at its final slot in the new
// block, the prefix and suffix are relocated around it, and the block is
// swapped in, all strongly safe. Append into spare capacity: produced
// directly at the end. Interior into spare capacity: the last element is
// moved into the next raw slot, [pos, size-1) shifts right via assignment
// from the highest index down, and slot pos receives the new value; for
// Relocator element types the shift itself can fail, leaving the weakly
// safe state CopyFrom also documents.
func (v *Vector[T]) Emplace(pos int, construct func() (T, error)) (*T, error) {
	if pos < 0 || pos > v.size {
		panic("vec: insert position out of range")
	}
	if v.size == v.data.Cap() {
		return v.growEmplace(pos, construct)
	}
	elem, err := construct()
	if err != nil {
		return nil, errors.Wrap(err, "vec: constructing element")
	}
	buf := v.data.buf
	if pos == v.size {
		buf[pos] = elem
		v.size++
		return &buf[pos], nil
	}
	if v.prof.relocate == nil {
		buf[v.size] = buf[v.size-1]
		copy(buf[pos+1:v.size], buf[pos:v.size-1])
		buf[pos] = elem
		v.size++
		return &buf[pos], nil
	}
	// Relocator types shift one slot at a time; extend the live range
	// first so size always covers every slot that holds a value.
	if err := v.prof.moveSlot(&buf[v.size], &buf[v.size-1]); err != nil {
		return nil, errors.Wrap(err, "vec: shifting last element")
	}
	v.size++
	for i := v.size - 3; i >= pos; i-- {
		if err := v.prof.moveSlot(&buf[i+1], &buf[i]); err != nil {
			return nil, errors.Wrapf(err, "vec: shifting element %d", i)
		}
	}
	buf[pos] = elem
	return &buf[pos], nil
}

// growEmplace allocates the next block, produces the new element at its
// final position, and relocates the existing elements around it. On any
// failure the partially populated block is unwound in reverse construction
// order and released; the vector is untouched.
func (v *Vector[T]) growEmplace(at int, construct func() (T, error)) (*T, error) {
	fresh := newRawMemory[T](v.grow(v.data.Cap()))
	elem, err := construct()
	if err != nil {
		fresh.Release()
		return nil, errors.Wrap(err, "vec: constructing element")
	}
	fresh.buf[at] = elem
	moved, err := v.prof.relocateSpan(fresh.buf[:at], v.data.buf[:at])
	if err != nil {
		v.prof.unwindReverse(fresh.buf[:moved])
		v.prof.disposeSlot(&fresh.buf[at])
		fresh.Release()
		return nil, err
	}
	moved, err = v.prof.relocateSpan(fresh.buf[at+1:v.size+1], v.data.buf[at:v.size])
	if err != nil {
		v.prof.unwindReverse(fresh.buf[at+1 : at+1+moved])
		v.prof.unwindReverse(fresh.buf[:at])
		v.prof.disposeSlot(&fresh.buf[at])
		fresh.Release()
		return nil, err
	}
	v.adopt(&fresh)
	v.size++
	return &v.data.buf[at], nil
}

// PopBack destructs the last element and shrinks by one. A no-op on an
// empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.prof.disposeSlot(&v.data.buf[v.size])
}

// Erase removes the element at pos, shifting [pos+1, size) one slot left.
// Returns the address of the element now occupying pos, or nil when the
// erased element was the last one. Panics on an empty vector or an
// out-of-range pos. For Relocator element types the left shift can fail,
// leaving the weakly safe state documented on CopyFrom.
func (v *Vector[T]) Erase(pos int) (*T, error) {
	if v.size == 0 {
		panic("vec: erase on empty vector")
	}
	if pos < 0 || pos >= v.size {
		panic("vec: erase position out of range")
	}
	buf := v.data.buf
	v.prof.disposeSlot(&buf[pos])
	if v.prof.relocate == nil {
		copy(buf[pos:v.size-1], buf[pos+1:v.size])
		v.size--
		var zero T
		buf[v.size] = zero
	} else {
		for i := pos + 1; i < v.size; i++ {
			if err := v.prof.moveSlot(&buf[i-1], &buf[i]); err != nil {
				return nil, errors.Wrapf(err, "vec: shifting element %d", i)
			}
		}
		v.size--
	}
	if pos == v.size {
		return nil, nil
	}
	return &buf[pos], nil
}

// Clear destructs all live elements in index order and keeps the block for
// reuse.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.prof.disposeSlot(&v.data.buf[i])
	}
	v.size = 0
}

// Release destructs all live elements and drops the storage block. The
// vector stays usable as an empty vector with capacity zero.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}
