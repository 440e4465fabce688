// Package vec implements a generic, contiguous, growable sequence container
// built from two layers: RawMemory, which exclusively owns one block of
// element slots and knows nothing about their contents, and Vector, which
// tracks a live-element count over that block and implements every
// value-level operation.
//
// # Overview
//
// Vector is the classic dynamic array: capacity-amortized append with
// doubling growth, arbitrary-position insertion and removal, deep copies,
// O(1) moves and swaps. It is intended as a building block for higher-level
// structures that need precise control over element lifetime and storage
// reuse rather than a replacement for ordinary slices.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release()
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 9) // [1 9 2]
//	v.Erase(0)     // [9 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifetime
//
// Slots below Len hold live values; slots between Len and Cap are raw and
// always zero-valued, so the garbage collector never retains anything
// through them. Element types may opt into three capabilities:
//
//   - Cloner: fallible deep duplication, used by Clone and CopyFrom
//   - Relocator: fallible relocation for values that cannot be blindly
//     assigned to a new slot; everything else is moved by assignment
//   - Disposer: teardown run whenever an element is destructed
//
// Plain types (implementing none of these) are copied and moved by
// assignment and none of their operations can fail.
//
// # Failure Guarantees
//
// Operations that populate a fresh block before adopting it (Clone,
// Reserve, growth-triggered PushBack/Insert, the growing path of CopyFrom)
// are strongly safe: on failure the partial block is unwound in reverse
// construction order and released, and the vector is left exactly as it
// was. Operations that rework the existing block in place (the reuse path
// of CopyFrom, interior Insert and Erase with a Relocator element type)
// are weakly safe: the vector stays consistent (Len always counts exactly
// the live slots) but may be left between the old and intended new state.
//
// # Contract Violations
//
// Out-of-range indexes and misuse of Erase are programming errors, not
// runtime conditions; the package fails fast with a panic carrying a
// "vec:" message. There is no checked-error variant.
//
// # Thread Safety
//
// Vector performs no internal synchronization. Concurrent mutation requires
// external locking supplied by the caller.
package vec
