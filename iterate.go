package vec

import "iter"

// All yields (index, value) for each live element in order. Only the live
// range is traversed, never raw capacity.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.buf[i]) {
				return
			}
		}
	}
}

// Refs yields the address of each live element in order, for in-place
// mutation. The addresses go stale under the same rules as Ref; do not grow
// or remove while ranging.
func (v *Vector[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(&v.data.buf[i]) {
				return
			}
		}
	}
}
