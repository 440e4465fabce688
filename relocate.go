package vec

import "github.com/pkg/errors"

// Cloner is implemented by element types whose duplication is fallible or
// otherwise more than a plain value copy (deep buffers, file handles,
// reference counts). Vector.Clone and Vector.CopyFrom duplicate elements
// through it; Insert and PushBack do not, since they receive their value
// from the caller. Types that do not implement Cloner are duplicated by
// assignment, which never fails.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Relocator is implemented by element types whose values cannot simply be
// assigned into a different slot, for example values that hand out their
// own address or hold a registration keyed by location. Relocate returns
// the value to place in the destination slot and may fail; Vector disposes
// the original only once the relocation it belongs to has fully succeeded
// (block growth) or immediately after the replacement exists (in-place
// shifts, the weakly safe paths).
//
// Types that do not implement Relocator are relocated by assignment plus
// zeroing of the source, which never fails. That distinction (fallible
// copy-style relocation versus infallible move) is resolved once per
// element type, not per call.
type Relocator[T any] interface {
	Relocate() (T, error)
}

// Disposer is implemented by element types that need teardown when they are
// destructed (PopBack, Erase, shrink, overwrite, unwind). Dispose must not
// fail and must tolerate being the last use of the value.
type Disposer interface {
	Dispose()
}

// profile caches, per element type, which of the optional capabilities are
// present. A nil func means the plain, infallible behavior applies.
type profile[T any] struct {
	clone    func(*T) (T, error)
	relocate func(*T) (T, error)
	dispose  func(*T)
}

// profileOf resolves the capability query once for T. Both the value and
// its address are probed so value-receiver, pointer-receiver, and pointer
// element types are all honored.
func profileOf[T any]() profile[T] {
	var p profile[T]
	var probe T
	if _, ok := any(probe).(Cloner[T]); ok {
		p.clone = func(src *T) (T, error) { return any(*src).(Cloner[T]).Clone() }
	} else if _, ok := any(&probe).(Cloner[T]); ok {
		p.clone = func(src *T) (T, error) { return any(src).(Cloner[T]).Clone() }
	}
	if _, ok := any(probe).(Relocator[T]); ok {
		p.relocate = func(src *T) (T, error) { return any(*src).(Relocator[T]).Relocate() }
	} else if _, ok := any(&probe).(Relocator[T]); ok {
		p.relocate = func(src *T) (T, error) { return any(src).(Relocator[T]).Relocate() }
	}
	if _, ok := any(probe).(Disposer); ok {
		p.dispose = func(src *T) { any(*src).(Disposer).Dispose() }
	} else if _, ok := any(&probe).(Disposer); ok {
		p.dispose = func(src *T) { any(src).(Disposer).Dispose() }
	}
	return p
}

// relocateSpan transfers the live values in src into dst, equal-length
// spans in two different blocks. Without a Relocator this is a move:
// assignment plus zeroing of the source, and it cannot fail. With a
// Relocator it produces replacements while leaving src fully intact, so a
// mid-span failure commits nothing; the count of dst slots populated so far
// is returned for the caller to unwind.
func (p *profile[T]) relocateSpan(dst, src []T) (int, error) {
	if p.relocate == nil {
		copy(dst, src)
		clear(src)
		return len(src), nil
	}
	for i := range src {
		nv, err := p.relocate(&src[i])
		if err != nil {
			return i, errors.Wrapf(err, "vec: relocating element %d", i)
		}
		dst[i] = nv
	}
	return len(src), nil
}

// cloneValue duplicates the element at src: through Clone when the type has
// one, by plain assignment otherwise (which cannot fail).
func (p *profile[T]) cloneValue(src *T) (T, error) {
	if p.clone == nil {
		return *src, nil
	}
	return p.clone(src)
}

// moveSlot transfers *src into *dst within one block. dst must hold no
// owned value (a raw slot, or one already moved from). For Relocator types
// the original is disposed as soon as its replacement exists, which is why
// in-place shifts are only weakly safe.
func (p *profile[T]) moveSlot(dst, src *T) error {
	if p.relocate == nil {
		*dst = *src
		var zero T
		*src = zero
		return nil
	}
	nv, err := p.relocate(src)
	if err != nil {
		return err
	}
	p.disposeSlot(src)
	*dst = nv
	return nil
}

// disposeSlot destructs a live element and returns its slot to the raw
// (zero) state so no reference is retained through it.
func (p *profile[T]) disposeSlot(s *T) {
	if p.dispose != nil {
		p.dispose(s)
	}
	var zero T
	*s = zero
}

// unwindReverse destructs every element of block in reverse construction
// order; used to abandon a partially populated, not-yet-adopted block.
func (p *profile[T]) unwindReverse(block []T) {
	for i := len(block) - 1; i >= 0; i-- {
		p.disposeSlot(&block[i])
	}
}
