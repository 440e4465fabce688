package vec

import "github.com/pkg/errors"

// opBudget limits how many fallible element operations may succeed before
// the fixture starts failing. A nil budget never fails.
type opBudget struct {
	left int
}

func (b *opBudget) spend() error {
	if b == nil {
		return nil
	}
	if b.left == 0 {
		return errors.New("budget exhausted")
	}
	b.left--
	return nil
}

// fragile is an element type with a fallible deep copy and dispose
// tracking. Relocation is the default move, so fresh-block growth of
// fragile elements never fails; only duplication does.
type fragile struct {
	id     int
	budget *opBudget
	log    *[]int
}

func (f fragile) Clone() (fragile, error) {
	if err := f.budget.spend(); err != nil {
		return fragile{}, err
	}
	return f, nil
}

func (f fragile) Dispose() {
	if f.log != nil {
		*f.log = append(*f.log, f.id)
	}
}

// pinned is an element type that opts out of move relocation: every change
// of slot goes through Relocate, which can fail.
type pinned struct {
	id     int
	budget *opBudget
	log    *[]int
}

func (p pinned) Relocate() (pinned, error) {
	if err := p.budget.spend(); err != nil {
		return pinned{}, err
	}
	return p, nil
}

func (p pinned) Dispose() {
	if p.log != nil {
		*p.log = append(*p.log, p.id)
	}
}

// handle is an element type with teardown only: plain copies and moves,
// but every destruct must reach Dispose.
type handle struct {
	id  int
	log *[]int
}

func (h handle) Dispose() {
	if h.log != nil {
		*h.log = append(*h.log, h.id)
	}
}

// intsOf flattens the live range for content assertions.
func intsOf(v *Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, x)
	}
	return out
}

func idsOf[T any](v *Vector[T], id func(T) int) []int {
	out := make([]int, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, id(x))
	}
	return out
}

func pushAll(v *Vector[int], xs ...int) {
	for _, x := range xs {
		if err := v.PushBack(x); err != nil {
			panic(err)
		}
	}
}
