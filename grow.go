package vec

// GrowthPolicy computes the next capacity when a full vector needs one more
// slot. It receives the current capacity and must return a strictly larger
// value. Keeping the policy a named function (rather than inlined
// arithmetic) makes amortized-cost claims testable in isolation.
type GrowthPolicy func(capacity int) int

// Doubling is the default policy: max(1, 2*capacity). Doubling bounds total
// relocation work to O(n) across n appends even though a single append may
// relocate every element.
func Doubling(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return 2 * capacity
}

// SetGrowthPolicy replaces the vector's growth policy. It affects only
// future append-driven growth; Reserve and Resize always allocate the exact
// capacity they are asked for. A nil policy restores Doubling.
func (v *Vector[T]) SetGrowthPolicy(p GrowthPolicy) {
	if p == nil {
		p = Doubling
	}
	v.grow = p
}
