package vec

// VectorStats contains a snapshot of a vector's storage accounting.
type VectorStats struct {
	Len         int     // live elements
	Cap         int     // reserved slots
	Spare       int     // raw slots still unused (Cap - Len)
	Utilization float64 // ratio of live to reserved slots (0.0-1.0)
}

// Stats returns a snapshot of the vector's storage accounting. Useful for
// verifying growth-policy behavior and for monitoring memory headroom.
func (v *Vector[T]) Stats() VectorStats {
	c := v.data.Cap()
	s := VectorStats{Len: v.size, Cap: c, Spare: c - v.size}
	if c > 0 {
		s.Utilization = float64(v.size) / float64(c)
	}
	return s
}
