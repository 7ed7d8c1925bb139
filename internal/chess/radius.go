package chess

// Radius produces the sequence 1, 2, 3, ... either without end or up to a
// maximum. After reporting exhaustion it starts over from 1.
type Radius struct {
	counter int
	max     int
}

// NewRadius returns an iterator bounded to max. A max of 0 or less is unbounded.
func NewRadius(max int) *Radius {
	if max < 0 {
		max = 0
	}
	return &Radius{max: max}
}

// Next returns the next radius. When a bounded iterator is exhausted it
// returns done=true once and rewinds to its initial state.
func (r *Radius) Next() (value int, done bool) {
	if r.max == 0 || r.counter < r.max {
		r.counter++
		return r.counter, false
	}
	r.counter = 0
	return 0, true
}

// Reset rewinds the iterator so the next call returns 1.
func (r *Radius) Reset() {
	r.counter = 0
}

// Max returns the bound, or 0 when unbounded.
func (r *Radius) Max() int {
	return r.max
}

// Bounded reports whether the iterator has a maximum.
func (r *Radius) Bounded() bool {
	return r.max > 0
}
