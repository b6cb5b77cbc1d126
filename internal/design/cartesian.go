package design

// cartesian iterates the index tuples of a multi-dimensional parameter
// sweep in row-major order (last dimension fastest). It flattens the nested
// loops of the wide searches into a single loop with one termination point.
type cartesian struct {
	dims []int
	idx  []int
	done bool
}

func newCartesian(dims ...int) *cartesian {
	c := &cartesian{dims: dims, idx: make([]int, len(dims))}
	for _, d := range dims {
		if d <= 0 {
			c.done = true
		}
	}
	return c
}

// next returns the next index tuple, or false when the sweep is exhausted.
func (c *cartesian) next() ([]int, bool) {
	if c.done {
		return nil, false
	}

	out := make([]int, len(c.idx))
	copy(out, c.idx)

	// Advance, rippling carries from the last dimension
	for i := len(c.idx) - 1; i >= 0; i-- {
		c.idx[i]++
		if c.idx[i] < c.dims[i] {
			return out, true
		}
		c.idx[i] = 0
	}
	c.done = true
	return out, true
}
