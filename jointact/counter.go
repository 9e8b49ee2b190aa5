// Package jointact - mixed-radix enumeration of joint actions.
package jointact

// Counter enumerates every joint action of a Space exactly once, as a
// mixed-radix odometer with digit 0 moving fastest. The first call to
// Next yields the all-zero action; enumeration order is ascending in the
// mixed-radix sense, which makes "first maximizer found" a well-defined
// tie-break for exhaustive searches.
//
// A Counter is single-use state; it is not safe for concurrent use.
type Counter struct {
	space   Space  // radix per digit; treated as read-only
	digits  Action // current joint action
	started bool   // whether the all-zero action has been yielded
	done    bool   // whether the odometer has wrapped
}

// NewCounter returns a Counter positioned before the first joint action.
// Returns ErrEmptySpace / ErrCardinality for malformed spaces.
//
// Complexity: O(n) construction, O(Size) for a full sweep.
func NewCounter(s Space) (*Counter, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Counter{
		space:  s.Clone(),
		digits: make(Action, len(s)),
	}, nil
}

// Next advances to the following joint action. It returns false once the
// space is exhausted, after which Action must not be consulted until Reset.
//
// Complexity: amortized O(1) per call.
func (c *Counter) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		// First visit: the all-zero action.
		c.started = true
		return true
	}

	var i int
	for i = 0; i < len(c.digits); i++ {
		c.digits[i]++
		if c.digits[i] < c.space[i] {
			return true
		}
		c.digits[i] = 0 // carry into the next digit
	}

	c.done = true
	return false
}

// Action returns the current joint action as a read-only view of the
// counter's internal digits. Clone it before storing it anywhere that
// outlives the next call to Next.
func (c *Counter) Action() Action { return c.digits }

// Reset rewinds the counter to before the first joint action.
func (c *Counter) Reset() {
	var i int
	for i = range c.digits {
		c.digits[i] = 0
	}
	c.started = false
	c.done = false
}
