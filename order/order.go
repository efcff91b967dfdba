package order

import "github.com/leifhelm/dpll-solver/lit"

// Order assists with branching variable selection. Variables that
// already carry a decision on the search path are marked, and the next
// branching variable is always the lowest unmarked one, which keeps
// the search deterministic for a fixed clause insertion order.
type Order struct {
	used []bool
}

// New returns an Order over n variables.
func New(n int) *Order {
	return &Order{
		used: make([]bool, n),
	}
}

// Reset clears all marks. The underlying buffer is reused.
func (o *Order) Reset() {
	for i := range o.used {
		o.used[i] = false
	}
}

// Mark records that v already carries a decision.
func (o *Order) Mark(v lit.Var) {
	o.used[v.Index()] = true
}

// Choose returns the lowest unmarked variable, or false when every
// variable is marked.
func (o *Order) Choose() (lit.Var, bool) {
	for i, used := range o.used {
		if !used {
			return lit.Var(i + 1), true
		}
	}
	return 0, false
}
