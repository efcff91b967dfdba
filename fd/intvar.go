package fd

import "github.com/leifhelm/dpll-solver/lit"

// IntVar is a finite-domain integer variable over a contiguous
// inclusive domain. The i-th one-hot literal being true means the
// variable takes the value offset+i. Handles stay valid as long as the
// Solver that minted them.
type IntVar struct {
	values []lit.Lit
	offset int
}

// From returns the inclusive lower bound of the domain.
func (v *IntVar) From() int {
	return v.offset
}

// To returns the inclusive upper bound of the domain.
func (v *IntVar) To() int {
	return v.offset + len(v.values) - 1
}

// Size returns the number of domain values.
func (v *IntVar) Size() int {
	return len(v.values)
}
