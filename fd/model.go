package fd

import (
	"fmt"

	"github.com/leifhelm/dpll-solver/solver"
)

// Model wraps a boolean model so finite-domain variables can be read
// back as integers.
type Model struct {
	model *solver.Model
}

// Value decodes v's assignment. Exactly one of the variable's one-hot
// literals is true in any model produced by Solve; a violation means
// the encoding was corrupted and panics.
func (m *Model) Value(v *IntVar) int {
	value, found := 0, false

	for i, p := range v.values {
		if !m.model.Value(p.Var()) {
			continue
		}
		if found {
			panic(fmt.Sprintf("fd: variable with two values, %d and %d", value, v.offset+i))
		}
		value, found = v.offset+i, true
	}
	if !found {
		panic("fd: variable without a value")
	}
	return value
}
