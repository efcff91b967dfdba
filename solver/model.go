package solver

import "github.com/leifhelm/dpll-solver/lit"

// Model is a total assignment of the formula's variables, decoded from
// the decision stack at the time the search succeeded. It owns its
// storage and stays valid after the solver is gone.
type Model struct {
	assignments []bool
}

// newModel decodes the decision stack into a dense assignment vector.
// Variables that never received a decision stay false.
func newModel(n int, steps []*Step) *Model {
	m := &Model{
		assignments: make([]bool, n),
	}
	for _, st := range steps {
		if st.decision != lit.Undef {
			m.assignments[st.decision.Index()] = st.decision.Positive()
		}
	}
	return m
}

// Value returns the assignment of v.
func (m *Model) Value(v lit.Var) bool {
	return m.assignments[v.Index()]
}

// Len returns the number of assigned variables.
func (m *Model) Len() int {
	return len(m.assignments)
}

// Satisfies reports whether the clause formed by lits is satisfied,
// i.e. at least one of its literals evaluates to true under the model.
func (m *Model) Satisfies(lits []lit.Lit) bool {
	for _, l := range lits {
		if m.Value(l.Var()) == l.Positive() {
			return true
		}
	}
	return false
}
