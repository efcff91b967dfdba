package solver

import (
	"github.com/leifhelm/dpll-solver/cnf"
	"github.com/leifhelm/dpll-solver/lit"
	"github.com/leifhelm/dpll-solver/polarity"
	"github.com/leifhelm/dpll-solver/tribool"
)

// Step is one node of the DPLL search tree. Each step owns a private
// clause set derived from its parent by eliminating one literal, so
// backtracking simply drops the step. The root adopts the builder's
// clauses and carries no decision.
type Step struct {
	// clauses is the clause set at this point of the search.
	clauses []cnf.Clause
	// level counts the freely chosen decisions on the path to this step.
	level int
	// decision is the literal whose elimination produced this step, or
	// lit.Undef for the root.
	decision lit.Lit
	// freelyChosen is true if decision was a branching guess rather
	// than a forced unit or pure literal.
	freelyChosen bool
}

// newStep returns the root step, adopting the builder's clause list.
func newStep(b *cnf.Builder) *Step {
	return &Step{
		clauses: b.Clauses(),
	}
}

// eliminate returns the successor step obtained by assigning p.
// Satisfied clauses are dropped and every other clause is resolved
// against p into freshly allocated storage; the receiver stays intact
// for backtracking. The decision level grows only on freely chosen
// assignments.
func (st *Step) eliminate(p lit.Lit, freelyChosen bool) *Step {
	clauses := make([]cnf.Clause, 0, len(st.clauses))

	for _, c := range st.clauses {
		next, satisfied := c.Eliminate(p)
		if satisfied {
			continue
		}
		clauses = append(clauses, next)
	}
	level := st.level
	if freelyChosen {
		level++
	}
	return &Step{
		clauses:      clauses,
		level:        level,
		decision:     p,
		freelyChosen: freelyChosen,
	}
}

// sat classifies the step: true when no clauses remain, false when the
// step contains an empty clause, undef otherwise.
func (st *Step) sat() tribool.Tribool {
	if len(st.clauses) == 0 {
		return tribool.True
	}
	for _, c := range st.clauses {
		if c.Empty() {
			return tribool.False
		}
	}
	return tribool.Undef
}

// unit returns the literal of the first unit clause in insertion
// order, if any.
func (st *Step) unit() (lit.Lit, bool) {
	for _, c := range st.clauses {
		if p, ok := c.Unit(); ok {
			return p, true
		}
	}
	return lit.Undef, false
}

// pure scans the clause set and returns the pure literal of the lowest
// indexed variable occurring with a single polarity. state is a caller
// owned buffer of size N reused across calls.
func (st *Step) pure(state []polarity.Polarity) (lit.Lit, bool) {
	for i := range state {
		state[i] = polarity.None
	}
	for _, c := range st.clauses {
		for _, q := range c.Lits() {
			state[q.Index()] = state[q.Index()].Observe(q)
		}
	}
	for i, pol := range state {
		if p, ok := pol.Pure(lit.Var(i + 1)); ok {
			return p, true
		}
	}
	return lit.Undef, false
}
