package solver

import (
	"github.com/leifhelm/dpll-solver/lit"
)

// Solve runs the DPLL search to completion, returning true when the
// formula is satisfiable. On success the model is available through
// Model. The search is fully determined by the variable and clause
// insertion order: unit propagation is tried before pure literal
// elimination before branching, each scanning in ascending order, and
// branching tries the positive polarity first.
func (s *Solver) Solve() bool {
	for len(s.steps) > 0 {
		top := s.top()

		switch status := top.sat(); {
		case status.True():
			s.logger.Debugf("Satisfied at decision level %d", top.level)
			s.model = newModel(s.numVars, s.steps)

			return true
		case status.False():
			if top.level == 0 {
				// A conflict with no decision left to revisit.
				return false
			}
			s.backtrack()
			continue
		}

		if p, ok := top.unit(); ok {
			s.logger.Debugf("Unit propagation of %s", p)
			s.propagations++
			s.push(top.eliminate(p, false))
			continue
		}
		if p, ok := top.pure(s.pureState); ok {
			s.logger.Debugf("Pure literal %s", p)
			s.pureLiterals++
			s.push(top.eliminate(p, false))
			continue
		}
		p := s.chooseLiteral()
		s.logger.Debugf("Deciding %s at level %d", p, top.level+1)
		s.decisions++
		s.push(top.eliminate(p, true))
	}
	// Every freely chosen decision was tried with both polarities.
	return false
}

// backtrack pops steps until it finds a freely chosen decision whose
// negation has not been tried yet, then pushes the flipped step.
// Forced steps and already flipped decisions are discarded. If the
// stack empties, the search is exhausted.
//
// Positive polarity is always tried first, so a negative freely chosen
// decision marks a branch that has been flipped before and is skipped
// on the way up.
func (s *Solver) backtrack() {
	s.backtracks++

	for len(s.steps) > 0 {
		st := s.pop()
		if st.freelyChosen && st.decision.Positive() {
			s.logger.Debugf("Backtracking, flipping %s", st.decision)
			s.push(s.top().eliminate(st.decision.Not(), true))

			return
		}
	}
}

// chooseLiteral returns the positive literal of the lowest indexed
// variable that does not yet carry a decision on the stack.
func (s *Solver) chooseLiteral() lit.Lit {
	s.order.Reset()

	for _, st := range s.steps {
		if st.decision != lit.Undef {
			s.order.Mark(st.decision.Var())
		}
	}
	v, ok := s.order.Choose()
	if !ok {
		// An unsatisfied step always mentions an undecided variable.
		panic("solver: no unassigned variable in an unsatisfied step")
	}
	return v.Pos()
}
