// Package fd compiles finite-domain integer variables and constraints
// into CNF clauses, hands them to the DPLL solver and decodes boolean
// models back into integer values. Variables are one-hot encoded: one
// boolean literal per domain value, with pairwise at-most-one clauses.
package fd

import (
	"github.com/pkg/errors"

	"github.com/leifhelm/dpll-solver/cnf"
	"github.com/leifhelm/dpll-solver/config"
	"github.com/leifhelm/dpll-solver/lit"
	"github.com/leifhelm/dpll-solver/solver"
)

var (
	// ErrInvalidRange is returned when a variable's domain is empty.
	ErrInvalidRange = errors.New("domain lower bound exceeds upper bound")
	// ErrInvalidSort is returned when Distinct is given variables over
	// differing domains.
	ErrInvalidSort = errors.New("variables range over differing domains")
	// ErrInvalidConstant is returned when a constant lies outside a
	// variable's domain.
	ErrInvalidConstant = errors.New("constant outside the variable's domain")
)

// Solver accumulates finite-domain variables and constraints and
// solves them through the DPLL engine.
type Solver struct {
	// config is the solver's configuration
	config *config.Config
	// constraints is the CNF builder the constraint encoders post to.
	constraints *cnf.Builder
}

// New returns a new empty finite-domain solver.
func New(conf *config.Config) *Solver {
	return &Solver{
		config:      conf,
		constraints: cnf.NewBuilder(),
	}
}

// NewVariable mints a variable with the inclusive domain [from, to].
// The encoding allocates to-from+1 boolean literals, one per domain
// value, and posts the at-least-one and pairwise at-most-one clauses
// that make exactly one of them true in every model.
func (s *Solver) NewVariable(from, to int) (*IntVar, error) {
	if from > to {
		return nil, errors.Wrapf(ErrInvalidRange, "[%d, %d]", from, to)
	}
	values := make([]lit.Lit, to-from+1)

	for i := range values {
		p, err := s.constraints.NewLit()
		if err != nil {
			return nil, err
		}
		values[i] = p
	}
	if err := s.constraints.Add(values...); err != nil {
		return nil, err
	}
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if err := s.constraints.Add(values[i].Not(), values[j].Not()); err != nil {
				return nil, err
			}
		}
	}
	return &IntVar{
		values: values,
		offset: from,
	}, nil
}

// Distinct requires all given variables to take pairwise distinct
// values. The variables must range over the same domain. An empty or
// singleton input needs no clauses.
func (s *Solver) Distinct(vars ...*IntVar) error {
	if len(vars) < 2 {
		return nil
	}
	first := vars[0]

	for _, v := range vars[1:] {
		if v.offset != first.offset || len(v.values) != len(first.values) {
			return errors.Wrapf(ErrInvalidSort, "[%d, %d] and [%d, %d]",
				first.offset, first.offset+len(first.values)-1,
				v.offset, v.offset+len(v.values)-1)
		}
	}
	for i := range first.values {
		for a := 0; a < len(vars); a++ {
			for b := a + 1; b < len(vars); b++ {
				err := s.constraints.Add(vars[a].values[i].Not(), vars[b].values[i].Not())
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// EqualToConstant pins v to the given domain value with a unit clause.
func (s *Solver) EqualToConstant(v *IntVar, value int) error {
	if value < v.offset || value > v.offset+len(v.values)-1 {
		return errors.Wrapf(ErrInvalidConstant, "%d outside [%d, %d]",
			value, v.offset, v.offset+len(v.values)-1)
	}
	return s.constraints.Add(v.values[value-v.offset])
}

// Solve hands the accumulated constraints to the DPLL solver and
// replaces them with a fresh empty builder, so the finite-domain
// solver can be reused afterwards. Clauses posted after Solve belong
// to the next problem. Returns the wrapped model and true on
// satisfiability.
func (s *Solver) Solve() (*Model, bool) {
	b := s.constraints
	s.constraints = cnf.NewBuilder()

	sat := solver.New(b, s.config)
	if !sat.Solve() {
		return nil, false
	}
	return &Model{model: sat.Model()}, true
}
