package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/leifhelm/dpll-solver/cnf"
	"github.com/leifhelm/dpll-solver/config"
	"github.com/leifhelm/dpll-solver/order"
	"github.com/leifhelm/dpll-solver/polarity"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Solver is a DPLL SAT solver. It decides satisfiability of a
// conjunction of clauses by depth-first search with unit propagation,
// pure literal elimination and chronological backtracking.
type Solver struct {
	// config is the solver's configuration
	config *config.Config
	// logger is the solver's logger
	logger *logrus.Logger

	// numVars is the number of variables of the input formula.
	numVars int
	// numClauses is the number of clauses of the input formula.
	numClauses int

	// Search Fields

	// steps is the search stack. The root step sits at the bottom and
	// each following step eliminates one literal from its predecessor.
	steps []*Step
	// order selects branching variables in ascending index order.
	order *order.Order
	// pureState is a scratch buffer for the pure literal scan, sized to
	// the variable count and reused every iteration.
	pureState []polarity.Polarity
	// model stores the most recently discovered model.
	model *Model

	// Stats Fields

	// decisions keeps track of how many branching decisions were made.
	decisions int
	// propagations keeps track of how many unit propagations occurred.
	propagations int
	// pureLiterals keeps track of how many pure literals were eliminated.
	pureLiterals int
	// backtracks keeps track of how many conflicts forced backtracking.
	backtracks int
}

// New returns a new initialized solver. The builder's clauses and
// variable universe are adopted; the builder must not be used
// afterwards.
func New(b *cnf.Builder, conf *config.Config) *Solver {
	s := &Solver{
		config:     conf,
		logger:     conf.Logger,
		numVars:    b.NumVars(),
		numClauses: len(b.Clauses()),
		order:      order.New(b.NumVars()),
		pureState:  make([]polarity.Polarity, b.NumVars()),
	}
	s.steps = append(s.steps, newStep(b))

	return s
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Model returns the model found by the last successful Solve call.
func (s *Solver) Model() *Model {
	return s.model
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return s.numVars
}

// NClauses returns the number of input clauses.
func (s *Solver) NClauses() int {
	return s.numClauses
}

// NDecisions returns the number of branching decisions made.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// NPropagations returns the number of unit propagations that occurred.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NPureLiterals returns the number of pure literal eliminations.
func (s *Solver) NPureLiterals() int {
	return s.pureLiterals
}

// NBacktracks returns the number of backtracks performed.
func (s *Solver) NBacktracks() int {
	return s.backtracks
}

// top returns the step on top of the search stack.
func (s *Solver) top() *Step {
	return s.steps[len(s.steps)-1]
}

// push pushes a step onto the search stack.
func (s *Solver) push(st *Step) {
	s.steps = append(s.steps, st)
}

// pop removes and returns the step on top of the search stack.
func (s *Solver) pop() *Step {
	st := s.top()
	s.steps[len(s.steps)-1] = nil
	s.steps = s.steps[:len(s.steps)-1]

	return st
}
