package cnf

import (
	"github.com/pkg/errors"

	"github.com/leifhelm/dpll-solver/lit"
)

var (
	// ErrInvalidLiteral is returned when a clause mentions a literal
	// whose variable has not been minted yet.
	ErrInvalidLiteral = errors.New("literal references an unknown variable")
	// ErrTooManyVariables is returned when the next variable identity
	// would not fit the literal encoding.
	ErrTooManyVariables = errors.New("variable count exceeds the literal range")
)

// Builder accumulates CNF clauses and mints fresh boolean variables.
// Every literal in every stored clause refers to a minted variable.
type Builder struct {
	numVars int
	clauses []Clause
}

// NewBuilder returns a new empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewLit mints a fresh variable and returns its positive literal.
func (b *Builder) NewLit() (lit.Lit, error) {
	if b.numVars >= int(lit.MaxVar) {
		return lit.Undef, errors.Wrapf(ErrTooManyVariables, "variable %d", b.numVars+1)
	}
	b.numVars++

	return lit.Var(b.numVars).Pos(), nil
}

// Add validates lits against the minted variables, copies them into a
// new clause and appends it. On error no clause is stored.
func (b *Builder) Add(lits ...lit.Lit) error {
	for _, l := range lits {
		if !l.Valid(b.numVars) {
			return errors.Wrapf(ErrInvalidLiteral, "literal %d of %d variables", int32(l), b.numVars)
		}
	}
	b.clauses = append(b.clauses, NewClause(lits))

	return nil
}

// AddClause appends an already-owned clause without revalidation.
func (b *Builder) AddClause(c Clause) {
	b.clauses = append(b.clauses, c)
}

// NumVars returns the number of variables minted so far.
func (b *Builder) NumVars() int {
	return b.numVars
}

// Clauses returns the accumulated clauses.
func (b *Builder) Clauses() []Clause {
	return b.clauses
}
