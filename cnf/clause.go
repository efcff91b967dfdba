package cnf

import (
	"strings"

	"github.com/leifhelm/dpll-solver/lit"
)

// Clause is a CNF clause, the disjunction of an ordered sequence of
// literals. The empty clause denotes falsehood.
type Clause struct {
	lits []lit.Lit
}

// NewClause returns a clause holding its own copy of lits.
func NewClause(lits []lit.Lit) Clause {
	owned := make([]lit.Lit, len(lits))
	copy(owned, lits)

	return Clause{lits: owned}
}

// Len returns the length of the clause.
func (c Clause) Len() int {
	return len(c.lits)
}

// Empty returns true if the clause has no literals left.
func (c Clause) Empty() bool {
	return len(c.lits) == 0
}

// Lits returns the clause's literals. The slice is owned by the clause
// and must not be modified.
func (c Clause) Lits() []lit.Lit {
	return c.lits
}

// Unit returns the clause's single literal if the clause is unit.
func (c Clause) Unit() (lit.Lit, bool) {
	if len(c.lits) == 1 {
		return c.lits[0], true
	}
	return lit.Undef, false
}

// Eliminate resolves the clause against the assignment p. A clause
// containing p itself is satisfied, reported by the second return
// value. Otherwise the result is a new clause with every occurrence of
// ~p removed, remaining literals in original order. The result may be
// empty, which is a conflict.
func (c Clause) Eliminate(p lit.Lit) (Clause, bool) {
	kept := make([]lit.Lit, 0, len(c.lits))

	for _, q := range c.lits {
		if q == p {
			return Clause{}, true
		}
		if lit.SameVar(q, p) {
			// ~p resolves to false and drops out of the disjunction.
			continue
		}
		kept = append(kept, q)
	}
	return Clause{lits: kept}, false
}

// String implements the Stringer interface.
func (c Clause) String() string {
	litStrs := make([]string, len(c.lits))

	for i, l := range c.lits {
		litStrs[i] = l.String()
	}
	return strings.Join(litStrs, ",")
}
