package cnf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/leifhelm/dpll-solver/lit"
)

func lits(vals ...int32) []lit.Lit {
	ls := make([]lit.Lit, len(vals))
	for i, v := range vals {
		ls[i] = lit.Lit(v)
	}
	return ls
}

func TestEliminate(t *testing.T) {
	for _, tt := range []struct {
		name      string
		clause    []lit.Lit
		p         lit.Lit
		want      []lit.Lit
		satisfied bool
	}{
		{
			name:      "same literal satisfies",
			clause:    lits(1, -2, 3),
			p:         lit.Lit(-2),
			satisfied: true,
		},
		{
			name:   "opposite sign drops out",
			clause: lits(1, -2, 3),
			p:      lit.Lit(2),
			want:   lits(1, 3),
		},
		{
			name:   "unrelated literals survive in order",
			clause: lits(4, -5, 6),
			p:      lit.Lit(1),
			want:   lits(4, -5, 6),
		},
		{
			name:   "last literal dropped yields conflict",
			clause: lits(-7),
			p:      lit.Lit(7),
			want:   lits(),
		},
		{
			name:   "every opposite occurrence is removed",
			clause: lits(2, -1, 3, -1),
			p:      lit.Lit(1),
			want:   lits(2, 3),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, satisfied := NewClause(tt.clause).Eliminate(tt.p)

			if satisfied != tt.satisfied {
				t.Fatalf("Eliminate() satisfied = %t, want %t", satisfied, tt.satisfied)
			}
			if satisfied {
				return
			}
			if diff := cmp.Diff(got.Lits(), tt.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("Eliminate() (-got, +want):\n%s", diff)
			}
		})
	}
}

func TestEliminateCopies(t *testing.T) {
	c := NewClause(lits(1, -2, 3))

	if got, _ := c.Eliminate(lit.Lit(2)); got.Len() != 2 {
		t.Fatalf("Eliminate() did not shorten the clause, got: %s", got)
	}
	if c.Len() != 3 {
		t.Fatalf("Eliminate() mutated its receiver, got: %s", c)
	}
}

func TestUnit(t *testing.T) {
	if p, ok := NewClause(lits(-4)).Unit(); !ok || p != lit.Lit(-4) {
		t.Fatalf("Unit() failed, got: %s", p)
	}
	if _, ok := NewClause(lits(1, 2)).Unit(); ok {
		t.Fatalf("Unit() reported a binary clause as unit")
	}
	if _, ok := NewClause(nil).Unit(); ok {
		t.Fatalf("Unit() reported the empty clause as unit")
	}
}
