package polarity

import (
	"testing"

	"github.com/leifhelm/dpll-solver/lit"
)

func TestObserve(t *testing.T) {
	if p := None.Observe(lit.Var(3).Pos()); p != Positive {
		t.Fatalf("TestObserve() failed, got: %s", p)
	}
	if p := None.Observe(lit.Var(3).Neg()); p != Negative {
		t.Fatalf("TestObserve() failed, got: %s", p)
	}
	if p := Positive.Observe(lit.Var(3).Neg()); p != Mixed {
		t.Fatalf("TestObserve() failed, got: %s", p)
	}
	if p := Mixed.Observe(lit.Var(3).Pos()); p != Mixed {
		t.Fatalf("TestObserve() failed, got: %s", p)
	}
}

func TestPure(t *testing.T) {
	if l, ok := Positive.Pure(7); !ok || l != lit.Var(7).Pos() {
		t.Fatalf("TestPure() failed, got: %s", l)
	}
	if l, ok := Negative.Pure(7); !ok || l != lit.Var(7).Neg() {
		t.Fatalf("TestPure() failed, got: %s", l)
	}
	if _, ok := None.Pure(7); ok {
		t.Fatalf("TestPure() failed, unoccurring variable reported pure")
	}
	if _, ok := Mixed.Pure(7); ok {
		t.Fatalf("TestPure() failed, mixed variable reported pure")
	}
}
