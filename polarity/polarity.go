package polarity

import "github.com/leifhelm/dpll-solver/lit"

// Polarity classifies the occurrences of a variable across a clause
// set. The states form a small lattice: None is the bottom, Mixed the
// top, and observing a literal moves the state upwards only.
type Polarity uint8

const (
	// None means the variable does not occur.
	None = Polarity(0)
	// Positive means every occurrence is a positive literal.
	Positive = Polarity(1)
	// Negative means every occurrence is a negative literal.
	Negative = Polarity(2)
	// Mixed means the variable occurs with both signs.
	Mixed = Polarity(3)
)

// Observe folds one occurrence of the variable into the state.
func (p Polarity) Observe(l lit.Lit) Polarity {
	if l.Positive() {
		return p | Positive
	}
	return p | Negative
}

// Pure returns the literal satisfying every occurrence of v, if the
// state is purely positive or purely negative.
func (p Polarity) Pure(v lit.Var) (lit.Lit, bool) {
	switch p {
	case Positive:
		return v.Pos(), true
	case Negative:
		return v.Neg(), true
	default:
		return lit.Undef, false
	}
}

// String implements the Stringer interface.
func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Mixed:
		return "mixed"
	default:
		return "none"
	}
}
