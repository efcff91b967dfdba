package lit

import "fmt"

// Undef marks the absence of a literal, e.g. the decision slot of the
// root search step. It is not a valid literal itself.
const Undef = Lit(0)

// MaxVar is the largest variable identity the literal encoding can
// represent.
const MaxVar = Var(1<<31 - 1)

// Var is a boolean variable. Variables are positive and densely
// numbered from 1, so v-1 addresses parallel arrays of size N.
type Var int32

// Lit is a literal represented by a signed non-zero integer. The
// magnitude names the variable and the sign carries the polarity: a
// positive literal asserts its variable true, a negative one false.
type Lit int32

// Pos returns the literal asserting v true.
func (v Var) Pos() Lit {
	return Lit(v)
}

// Neg returns the literal asserting v false.
func (v Var) Neg() Lit {
	return Lit(-v)
}

// Index returns the variable's 0-based index.
func (v Var) Index() int {
	return int(v) - 1
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return -l
}

// Var returns the literal's variable.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Index returns the 0-based index of the literal's variable.
func (l Lit) Index() int {
	return l.Var().Index()
}

// Positive returns true if the literal asserts its variable true.
func (l Lit) Positive() bool {
	return l > 0
}

// Negative returns true if the literal asserts its variable false.
func (l Lit) Negative() bool {
	return l < 0
}

// Valid reports whether the literal refers to one of the first n
// variables.
func (l Lit) Valid(n int) bool {
	return l != 0 && -Lit(n) <= l && l <= Lit(n)
}

// SameVar returns true if both literals refer to the same variable.
func SameVar(a, b Lit) bool {
	return a.Var() == b.Var()
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Negative() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
