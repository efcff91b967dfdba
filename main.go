package main

import (
	"fmt"

	"github.com/leifhelm/dpll-solver/cnf"
	"github.com/leifhelm/dpll-solver/config"
	"github.com/leifhelm/dpll-solver/lit"
	"github.com/leifhelm/dpll-solver/solver"
)

func main() {
	printBanner()

	b := cnf.NewBuilder()
	for i := 0; i < 5; i++ {
		b.NewLit()
	}
	b.Add(lit.Lit(-1), lit.Lit(2))
	b.Add(lit.Lit(-2), lit.Lit(3))
	b.Add(lit.Lit(-3), lit.Lit(4))
	b.Add(lit.Lit(-4), lit.Lit(5))
	b.Add(lit.Lit(-5), lit.Lit(-1))

	sat := solver.New(b, config.New())
	if sat.Solve() {
		fmt.Println("SAT")

		m := sat.Model()
		for v := lit.Var(1); v.Index() < m.Len(); v++ {
			fmt.Printf("%d = %t\n", v, m.Value(v))
		}
	} else {
		fmt.Println("UNSAT")
	}
}

func printBanner() {
	fmt.Printf("DPLL Solver %s\n", solver.Version())
	fmt.Println("")
}
