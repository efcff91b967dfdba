package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leifhelm/dpll-solver/cnf"
	"github.com/leifhelm/dpll-solver/config"
	"github.com/leifhelm/dpll-solver/encoding"
	"github.com/leifhelm/dpll-solver/lit"
	"github.com/leifhelm/dpll-solver/solver"
)

const (
	exitUnsolveable = 1
	exitUnsat       = 3
	exitParse       = 65
)

var (
	errUnsolveable = errors.New("grid is unsolveable")
	errUnsat       = errors.New("formula is unsatisfiable")
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		switch errors.Cause(err) {
		case errUnsolveable, errUnsat:
			// Already reported on stdout.
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch errors.Cause(err) {
	case errUnsolveable:
		return exitUnsolveable
	case errUnsat:
		return exitUnsat
	case encoding.ErrParse:
		return exitParse
	}
	return 1
}

func newRootCmd() *cobra.Command {
	conf := config.New()
	debug := false

	cmd := &cobra.Command{
		Use:           "dpll-solver",
		Short:         "A DPLL SAT and finite-domain constraint solver",
		Version:       solver.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				conf.Logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "use debug log level")
	cmd.AddCommand(newSudokuCmd(conf))
	cmd.AddCommand(newDimacsCmd(conf))

	return cmd
}

func newSudokuCmd(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku",
		Short: "Solves a 9x9 Sudoku grid read from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := encoding.ParseSudoku(cmd.InOrStdin())
			if err != nil {
				return err
			}
			solved, ok, err := solveSudoku(conf, grid)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Unsolveable")
				return errUnsolveable
			}
			fmt.Fprint(cmd.OutOrStdout(), encoding.FormatSudoku(solved))
			return nil
		},
	}
}

func newDimacsCmd(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dimacs <input.cnf>",
		Short: "Solves a DIMACS CNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			sentences, err := encoding.ParseDimacs(f)
			if err != nil {
				return err
			}
			s, err := newDimacsSolver(conf, sentences)
			if err != nil {
				return err
			}
			conf.Logger.Infof("Starting solver %s", solver.Version())

			tStart := time.Now()
			sat := s.Solve()
			displayStats(conf.Logger, s, time.Since(tStart))

			if !sat {
				fmt.Fprint(cmd.OutOrStdout(), "p UNSAT\n")
				return errUnsat
			}
			fmt.Fprint(cmd.OutOrStdout(), "p SAT\n")
			displayModel(cmd, s)
			return nil
		},
	}
}

// newDimacsSolver mints the variable universe mentioned by the parsed
// clauses and loads them into a fresh solver.
func newDimacsSolver(conf *config.Config, sentences [][]int) (*solver.Solver, error) {
	maxVar := 0
	for _, sentence := range sentences {
		for _, p := range sentence {
			if p < 0 {
				p = -p
			}
			if p > maxVar {
				maxVar = p
			}
		}
	}
	b := cnf.NewBuilder()
	for i := 0; i < maxVar; i++ {
		if _, err := b.NewLit(); err != nil {
			return nil, err
		}
	}
	for _, sentence := range sentences {
		lits := make([]lit.Lit, len(sentence))
		for i, p := range sentence {
			lits[i] = lit.Lit(p)
		}
		if err := b.Add(lits...); err != nil {
			return nil, err
		}
	}
	return solver.New(b, conf), nil
}

func displayModel(cmd *cobra.Command, s *solver.Solver) {
	m := s.Model()

	for v := lit.Var(1); v.Index() < m.Len(); v++ {
		p := v.Pos()
		if !m.Value(v) {
			p = v.Neg()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d ", int32(p))
	}
	fmt.Fprint(cmd.OutOrStdout(), "0\n")
}

func displayStats(logger *logrus.Logger, s *solver.Solver, t time.Duration) {
	logger.WithFields(logrus.Fields{
		"time":         t.Seconds(),
		"variables":    s.NVars(),
		"clauses":      s.NClauses(),
		"decisions":    s.NDecisions(),
		"propagations": s.NPropagations(),
		"pureLiterals": s.NPureLiterals(),
		"backtracks":   s.NBacktracks(),
	}).Info("Finished solving")
}
