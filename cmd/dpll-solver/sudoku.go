package main

import (
	"github.com/leifhelm/dpll-solver/config"
	"github.com/leifhelm/dpll-solver/encoding"
	"github.com/leifhelm/dpll-solver/fd"
)

// solveSudoku compiles the grid into finite-domain constraints: one
// [1,9] variable per cell, distinctness over every row, column and
// 3x3 box, and an equality per given.
func solveSudoku(conf *config.Config, grid [9][9]int) ([9][9]int, bool, error) {
	s := fd.New(conf)

	var cells [9][9]*fd.IntVar
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v, err := s.NewVariable(1, 9)
			if err != nil {
				return grid, false, err
			}
			cells[r][c] = v
		}
	}
	for i := 0; i < 9; i++ {
		row := make([]*fd.IntVar, 9)
		col := make([]*fd.IntVar, 9)
		box := make([]*fd.IntVar, 9)
		for j := 0; j < 9; j++ {
			row[j] = cells[i][j]
			col[j] = cells[j][i]
			box[j] = cells[i/3*3+j/3][i%3*3+j%3]
		}
		if err := s.Distinct(row...); err != nil {
			return grid, false, err
		}
		if err := s.Distinct(col...); err != nil {
			return grid, false, err
		}
		if err := s.Distinct(box...); err != nil {
			return grid, false, err
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] == encoding.Blank {
				continue
			}
			if err := s.EqualToConstant(cells[r][c], grid[r][c]); err != nil {
				return grid, false, err
			}
		}
	}

	m, sat := s.Solve()
	if !sat {
		return grid, false, nil
	}
	var solved [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			solved[r][c] = m.Value(cells[r][c])
		}
	}
	return solved, true, nil
}
