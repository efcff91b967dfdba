package encoding

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrParse is returned for malformed Sudoku input.
var ErrParse = errors.New("malformed sudoku grid")

// Blank marks an unconstrained cell in a parsed grid.
const Blank = 0

// ParseSudoku reads a 9x9 Sudoku grid: nine lines of nine characters,
// where '1' through '9' are givens and '.' is a blank cell. Anything
// else, including short or missing lines, is a parse error.
func ParseSudoku(in io.Reader) ([9][9]int, error) {
	var grid [9][9]int
	scanner := bufio.NewScanner(in)

	for row := 0; row < 9; row++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return grid, errors.Wrap(err, "read sudoku")
			}
			return grid, errors.Wrapf(ErrParse, "missing row %d", row+1)
		}
		line := scanner.Text()
		if len(line) != 9 {
			return grid, errors.Wrapf(ErrParse, "row %d has %d cells", row+1, len(line))
		}
		for col, cell := range line {
			switch {
			case cell == '.':
				grid[row][col] = Blank
			case cell >= '1' && cell <= '9':
				grid[row][col] = int(cell - '0')
			default:
				return grid, errors.Wrapf(ErrParse, "row %d cell %d is %q", row+1, col+1, cell)
			}
		}
	}
	return grid, nil
}

// FormatSudoku renders a solved grid as nine lines of nine digits.
func FormatSudoku(grid [9][9]int) string {
	var b strings.Builder

	for _, row := range grid {
		for _, cell := range row {
			b.WriteByte(byte('0' + cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
