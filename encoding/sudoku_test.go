package encoding

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const grid = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestParseSudoku(t *testing.T) {
	parsed, err := ParseSudoku(strings.NewReader(grid))
	if err != nil {
		t.Fatal(err)
	}
	if parsed[0][0] != 5 || parsed[0][4] != 7 {
		t.Fatalf("ParseSudoku() misread givens, got row 0: %v", parsed[0])
	}
	if parsed[0][2] != Blank || parsed[8][0] != Blank {
		t.Fatalf("ParseSudoku() misread blanks")
	}
	if parsed[8][8] != 9 {
		t.Fatalf("ParseSudoku() misread last cell, got: %d", parsed[8][8])
	}
}

func TestParseSudokuErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"short row", "53..7...\n"},
		{"long row", "53..7....1\n"},
		{"bad cell", strings.Replace(grid, "5", "x", 1)},
		{"zero cell", strings.Replace(grid, "5", "0", 1)},
		{"missing rows", "53..7....\n6..195...\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSudoku(strings.NewReader(tt.text))
			if errors.Cause(err) != ErrParse {
				t.Fatalf("ParseSudoku() failed, got error: %v", err)
			}
		})
	}
}

func TestFormatSudoku(t *testing.T) {
	var solved [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			solved[r][c] = (r*3+r/3+c)%9 + 1
		}
	}
	out := FormatSudoku(solved)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("FormatSudoku() produced %d lines", len(lines))
	}
	if lines[0] != "123456789" {
		t.Fatalf("FormatSudoku() failed, got first line: %s", lines[0])
	}
	if lines[1] != "456789123" {
		t.Fatalf("FormatSudoku() failed, got second line: %s", lines[1])
	}
}
