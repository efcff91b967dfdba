package encoding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseDimacs(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want [][]int
	}{
		{
			name: "trivial",
			text: "c trivial\np cnf 1 1\n1 0\n",
			want: [][]int{{1}},
		},
		{
			name: "comments and header are skipped",
			text: "c a comment\nc another\np cnf 3 2\n1 -3 0\n-1 2 3 0\n",
			want: [][]int{{1, -3}, {-1, 2, 3}},
		},
		{
			name: "clause without terminator",
			text: "p cnf 2 1\n1 -2\n",
			want: [][]int{{1, -2}},
		},
		{
			name: "blank lines are ignored",
			text: "p cnf 1 1\n\n1 0\n",
			want: [][]int{{1}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDimacs(strings.NewReader(tt.text))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, tt.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ParseDimacs() (-got, +want):\n%s", diff)
			}
		})
	}
}

func TestParseDimacsBadLiteral(t *testing.T) {
	if _, err := ParseDimacs(strings.NewReader("1 x 0\n")); err == nil {
		t.Fatal("ParseDimacs() accepted a malformed literal")
	}
}
