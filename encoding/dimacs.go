package encoding

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ParseDimacs reads a DIMACS CNF stream into a list of clauses over
// signed integer literals. Comment and problem lines are skipped and
// the clause terminator 0 is dropped.
func ParseDimacs(in io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(in)
	sentences := [][]int{}

	for scanner.Scan() {
		sentence := []int{}
		fields := bytes.Fields(scanner.Bytes())

		if len(fields) == 0 {
			continue
		}
		prefix := string(fields[0])

		if prefix == "c" || prefix == "p" {
			continue
		}
		for _, field := range fields {
			p, err := strconv.Atoi(string(field))
			if err != nil {
				return nil, errors.Wrapf(err, "bad literal %q", field)
			}
			if p != 0 {
				sentence = append(sentence, p)
			}
		}
		sentences = append(sentences, sentence)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read cnf")
	}
	return sentences, nil
}
