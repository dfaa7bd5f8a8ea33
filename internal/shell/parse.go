package shell

import (
	"strconv"
	"strings"
)

// parseInts parses exactly n whitespace-separated integers from line.
func parseInts(line string, n int, want string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, &InputError{Want: want, Input: line}
	}

	vals := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &InputError{Want: want, Input: line}
		}
		vals[i] = v
	}
	return vals, nil
}

// parseChoice parses a menu selection.
func parseChoice(line string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &InputError{Want: "a menu number", Input: line}
	}
	return v, nil
}
