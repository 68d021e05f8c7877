// internal/operands/operands.go
package operands

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts raw command-line arguments into an ordered list of unsigned
// 64-bit integers. Arguments are parsed strictly as base-10 literals: no sign
// characters, no surrounding whitespace, no empty strings. Parsing stops at
// the first failure and the returned error names the offending argument and
// wraps the underlying strconv cause; no partial list is returned.
func Parse(args []string) ([]uint64, error) {
	numbers := make([]uint64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing argument %q: %w", arg, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// Format renders the number list as a bracketed, comma-separated literal,
// e.g. "[6, 10, 15]". This is the representation used in the success line.
func Format(numbers []uint64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range numbers {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(n, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
