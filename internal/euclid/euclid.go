// internal/euclid/euclid.go
package euclid

import "fmt"

// GCD computes the greatest common divisor of a and b using the iterative
// Euclidean algorithm. Both operands must be non-zero; a zero operand is a
// caller bug, not a recoverable input error, and triggers a panic naming the
// violated precondition. The result always divides both inputs and is >= 1.
func GCD(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		panic(fmt.Sprintf("euclid: GCD requires non-zero operands, got (%d, %d)", a, b))
	}
	for b != 0 {
		if b < a {
			a, b = b, a
		}
		b = b % a
	}
	return a
}

// Reduce folds GCD left-to-right across numbers, seeding the accumulator with
// the first element. The slice must be non-empty; the command layer rejects an
// empty argument list before this is reached.
func Reduce(numbers []uint64) uint64 {
	if len(numbers) == 0 {
		panic("euclid: Reduce requires a non-empty number list")
	}
	d := numbers[0]
	for _, m := range numbers[1:] {
		d = GCD(d, m)
	}
	return d
}
