// internal/euclid/euclid_test.go
package euclid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD_KnownPairs(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     uint64
		expected uint64
	}{
		{"coprime neighbors", 14, 15, 1},
		{"shared factors 3 and 11", 5610, 57057, 33}, // 2*3*5*11*17 and 3*7*11*13*19
		{"one divides the other", 12, 36, 12},
		{"equal operands", 7, 7, 7},
		{"both one", 1, 1, 1},
		{"large coprime", 1<<63 - 1, 1 << 62, 1},
		{"large shared power of two", 1 << 40, 1 << 20, 1 << 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GCD(tc.a, tc.b))
		})
	}
}

func TestGCD_Commutativity(t *testing.T) {
	pairs := [][2]uint64{
		{14, 15},
		{5610, 57057},
		{1, 999999937},
		{2 * 3 * 5 * 7, 3 * 5 * 7 * 11},
		{1 << 50, 3},
	}
	for _, p := range pairs {
		assert.Equal(t, GCD(p[0], p[1]), GCD(p[1], p[0]), "gcd(%d,%d) should equal gcd(%d,%d)", p[0], p[1], p[1], p[0])
	}
}

func TestGCD_DividesBothAndIsMaximal(t *testing.T) {
	pairs := [][2]uint64{
		{14, 15},
		{5610, 57057},
		{360, 1260},
		{17, 17},
	}
	for _, p := range pairs {
		g := GCD(p[0], p[1])
		require.NotZero(t, g)
		assert.Zero(t, p[0]%g, "gcd must divide the first operand")
		assert.Zero(t, p[1]%g, "gcd must divide the second operand")

		// No larger common divisor exists up to the smaller operand.
		min := p[0]
		if p[1] < min {
			min = p[1]
		}
		for d := g + 1; d <= min; d++ {
			if p[0]%d == 0 && p[1]%d == 0 {
				t.Fatalf("found common divisor %d larger than gcd %d for (%d, %d)", d, g, p[0], p[1])
			}
		}
	}
}

func TestGCD_Idempotent(t *testing.T) {
	for _, a := range []uint64{1, 2, 97, 5610, 1 << 40} {
		assert.Equal(t, a, GCD(a, a))
	}
}

func TestGCD_PanicsOnZeroOperand(t *testing.T) {
	assert.Panics(t, func() { GCD(0, 5) })
	assert.Panics(t, func() { GCD(5, 0) })
	assert.Panics(t, func() { GCD(0, 0) })
}

func TestReduce(t *testing.T) {
	t.Run("single element is its own gcd", func(t *testing.T) {
		assert.Equal(t, uint64(42), Reduce([]uint64{42}))
	})

	t.Run("folds left to right", func(t *testing.T) {
		// gcd(6,10)=2, gcd(2,15)=1
		assert.Equal(t, uint64(1), Reduce([]uint64{6, 10, 15}))
	})

	t.Run("order independent result", func(t *testing.T) {
		lists := [][]uint64{
			{6, 10, 15},
			{15, 6, 10},
			{10, 15, 6},
		}
		for _, l := range lists {
			assert.Equal(t, uint64(1), Reduce(l))
		}

		assert.Equal(t, uint64(12), Reduce([]uint64{24, 36, 60}))
		assert.Equal(t, uint64(12), Reduce([]uint64{60, 24, 36}))
	})

	t.Run("panics on empty list", func(t *testing.T) {
		assert.Panics(t, func() { Reduce(nil) })
		assert.Panics(t, func() { Reduce([]uint64{}) })
	})

	t.Run("panics when a zero is folded in", func(t *testing.T) {
		assert.Panics(t, func() { Reduce([]uint64{0, 5}) })
		assert.Panics(t, func() { Reduce([]uint64{5, 0, 10}) })
	})
}
