package randid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chiSquared computes the chi-squared goodness-of-fit statistic for counts
// against a uniform expectation.
func chiSquared(counts map[byte]int, symbols string, total int) float64 {
	expected := float64(total) / float64(len(symbols))

	var stat float64
	for i := 0; i < len(symbols); i++ {
		diff := float64(counts[symbols[i]]) - expected
		stat += diff * diff / expected
	}
	return stat
}

func TestString_UniformDistribution(t *testing.T) {
	const samples = 124000

	counts := make(map[byte]int, len(Alphabet))
	s := String(samples)
	require.Len(t, s, samples)
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}

	// Every symbol must show up; a missing one means an off-by-one in the
	// sampling bound.
	for i := 0; i < len(Alphabet); i++ {
		assert.Positive(t, counts[Alphabet[i]], "symbol %q never generated", Alphabet[i])
	}

	// 61 degrees of freedom. The 0.001 critical value is ~99.6; 140 keeps
	// spurious failures effectively impossible while still catching a
	// skewed or truncated alphabet.
	stat := chiSquared(counts, Alphabet, samples)
	assert.Less(t, stat, 140.0, "alphanumeric distribution is not uniform")
}

func TestNumeric_UniformDistribution(t *testing.T) {
	const (
		samples = 100000
		digits  = "0123456789"
	)

	counts := make(map[byte]int, len(digits))
	s := Numeric(samples)
	require.Len(t, s, samples)
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}

	// Digit 9 is the easy one to lose to an exclusive upper bound.
	for i := 0; i < len(digits); i++ {
		assert.Positive(t, counts[digits[i]], "digit %q never generated", digits[i])
	}

	// 9 degrees of freedom. The 0.001 critical value is ~27.9.
	stat := chiSquared(counts, digits, samples)
	assert.Less(t, stat, 45.0, "digit distribution is not uniform")
}
