// Package randid generates short random identifier strings for URLs and
// other places where a compact, non-unique ID is good enough.
//
// IDs are drawn from base62 (0-9, A-Z, a-z) rather than base64 so they can
// be embedded in URLs without escaping. There is no uniqueness guarantee;
// callers that need collision resistance should use longer IDs or a proper
// UUID.
package randid

import "math/rand/v2"

// Alphabet is the 62-character set used by String: decimal digits, then
// uppercase letters, then lowercase letters.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Source is the random primitive a Generator draws from. IntN must return
// a uniformly distributed int in [0, n). *rand.Rand from math/rand/v2
// satisfies this interface.
type Source interface {
	IntN(n int) int
}

// globalSource samples from the process-wide math/rand/v2 generator, which
// is safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator produces random identifier strings from a Source.
type Generator struct {
	src Source
}

// New returns a Generator backed by src. A nil src falls back to the
// process-wide random source. A Generator is safe for concurrent use if
// its Source is.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// String returns a random alphanumeric string of exactly length characters
// drawn from Alphabet. Lengths <= 0 return the empty string.
func (g *Generator) String(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[g.src.IntN(len(Alphabet))]
	}
	return string(b)
}

// Numeric returns a random fixed-width decimal string of exactly length
// digits. Leading zeros are preserved, so the result is not safe to
// round-trip through an integer type. Lengths <= 0 return the empty string.
func (g *Generator) Numeric(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = '0' + byte(g.src.IntN(10))
	}
	return string(b)
}

// String returns a random alphanumeric string of exactly length characters
// using the process-wide random source. Safe for concurrent use.
func String(length int) string {
	return defaultGenerator.String(length)
}

// Numeric returns a random zero-padded decimal string of exactly length
// digits using the process-wide random source. Safe for concurrent use.
func Numeric(length int) string {
	return defaultGenerator.Numeric(length)
}

var defaultGenerator = New(nil)
