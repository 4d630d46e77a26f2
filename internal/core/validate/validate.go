// Package validate provides shared validation functions for CLI inputs.
package validate

import "fmt"

const (
	// MaxLength caps the ID length accepted from flags and config. The
	// library itself has no cap; this only guards against typo-sized
	// allocations from the command line.
	MaxLength = 4096

	// MaxCount caps how many IDs a single invocation may emit.
	MaxCount = 100000
)

// Length validates an ID length from user input.
func Length(n int) error {
	if n < 1 {
		return fmt.Errorf("length must be at least 1")
	}
	if n > MaxLength {
		return fmt.Errorf("length must be at most %d", MaxLength)
	}
	return nil
}

// Count validates how many IDs to generate.
func Count(n int) error {
	if n < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	if n > MaxCount {
		return fmt.Errorf("count must be at most %d", MaxCount)
	}
	return nil
}
