package stringgen

import (
	"errors"
	"fmt"

	"github.com/tolstislon/string-gen/gen"
)

// Common generator errors
var (
	// ErrInvalidConfig indicates an invalid configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidArgument indicates an out-of-range method argument,
	// e.g. a negative count or a zero enumeration limit.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported indicates the pattern contains a construct the
	// engines refuse to interpret. Alias of gen.ErrUnsupported.
	ErrUnsupported = gen.ErrUnsupported

	// ErrEmptyClass indicates a character class resolved to no characters
	// in the active printable universe. Alias of gen.ErrEmptyClass.
	ErrEmptyClass = gen.ErrEmptyClass
)

// PatternError indicates the pattern text is not valid regex syntax.
// It is reported at construction, never deferred to generation.
type PatternError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the parser's error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// CapacityError indicates a unique-set request larger than the pattern's
// exact finite capacity. It is raised before any generation is attempted.
type CapacityError struct {
	Requested int
	Capacity  gen.Count
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot produce %d unique strings: pattern capacity is %s", e.Requested, e.Capacity)
}

// MaxIterationsError indicates the attempt budget ran out before enough
// unique strings were collected.
type MaxIterationsError struct {
	Limit int
}

// Error implements the error interface.
func (e *MaxIterationsError) Error() string {
	return fmt.Sprintf("max iterations reached: %d", e.Limit)
}
