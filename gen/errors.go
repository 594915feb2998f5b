// Package gen implements the three generation engines that share one
// pattern AST: random rendering, exact counting and exhaustive enumeration.
package gen

import (
	"errors"
	"fmt"
)

// Common engine errors
var (
	// ErrUnsupported indicates the pattern contains a construct the
	// engines refuse to interpret (atomic groups, conditionals).
	ErrUnsupported = errors.New("unsupported construct")

	// ErrEmptyClass indicates a character class resolved to no characters
	// in the active printable universe.
	ErrEmptyClass = errors.New("character class matches no generatable character")

	// ErrUnmatchable indicates the pattern cannot produce any string.
	ErrUnmatchable = errors.New("pattern cannot produce any string")
)

// UnsupportedError reports the offending construct of an ErrUnsupported.
type UnsupportedError struct {
	Construct string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Construct)
}

// Unwrap returns ErrUnsupported so errors.Is can classify the failure.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
