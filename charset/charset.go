// Package charset builds the character universe a generator draws from.
//
// All generation is confined to a printable universe derived from a base
// letter alphabet:
//
//	word      = alphabet ∪ digits ∪ {'_'}
//	printable = word ∪ punctuation ∪ whitespace
//
// The six shorthand categories (\d \D \s \S \w \W) are complements over that
// universe, so swapping the alphabet (e.g. for Cyrillic or Greek letters)
// transparently changes what every category and negated class can produce.
package charset

import (
	"errors"
	"fmt"
	"slices"
)

const (
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	whitespace  = " \t\n\r\v\f"

	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ErrEmptyAlphabet indicates a table was requested for an empty alphabet.
var ErrEmptyAlphabet = errors.New("alphabet must be a non-empty string")

// Category identifies one of the six shorthand character categories.
type Category int

// The shorthand categories, in regex escape order.
const (
	Digit    Category = iota // \d
	NotDigit                 // \D
	Space                    // \s
	NotSpace                 // \S
	Word                     // \w
	NotWord                  // \W
)

// String returns the regex escape for the category.
func (c Category) String() string {
	switch c {
	case Digit:
		return `\d`
	case NotDigit:
		return `\D`
	case Space:
		return `\s`
	case NotSpace:
		return `\S`
	case Word:
		return `\w`
	case NotWord:
		return `\W`
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Table holds the printable universe and the six category sets for one
// alphabet. A Table is immutable after construction and safe to share
// between generator instances built from the same configuration.
type Table struct {
	categories [6][]rune
	printable  []rune
}

var defaultTable = mustNew(asciiLetters)

// Default returns the table built from ASCII letters. The table is built
// once and shared; callers must not modify the returned slices.
func Default() *Table {
	return defaultTable
}

// New builds a category table from the given base letter alphabet.
// Returns ErrEmptyAlphabet if the alphabet has no characters.
func New(alphabet string) (*Table, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}

	word := uniqueSorted([]rune(alphabet + digits + "_"))
	printable := uniqueSorted(append(append(slices.Clone(word), []rune(punctuation)...), []rune(whitespace)...))

	t := &Table{printable: printable}
	t.categories[Digit] = uniqueSorted([]rune(digits))
	t.categories[NotDigit] = subtract(printable, t.categories[Digit])
	t.categories[Space] = uniqueSorted([]rune(whitespace))
	t.categories[NotSpace] = subtract(printable, t.categories[Space])
	t.categories[Word] = word
	t.categories[NotWord] = subtract(printable, word)
	return t, nil
}

func mustNew(alphabet string) *Table {
	t, err := New(alphabet)
	if err != nil {
		panic("charset: " + err.Error())
	}
	return t
}

// Printable returns the full printable universe in code-point order.
// The returned slice is shared and must not be modified.
func (t *Table) Printable() []rune {
	return t.printable
}

// Category returns the character set for the given shorthand category,
// in code-point order. The returned slice is shared and must not be modified.
func (t *Table) Category(c Category) []rune {
	if c < Digit || c > NotWord {
		return nil
	}
	return t.categories[c]
}

// Contains reports whether r is part of the printable universe.
func (t *Table) Contains(r rune) bool {
	_, ok := slices.BinarySearch(t.printable, r)
	return ok
}

// Complement returns the printable universe minus the excluded characters,
// in code-point order. Used for negated character classes: only negation
// brings the universe into play, so the result may be empty when the
// exclusions cover all of it.
func (t *Table) Complement(excluded []rune) []rune {
	return subtract(t.printable, uniqueSorted(slices.Clone(excluded)))
}

// ResolveExcluding returns the printable universe minus the given character,
// in code-point order. Used for the any-character wildcard, which excludes
// '\n'.
func (t *Table) ResolveExcluding(excluded rune) []rune {
	out := make([]rune, 0, len(t.printable))
	for _, r := range t.printable {
		if r != excluded {
			out = append(out, r)
		}
	}
	return out
}

// uniqueSorted sorts rs by code point and drops duplicates, in place.
func uniqueSorted(rs []rune) []rune {
	slices.Sort(rs)
	return slices.Compact(rs)
}

// subtract returns the members of universe not present in exclude.
// Both inputs must be sorted by code point.
func subtract(universe, exclude []rune) []rune {
	out := make([]rune, 0, len(universe))
	for _, r := range universe {
		if _, ok := slices.BinarySearch(exclude, r); !ok {
			out = append(out, r)
		}
	}
	return out
}
