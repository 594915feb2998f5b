package charset

import (
	"errors"
	"strings"
	"testing"
)

// TestNewEmptyAlphabet tests rejection of an empty alphabet
func TestNewEmptyAlphabet(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("New(\"\") error = %v, want ErrEmptyAlphabet", err)
	}
}

// TestDefaultUniverse tests the size and shape of the default table
func TestDefaultUniverse(t *testing.T) {
	d := Default()

	// 52 letters + 10 digits + 32 punctuation + 6 whitespace.
	if got := len(d.Printable()); got != 100 {
		t.Errorf("len(Printable()) = %d, want 100", got)
	}
	if got := string(d.Category(Digit)); got != "0123456789" {
		t.Errorf("Digit = %q", got)
	}
	if got := string(d.Category(Space)); got != "\t\n\v\f\r " {
		t.Errorf("Space = %q", got)
	}
	// word = letters + digits + underscore
	if got := len(d.Category(Word)); got != 63 {
		t.Errorf("len(Word) = %d, want 63", got)
	}

	// Each complement pair partitions the printable universe.
	pairs := [][2]Category{{Digit, NotDigit}, {Space, NotSpace}, {Word, NotWord}}
	for _, p := range pairs {
		sum := len(d.Category(p[0])) + len(d.Category(p[1]))
		if sum != len(d.Printable()) {
			t.Errorf("%v + %v = %d characters, want %d", p[0], p[1], sum, len(d.Printable()))
		}
	}
}

// TestCustomAlphabet tests category derivation for a non-ASCII alphabet
func TestCustomAlphabet(t *testing.T) {
	tbl, err := New("абв")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := string(tbl.Category(Word)); got != "0123456789_абв" {
		t.Errorf("Word = %q, want %q", got, "0123456789_абв")
	}
	if tbl.Contains('x') {
		t.Error("Contains('x') = true for Cyrillic alphabet")
	}
	if !tbl.Contains('б') {
		t.Error("Contains('б') = false")
	}
	// ASCII punctuation, digits and whitespace stay in the universe.
	for _, r := range "!@# \t0" {
		if !tbl.Contains(r) {
			t.Errorf("Contains(%q) = false", r)
		}
	}
}

// TestNonLetterAlphabet tests that any non-empty string is a valid alphabet
func TestNonLetterAlphabet(t *testing.T) {
	tbl, err := New("x!9")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	word := string(tbl.Category(Word))
	for _, r := range "x!9_0" {
		if !strings.ContainsRune(word, r) {
			t.Errorf("Word %q misses %q", word, r)
		}
	}
}

// TestComplement tests negated-class resolution
func TestComplement(t *testing.T) {
	d := Default()

	got := d.Complement([]rune("abc"))
	if len(got) != len(d.Printable())-3 {
		t.Fatalf("len = %d, want %d", len(got), len(d.Printable())-3)
	}
	for _, r := range got {
		if r == 'a' || r == 'b' || r == 'c' {
			t.Fatalf("Complement contains %q", r)
		}
	}

	// Exclusions outside the universe change nothing; duplicates and
	// unsorted input are fine.
	if got := d.Complement([]rune("üéé")); len(got) != len(d.Printable()) {
		t.Errorf("len = %d, want the full universe", len(got))
	}
	if got := d.Complement([]rune("ba9a")); len(got) != len(d.Printable())-3 {
		t.Errorf("len = %d, want %d", len(got), len(d.Printable())-3)
	}

	// Excluding the full universe leaves nothing.
	if got := d.Complement(d.Printable()); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

// TestComplementOrder tests that results stay in code-point order
func TestComplementOrder(t *testing.T) {
	got := Default().Complement([]rune("m"))
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("not strictly increasing at %d: %q >= %q", i, got[i-1], got[i])
		}
	}
}

// TestResolveExcluding tests the wildcard universe
func TestResolveExcluding(t *testing.T) {
	got := Default().ResolveExcluding('\n')
	if len(got) != 99 {
		t.Errorf("len = %d, want 99", len(got))
	}
	for _, r := range got {
		if r == '\n' {
			t.Fatal("ResolveExcluding('\\n') contains newline")
		}
	}
}
