// Package stringgen generates strings that match a regular expression.
//
// A Generator compiles a pattern once and can then produce random matching
// strings, count exactly how many distinct matches exist, or enumerate every
// match lazily. Typical uses are test fixtures, fuzz inputs and exhaustive
// coverage of small patterns.
//
// Basic usage:
//
//	g, err := stringgen.Compile(`[a-f0-9]{8}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := g.Render() // e.g. "3f09ab2c"
//
// Supported syntax covers literals, character classes (ranges, negation and
// the \d \D \s \S \w \W shorthands), the wildcard, alternation, capturing
// and named groups, greedy and lazy quantifiers, lookaround assertions,
// inline comments and backreferences. Conditionals, atomic groups and
// inline flags are rejected with ErrUnsupported at generation time rather
// than silently mis-rendered.
//
// Category shorthands, negated classes and the wildcard draw from a
// printable universe derived from a base letter alphabet (ASCII letters by
// default, replaceable per instance or process-wide); explicit class members
// like [éü] generate exactly as written, whatever the alphabet.
//
// A Generator is deterministic for a fixed seed: two generators built from
// the same pattern and seed produce identical output sequences.
package stringgen

import (
	"fmt"
	"iter"
	"math/big"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/tolstislon/string-gen/ast"
	"github.com/tolstislon/string-gen/charset"
	"github.com/tolstislon/string-gen/gen"
)

// Generator is a compiled pattern bound to one configuration snapshot and
// one random source.
//
// A Generator is not safe for concurrent use: the random source and the
// capture cache are exclusively owned by the instance. Either confine an
// instance to one goroutine or synchronize externally.
type Generator struct {
	pattern   string
	root      *ast.Node
	maxRepeat int
	alphabet  string // empty means the ASCII default
	renderer  *gen.Renderer

	// Count is cached: the pattern tree is immutable, so the value never
	// changes after the first computation.
	counted     bool
	cachedCount gen.Count
	countErr    error
}

// Compile compiles a pattern with the process-wide default configuration.
//
// Returns a *PatternError if the pattern is not valid regex syntax.
//
// Example:
//
//	g, err := stringgen.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Generator, error) {
	return CompileWithConfig(pattern, Config{})
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var hexColor = stringgen.MustCompile(`#[a-f0-9]{6}`)
func MustCompile(pattern string) *Generator {
	g, err := Compile(pattern)
	if err != nil {
		panic("stringgen: Compile(`" + pattern + "`): " + err.Error())
	}
	return g
}

// CompileWithConfig compiles a pattern with per-instance overrides. Fields
// left at their zero value fall back to the process-wide defaults, which are
// snapshotted here: later Configure calls never affect this instance.
//
// Example:
//
//	g, err := stringgen.CompileWithConfig(`\w{10}`, stringgen.Config{
//	    Alphabet: alphabet.Cyrillic,
//	    Seed:     42,
//	})
func CompileWithConfig(pattern string, config Config) (*Generator, error) {
	maxRepeat, alpha := snapshotConfig()
	if config.MaxRepeat < 0 {
		return nil, fmt.Errorf("%w: max repeat must be >= 1, got %d", ErrInvalidConfig, config.MaxRepeat)
	}
	if config.MaxRepeat > 0 {
		maxRepeat = config.MaxRepeat
	}
	if config.Alphabet != "" {
		alpha = config.Alphabet
	}

	table := charset.Default()
	if alpha != "" {
		var err error
		if table, err = charset.New(alpha); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	seed, err := seedValue(config.Seed)
	if err != nil {
		return nil, err
	}

	// regexp2 is the syntax authority: patterns it rejects never reach the
	// generation parser.
	if _, err := regexp2.Compile(pattern, 0); err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	root, err := ast.Parse(pattern, table)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	return &Generator{
		pattern:   pattern,
		root:      root,
		maxRepeat: maxRepeat,
		alphabet:  alpha,
		renderer:  gen.NewRenderer(seed, maxRepeat),
	}, nil
}

// String returns the source pattern text.
func (g *Generator) String() string {
	return g.pattern
}

// Empty reports whether the pattern text is empty.
func (g *Generator) Empty() bool {
	return g.pattern == ""
}

// Equal reports whether both generators were compiled from the same pattern
// text. Configuration and seed are not compared.
func (g *Generator) Equal(other *Generator) bool {
	return other != nil && g.pattern == other.pattern
}

// Concat joins two patterns at their anchors: trailing "$" anchors of g and
// leading "^" anchors of other are stripped so the halves compose. The
// result inherits g's repeat cap and alphabet, with a fresh entropy seed.
//
// Example:
//
//	date := stringgen.MustCompile(`20[2-3][0-9]-(0[1-9]|1[0-2])$`)
//	day := stringgen.MustCompile(`^-(0[1-9]|[12][0-9])`)
//	full, err := date.Concat(day)
func (g *Generator) Concat(other *Generator) (*Generator, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: cannot concatenate a nil generator", ErrInvalidArgument)
	}
	joined := strings.TrimRight(g.pattern, "$") + strings.TrimLeft(other.pattern, "^")
	return CompileWithConfig(joined, Config{MaxRepeat: g.maxRepeat, Alphabet: g.alphabet})
}

// Seed resets the internal random source. Subsequent renders reproduce the
// same sequence for the same seed; see Config.Seed for accepted types.
//
// Example:
//
//	g.Seed(42)
//	first, _ := g.Render()
//	g.Seed(42)
//	second, _ := g.Render() // second == first
func (g *Generator) Seed(seed any) error {
	s, err := seedValue(seed)
	if err != nil {
		return err
	}
	g.renderer.Seed(s)
	return nil
}

// Render produces one random string matching the pattern.
//
// Example:
//
//	g := stringgen.MustCompile(`[a-f0-9]{2}(:[a-f0-9]{2}){5}`)
//	mac, err := g.Render() // e.g. "3f:09:ab:2c:77:01"
func (g *Generator) Render() (string, error) {
	return g.renderer.Render(g.root)
}

// RenderList produces n random strings matching the pattern.
func (g *Generator) RenderList(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count must be >= 0, got %d", ErrInvalidArgument, n)
	}
	out := make([]string, 0, n)
	for range n {
		s, err := g.Render()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// RenderSet produces n distinct random strings, retrying duplicates up to
// maxAttempts renders in total.
//
// When the pattern's exact count is finite and smaller than n, a
// *CapacityError is returned immediately, before any generation. If the
// attempt budget runs out first, a *MaxIterationsError is returned.
// The result preserves first-generation order.
func (g *Generator) RenderSet(n, maxAttempts int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count must be >= 0, got %d", ErrInvalidArgument, n)
	}
	if maxAttempts < n {
		return nil, fmt.Errorf("%w: max attempts (%d) must be >= count (%d)", ErrInvalidArgument, maxAttempts, n)
	}
	capacity, err := g.Count()
	if err != nil {
		return nil, err
	}
	if !capacity.IsInfinite() && capacity.BigInt().Cmp(big.NewInt(int64(n))) < 0 {
		return nil, &CapacityError{Requested: n, Capacity: capacity}
	}

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for attempts := 0; len(out) < n && attempts < maxAttempts; attempts++ {
		s, err := g.Render()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) < n {
		return nil, &MaxIterationsError{Limit: maxAttempts}
	}
	return out, nil
}

// Count returns the exact number of distinct strings the pattern can
// produce, or the infinite count when any reachable quantifier is unbounded.
// The value is computed once and cached.
//
// Example:
//
//	g := stringgen.MustCompile(`[01]{3}`)
//	c, _ := g.Count()
//	fmt.Println(c) // 8
func (g *Generator) Count() (gen.Count, error) {
	if !g.counted {
		g.cachedCount, g.countErr = gen.CountDistinct(g.root)
		g.counted = true
	}
	return g.cachedCount, g.countErr
}

// Enumerate returns the lazy, ordered sequence of every distinct string the
// pattern can produce, with unbounded quantifiers capped at the instance's
// repeat limit. The order is deterministic and stable across calls.
//
// Example:
//
//	g := stringgen.MustCompile(`[ab]{2}`)
//	seq, _ := g.Enumerate()
//	for s := range seq {
//	    fmt.Println(s) // aa, ab, ba, bb
//	}
func (g *Generator) Enumerate() (iter.Seq[string], error) {
	return gen.NewEnumerator(g.maxRepeat).All(g.root)
}

// EnumerateLimit is Enumerate with an explicit cap for unbounded
// quantifiers. The limit must be at least 1.
func (g *Generator) EnumerateLimit(limit int) (iter.Seq[string], error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be >= 1, got %d", ErrInvalidArgument, limit)
	}
	return gen.NewEnumerator(limit).All(g.root)
}

// Stream returns a lazy sequence of n random strings, generated one at a
// time as the consumer pulls them. A render failure is yielded as the
// sequence's final element.
//
// Example:
//
//	seq, _ := g.Stream(1000)
//	for s, err := range seq {
//	    if err != nil {
//	        return err
//	    }
//	    process(s)
//	}
func (g *Generator) Stream(n int) (iter.Seq2[string, error], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count must be >= 0, got %d", ErrInvalidArgument, n)
	}
	return func(yield func(string, error) bool) {
		for range n {
			s, err := g.Render()
			if !yield(s, err) || err != nil {
				return
			}
		}
	}, nil
}

// Iter returns an infinite lazy stream of random matching strings. Iteration
// stops when the consumer breaks or a render fails.
func (g *Generator) Iter() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			s, err := g.Render()
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}
