package stringgen

import (
	"errors"
	"slices"
	"testing"

	"github.com/dlclark/regexp2"
)

// TestCompile tests basic compilation
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"digit", `\d`, false},
		{"word repeat", `\w+`, false},
		{"alternation", "foo|bar", false},
		{"backreference", `([ab])\1`, false},
		{"lookahead", "(?=ab)x", false},
		{"empty", "", false},
		{"unbalanced paren", "(", true},
		{"undefined group", `\1`, true},
		{"bad repeat", "a{2,1}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *PatternError
				if !errors.As(err, &pe) || pe.Pattern != tt.pattern {
					t.Errorf("error = %v, want *PatternError for %q", err, tt.pattern)
				}
				return
			}
			if g == nil {
				t.Fatal("Compile() returned nil")
			}
			if g.String() != tt.pattern {
				t.Errorf("String() = %q, want %q", g.String(), tt.pattern)
			}
		})
	}
}

// TestMustCompilePanic tests panic on invalid pattern
func TestMustCompilePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile("(")
}

// TestCompileConfigErrors tests per-instance configuration validation
func TestCompileConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"negative max repeat", Config{MaxRepeat: -1}},
		{"bad seed type", Config{Seed: struct{}{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CompileWithConfig("a", tt.config); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("CompileWithConfig() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestSeedReproducibility tests that equal seeds give equal sequences
func TestSeedReproducibility(t *testing.T) {
	seeds := []any{7, "fixture-seed", 3.14, []byte{0xde, 0xad}}
	for _, seed := range seeds {
		a, err := CompileWithConfig(`[a-f0-9]{8}-\d+`, Config{Seed: seed})
		if err != nil {
			t.Fatalf("CompileWithConfig() error: %v", err)
		}
		b, _ := CompileWithConfig(`[a-f0-9]{8}-\d+`, Config{Seed: seed})
		la, err := a.RenderList(10)
		if err != nil {
			t.Fatalf("RenderList() error: %v", err)
		}
		lb, _ := b.RenderList(10)
		if !slices.Equal(la, lb) {
			t.Errorf("seed %v: sequences diverged", seed)
		}
	}
}

// TestReseed tests the Seed method
func TestReseed(t *testing.T) {
	g := MustCompile(`\d{6}`)
	if err := g.Seed(42); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	first, err := g.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if err := g.Seed(42); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if second, _ := g.Render(); second != first {
		t.Errorf("re-seeded render = %q, want %q", second, first)
	}
	if err := g.Seed(make(chan int)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Seed(chan) error = %v, want ErrInvalidConfig", err)
	}
}

// TestRenderList tests batch rendering
func TestRenderList(t *testing.T) {
	g := MustCompile(`\d{2}`)
	out, err := g.RenderList(5)
	if err != nil {
		t.Fatalf("RenderList() error: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
	re := regexp2.MustCompile(`^\d{2}$`, 0)
	for _, s := range out {
		if ok, _ := re.MatchString(s); !ok {
			t.Errorf("rendered %q does not match", s)
		}
	}
	if _, err := g.RenderList(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("RenderList(-1) error = %v, want ErrInvalidArgument", err)
	}
}

// TestRenderSet tests unique-set generation and its error taxonomy
func TestRenderSet(t *testing.T) {
	t.Run("collects distinct", func(t *testing.T) {
		g := MustCompile("[0-9]")
		out, err := g.RenderSet(10, 100_000)
		if err != nil {
			t.Fatalf("RenderSet() error: %v", err)
		}
		slices.Sort(out)
		if !slices.Equal(out, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}) {
			t.Errorf("RenderSet() = %q", out)
		}
	})

	t.Run("capacity checked up front", func(t *testing.T) {
		g := MustCompile("[ab]")
		_, err := g.RenderSet(3, 100_000)
		var ce *CapacityError
		if !errors.As(err, &ce) {
			t.Fatalf("RenderSet() error = %v, want *CapacityError", err)
		}
		if ce.Requested != 3 || ce.Capacity.String() != "2" {
			t.Errorf("CapacityError = %+v", ce)
		}
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		// Capacity counts the lookahead's two possibilities, but rendering
		// discards the assertion text, so only "a" is ever produced.
		g := MustCompile("(?=[ab])a")
		_, err := g.RenderSet(2, 50)
		var me *MaxIterationsError
		if !errors.As(err, &me) {
			t.Fatalf("RenderSet() error = %v, want *MaxIterationsError", err)
		}
		if me.Limit != 50 {
			t.Errorf("Limit = %d, want 50", me.Limit)
		}
	})

	t.Run("argument validation", func(t *testing.T) {
		g := MustCompile("[ab]")
		if _, err := g.RenderSet(-1, 10); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("negative count error = %v", err)
		}
		if _, err := g.RenderSet(2, 1); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("attempts below count error = %v", err)
		}
	})
}

// TestCount tests counting through the facade, including the cache
func TestCount(t *testing.T) {
	g := MustCompile("[01]{3}")
	c, err := g.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if c.String() != "8" {
		t.Errorf("Count() = %s, want 8", c)
	}
	again, _ := g.Count()
	if !c.Equal(again) {
		t.Errorf("cached Count() = %s, want %s", again, c)
	}

	inf := MustCompile(`\d+`)
	c, err = inf.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if !c.IsInfinite() {
		t.Errorf("Count() = %s, want +Inf", c)
	}
}

// TestEnumerate tests facade enumeration and limit validation
func TestEnumerate(t *testing.T) {
	g := MustCompile("a*")

	seq, err := g.EnumerateLimit(2)
	if err != nil {
		t.Fatalf("EnumerateLimit() error: %v", err)
	}
	var got []string
	for s := range seq {
		got = append(got, s)
	}
	if !slices.Equal(got, []string{"", "a", "aa"}) {
		t.Errorf("EnumerateLimit(2) = %q", got)
	}

	if _, err := g.EnumerateLimit(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("EnumerateLimit(0) error = %v, want ErrInvalidArgument", err)
	}

	// Enumerate uses the instance cap.
	small, err := CompileWithConfig("a*", Config{MaxRepeat: 1})
	if err != nil {
		t.Fatalf("CompileWithConfig() error: %v", err)
	}
	seq, err = small.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}
	got = nil
	for s := range seq {
		got = append(got, s)
	}
	if !slices.Equal(got, []string{"", "a"}) {
		t.Errorf("Enumerate() = %q", got)
	}
}

// TestStream tests the bounded lazy stream
func TestStream(t *testing.T) {
	g := MustCompile(`\d{3}`)
	seq, err := g.Stream(4)
	if err != nil {
		t.Fatalf("Stream() error: %v", err)
	}
	re := regexp2.MustCompile(`^\d{3}$`, 0)
	n := 0
	for s, err := range seq {
		if err != nil {
			t.Fatalf("stream error: %v", err)
		}
		if ok, _ := re.MatchString(s); !ok {
			t.Errorf("streamed %q does not match", s)
		}
		n++
	}
	if n != 4 {
		t.Errorf("stream yielded %d values, want 4", n)
	}

	if _, err := g.Stream(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Stream(-1) error = %v, want ErrInvalidArgument", err)
	}
}

// TestIter tests the infinite stream
func TestIter(t *testing.T) {
	g := MustCompile("[ab]")
	n := 0
	for s, err := range g.Iter() {
		if err != nil {
			t.Fatalf("iter error: %v", err)
		}
		if s != "a" && s != "b" {
			t.Fatalf("iter value = %q", s)
		}
		if n++; n == 5 {
			break
		}
	}
}

// TestEqualConcatEmpty tests the pattern-value operations
func TestEqualConcatEmpty(t *testing.T) {
	a := MustCompile("abc$")
	b := MustCompile("^def")

	if !a.Equal(MustCompile("abc$")) {
		t.Error("Equal() = false for identical patterns")
	}
	if a.Equal(b) || a.Equal(nil) {
		t.Error("Equal() = true for different patterns")
	}

	joined, err := a.Concat(b)
	if err != nil {
		t.Fatalf("Concat() error: %v", err)
	}
	if joined.String() != "abcdef" {
		t.Errorf("Concat() pattern = %q, want %q", joined.String(), "abcdef")
	}
	if _, err := a.Concat(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Concat(nil) error = %v, want ErrInvalidArgument", err)
	}

	// Anchor runs at the seam are stripped, not just a single character.
	runs, err := MustCompile("a$$").Concat(MustCompile("^^b"))
	if err != nil {
		t.Fatalf("Concat() error: %v", err)
	}
	if runs.String() != "ab" {
		t.Errorf("Concat() pattern = %q, want %q", runs.String(), "ab")
	}

	if !MustCompile("").Empty() {
		t.Error("Empty() = false for empty pattern")
	}
	if a.Empty() {
		t.Error("Empty() = true for non-empty pattern")
	}
}

// TestConfigure tests the process-wide defaults and snapshot isolation
func TestConfigure(t *testing.T) {
	defer ResetConfig()

	if err := Configure(Config{MaxRepeat: 3}); err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	capped := MustCompile("a+")

	// A later global change must not affect the existing instance.
	if err := Configure(Config{MaxRepeat: 50}); err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	for i := 0; i < 30; i++ {
		s, err := capped.Render()
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if len(s) > 3 {
			t.Fatalf("render length %d exceeds snapshot cap 3", len(s))
		}
	}

	// A rejected call leaves the configuration unchanged.
	if err := Configure(Config{MaxRepeat: -5}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Configure(-5) error = %v, want ErrInvalidConfig", err)
	}
	if err := Configure(Config{Seed: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Configure(Seed) error = %v, want ErrInvalidConfig", err)
	}

	ResetConfig()
	wide, _ := CompileWithConfig("a+", Config{Seed: 1})
	long := false
	for i := 0; i < 200; i++ {
		s, err := wide.Render()
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if len(s) > 3 {
			long = true
			break
		}
	}
	if !long {
		t.Error("after ResetConfig the default cap of 100 never produced a long render")
	}
}

// TestConfigureAlphabet tests the global alphabet default
func TestConfigureAlphabet(t *testing.T) {
	defer ResetConfig()

	if err := Configure(Config{Alphabet: "xyz"}); err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	g := MustCompile(`\w`)
	seq, err := g.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate() error: %v", err)
	}
	var got []string
	for s := range seq {
		got = append(got, s)
	}
	want := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "_", "x", "y", "z"}
	if !slices.Equal(got, want) {
		t.Errorf("enumerate \\w = %q, want %q", got, want)
	}
}

// TestCustomAlphabetInstance tests a per-instance alphabet override
func TestCustomAlphabetInstance(t *testing.T) {
	g, err := CompileWithConfig(`\w{2}`, Config{Alphabet: "аб", Seed: 5})
	if err != nil {
		t.Fatalf("CompileWithConfig() error: %v", err)
	}
	allowed := map[rune]bool{'а': true, 'б': true, '_': true}
	for _, r := range "0123456789" {
		allowed[r] = true
	}
	for i := 0; i < 20; i++ {
		s, err := g.Render()
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		for _, r := range s {
			if !allowed[r] {
				t.Fatalf("render %q contains %q, outside the custom word set", s, r)
			}
		}
	}
}
