package stringgen

import (
	"fmt"
	"sync"
)

// DefaultMaxRepeat is the default cap for unbounded quantifiers (* + {n,}).
const DefaultMaxRepeat = 100

// Config configures a generator instance.
//
// Zero values mean "use the process-wide default" (see Configure), so a
// zero Config is always valid.
type Config struct {
	// MaxRepeat caps unbounded quantifiers at this many repetitions
	// (or at the quantifier's own minimum, if larger). Must be >= 1;
	// zero selects the process default.
	MaxRepeat int

	// Alphabet replaces ASCII letters as the base letters of every
	// character category (\w, \W, negated classes, the wildcard).
	// Must be non-empty when set; empty selects the process default.
	Alphabet string

	// Seed determines the random source state. Accepts any integer type,
	// floats, strings and byte slices. Nil draws fresh entropy.
	Seed any
}

// DefaultConfig returns the built-in defaults: MaxRepeat 100, ASCII letters,
// entropy-seeded randomness.
func DefaultConfig() Config {
	return Config{MaxRepeat: DefaultMaxRepeat}
}

// The process-wide default configuration. It is read exactly once per
// generator, at construction; later changes never affect existing instances.
var (
	configMu         sync.RWMutex
	defaultMaxRepeat = DefaultMaxRepeat
	defaultAlphabet  = ""
)

// Configure changes the process-wide defaults applied to generators that do
// not override them. Zero-valued fields are left unchanged. Validation runs
// before any field is applied, so a rejected call leaves the previous
// configuration fully intact.
//
// Example:
//
//	if err := stringgen.Configure(stringgen.Config{MaxRepeat: 20}); err != nil {
//	    log.Fatal(err)
//	}
func Configure(cfg Config) error {
	if cfg.MaxRepeat < 0 {
		return fmt.Errorf("%w: max repeat must be >= 1, got %d", ErrInvalidConfig, cfg.MaxRepeat)
	}
	if cfg.Seed != nil {
		return fmt.Errorf("%w: the seed is per-instance and cannot be configured globally", ErrInvalidConfig)
	}

	configMu.Lock()
	defer configMu.Unlock()
	if cfg.MaxRepeat > 0 {
		defaultMaxRepeat = cfg.MaxRepeat
	}
	if cfg.Alphabet != "" {
		defaultAlphabet = cfg.Alphabet
	}
	return nil
}

// ResetConfig restores the built-in process-wide defaults.
func ResetConfig() {
	configMu.Lock()
	defer configMu.Unlock()
	defaultMaxRepeat = DefaultMaxRepeat
	defaultAlphabet = ""
}

// snapshotConfig reads the process defaults for a new generator.
func snapshotConfig() (maxRepeat int, alphabet string) {
	configMu.RLock()
	defer configMu.RUnlock()
	return defaultMaxRepeat, defaultAlphabet
}
