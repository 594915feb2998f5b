package gen

import (
	"fmt"
	"math/big"

	"github.com/tolstislon/string-gen/ast"
)

// Count is the number of distinct strings a pattern can produce: either an
// exact non-negative integer or infinity. Finite values are exact big
// integers, never floats, so astronomically large counts keep full precision.
//
// The zero value is a finite zero.
type Count struct {
	inf bool
	n   *big.Int
}

// Infinite returns the infinite count.
func Infinite() Count {
	return Count{inf: true}
}

// CountOf returns a finite count.
func CountOf(n int64) Count {
	return Count{n: big.NewInt(n)}
}

// IsInfinite reports whether the count is infinite.
func (c Count) IsInfinite() bool {
	return c.inf
}

// IsZero reports whether the count is exactly zero.
func (c Count) IsZero() bool {
	return !c.inf && (c.n == nil || c.n.Sign() == 0)
}

// BigInt returns the finite value, or nil for an infinite count.
// The returned value is shared and must not be modified.
func (c Count) BigInt() *big.Int {
	if c.inf {
		return nil
	}
	if c.n == nil {
		return big.NewInt(0)
	}
	return c.n
}

// Equal reports whether two counts are the same value.
func (c Count) Equal(o Count) bool {
	if c.inf || o.inf {
		return c.inf == o.inf
	}
	return c.BigInt().Cmp(o.BigInt()) == 0
}

// String formats the count as a decimal integer or "+Inf".
func (c Count) String() string {
	if c.inf {
		return "+Inf"
	}
	return c.BigInt().String()
}

// Add returns the sum. Anything plus infinity is infinity.
func (c Count) Add(o Count) Count {
	if c.inf || o.inf {
		return Infinite()
	}
	return Count{n: new(big.Int).Add(c.BigInt(), o.BigInt())}
}

// Mul returns the product. Zero annihilates even infinity: an unreachable
// branch contributes no strings no matter how many variants it nests.
func (c Count) Mul(o Count) Count {
	if c.IsZero() || o.IsZero() {
		return Count{}
	}
	if c.inf || o.inf {
		return Infinite()
	}
	return Count{n: new(big.Int).Mul(c.BigInt(), o.BigInt())}
}

// pow returns c^k for a finite c and k >= 0.
func (c Count) pow(k int) Count {
	return Count{n: new(big.Int).Exp(c.BigInt(), big.NewInt(int64(k)), nil)}
}

// CountDistinct computes the exact number of distinct strings the pattern
// can produce, or the infinite count when any reachable quantifier is
// unbounded. The pattern tree is immutable, so callers can cache the result.
func CountDistinct(root *ast.Node) (Count, error) {
	return countNode(root)
}

func countNode(n *ast.Node) (Count, error) {
	switch n.Kind {
	case ast.KindEmpty, ast.KindAnchor, ast.KindNegLook, ast.KindBackref:
		// Zero-width or fully determined by earlier captures.
		return CountOf(1), nil

	case ast.KindNothing:
		return CountOf(0), nil

	case ast.KindLiteral:
		return CountOf(1), nil

	case ast.KindAnyChar, ast.KindClass:
		return CountOf(int64(len(n.Choices))), nil

	case ast.KindConcat:
		return countSequence(n.Subs)

	case ast.KindAlternate:
		total := CountOf(0)
		for _, sub := range n.Subs {
			c, err := countNode(sub)
			if err != nil {
				return Count{}, err
			}
			total = total.Add(c)
		}
		return total, nil

	case ast.KindCapture, ast.KindGroup, ast.KindPosLook:
		return countNode(n.Sub)

	case ast.KindRepeat:
		return countRepeat(n)

	case ast.KindUnsupported:
		return Count{}, &UnsupportedError{Construct: n.Name}

	default:
		return Count{}, &UnsupportedError{Construct: fmt.Sprintf("node kind %v", n.Kind)}
	}
}

// countSequence multiplies the factors left to right. A zero factor
// short-circuits to zero, even when an earlier factor was infinite.
func countSequence(subs []*ast.Node) (Count, error) {
	result := CountOf(1)
	for _, sub := range subs {
		c, err := countNode(sub)
		if err != nil {
			return Count{}, err
		}
		result = result.Mul(c)
		if result.IsZero() {
			return result, nil
		}
	}
	return result, nil
}

func countRepeat(n *ast.Node) (Count, error) {
	// An unbounded quantifier never has a finite exact count. The configured
	// generation limit is a sampling cap, not a counting bound.
	if n.Max == ast.Unbounded {
		return Infinite(), nil
	}
	inner, err := countNode(n.Sub)
	if err != nil {
		return Count{}, err
	}
	// A zero inner count zeroes the repeat unconditionally, even for a
	// zero-minimum bound.
	if inner.IsZero() {
		return CountOf(0), nil
	}
	if inner.IsInfinite() {
		if n.Min == 0 && n.Max == 0 {
			return CountOf(1), nil // only the empty repetition
		}
		return Infinite(), nil
	}
	total := CountOf(0)
	for k := n.Min; k <= n.Max; k++ {
		total = total.Add(inner.pow(k))
	}
	return total, nil
}
