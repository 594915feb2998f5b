package gen

import (
	"fmt"
	"iter"

	"github.com/tolstislon/string-gen/ast"
)

// bindings maps capture group indexes to the text they captured on the
// current enumeration branch. Bindings are copied on write, so sibling
// branches of an alternation or repetition never observe each other's
// captures.
type bindings map[int]string

func (b bindings) bind(index int, value string) bindings {
	next := make(bindings, len(b)+1)
	for k, v := range b {
		next[k] = v
	}
	next[index] = value
	return next
}

// Enumerator lazily produces every distinct string a pattern tree can match,
// in a deterministic order that is stable across calls. Unbounded
// quantifiers are capped at limit repetitions (or at their own minimum if
// larger), so the sequence is always finite.
type Enumerator struct {
	limit int
}

// NewEnumerator returns an enumerator with the given repetition cap.
func NewEnumerator(limit int) *Enumerator {
	return &Enumerator{limit: limit}
}

// All returns the lazy sequence of every string the pattern can produce.
// The sequence is pull-based and restartable: ranging over it again replays
// the same strings in the same order. Patterns containing unsupported
// constructs are rejected here, before any iteration happens.
func (e *Enumerator) All(root *ast.Node) (iter.Seq[string], error) {
	if u := root.Unsupported(); u != nil {
		return nil, &UnsupportedError{Construct: u.Name}
	}
	return func(yield func(string) bool) {
		for s := range e.node(root, nil) {
			if !yield(s) {
				return
			}
		}
	}, nil
}

// node yields each possibility of a single node together with the bindings
// snapshot that produced it.
func (e *Enumerator) node(n *ast.Node, b bindings) iter.Seq2[string, bindings] {
	return func(yield func(string, bindings) bool) {
		switch n.Kind {
		case ast.KindEmpty, ast.KindAnchor, ast.KindNegLook:
			// Negative lookahead contributes a single zero-width possibility
			// without filtering; its body is never enumerated.
			yield("", b)

		case ast.KindNothing:
			// No possibilities.

		case ast.KindLiteral:
			yield(string(n.Lit), b)

		case ast.KindAnyChar, ast.KindClass:
			for _, c := range n.Choices {
				if !yield(string(c), b) {
					return
				}
			}

		case ast.KindConcat:
			for s, b2 := range e.sequence(n.Subs, b) {
				if !yield(s, b2) {
					return
				}
			}

		case ast.KindAlternate:
			for _, sub := range n.Subs {
				for s, b2 := range e.node(sub, b) {
					if !yield(s, b2) {
						return
					}
				}
			}

		case ast.KindCapture:
			for s, b2 := range e.node(n.Sub, b) {
				out := b2
				if n.Index > 0 {
					out = b2.bind(n.Index, s)
				}
				if !yield(s, out) {
					return
				}
			}

		case ast.KindGroup, ast.KindPosLook:
			for s, b2 := range e.node(n.Sub, b) {
				if !yield(s, b2) {
					return
				}
			}

		case ast.KindBackref:
			yield(b[n.Index], b)

		case ast.KindRepeat:
			upper := n.Max
			if upper == ast.Unbounded {
				upper = max(n.Min, e.limit)
			}
			for k := n.Min; k <= upper; k++ {
				for s, b2 := range e.repeatN(n.Sub, k, b) {
					if !yield(s, b2) {
						return
					}
				}
			}

		case ast.KindUnsupported:
			// All rejects unsupported nodes before iteration starts.
			panic(fmt.Sprintf("gen: unsupported construct %q reached the enumerator", n.Name))

		default:
			panic(fmt.Sprintf("gen: %v node reached the enumerator", n.Kind))
		}
	}
}

// sequence yields the concatenation of each node's possibilities, threading
// bindings left to right so a later backreference sees captures made earlier
// on the same branch.
func (e *Enumerator) sequence(nodes []*ast.Node, b bindings) iter.Seq2[string, bindings] {
	return func(yield func(string, bindings) bool) {
		if len(nodes) == 0 {
			yield("", b)
			return
		}
		for prefix, b1 := range e.node(nodes[0], b) {
			for suffix, b2 := range e.sequence(nodes[1:], b1) {
				if !yield(prefix+suffix, b2) {
					return
				}
			}
		}
	}
}

// repeatN yields the body repeated exactly k times. k = 0 yields exactly one
// possibility, the empty string.
func (e *Enumerator) repeatN(body *ast.Node, k int, b bindings) iter.Seq2[string, bindings] {
	return func(yield func(string, bindings) bool) {
		if k == 0 {
			yield("", b)
			return
		}
		for prefix, b1 := range e.node(body, b) {
			for suffix, b2 := range e.repeatN(body, k-1, b1) {
				if !yield(prefix+suffix, b2) {
					return
				}
			}
		}
	}
}
