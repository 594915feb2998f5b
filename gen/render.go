package gen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tolstislon/string-gen/ast"
)

// pcgStream is the fixed second PCG seed word, so a single caller-supplied
// seed fully determines the output sequence.
const pcgStream = 0x9E3779B97F4A7C15

// Renderer produces random strings matching a pattern tree. It owns a
// deterministic random source and a capture cache for backreferences; the
// cache is reset on every Render call so renders are independent.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	rng       *rand.Rand
	maxRepeat int
	captures  map[int]string
}

// NewRenderer returns a renderer seeded with seed. Unbounded quantifiers are
// capped at maxRepeat repetitions (or at their own minimum if larger).
func NewRenderer(seed uint64, maxRepeat int) *Renderer {
	return &Renderer{
		rng:       rand.New(rand.NewPCG(seed, pcgStream)),
		maxRepeat: maxRepeat,
		captures:  make(map[int]string),
	}
}

// Seed resets the random source. Rendering after Seed(s) always reproduces
// the same sequence of strings for the same pattern tree.
func (r *Renderer) Seed(seed uint64) {
	r.rng = rand.New(rand.NewPCG(seed, pcgStream))
}

// Render produces one random string consistent with the pattern.
func (r *Renderer) Render(root *ast.Node) (string, error) {
	clear(r.captures)
	var sb strings.Builder
	if err := r.node(root, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) node(n *ast.Node, sb *strings.Builder) error {
	switch n.Kind {
	case ast.KindEmpty, ast.KindAnchor, ast.KindNegLook:
		// Zero-width. Negative lookahead bodies are not rendered: validating
		// them against the remainder would need backtracking, which this
		// engine does not implement.
		return nil

	case ast.KindNothing:
		return ErrUnmatchable

	case ast.KindLiteral:
		sb.WriteString(string(n.Lit))
		return nil

	case ast.KindAnyChar, ast.KindClass:
		if len(n.Choices) == 0 {
			return fmt.Errorf("%w (%s node)", ErrEmptyClass, n.Kind)
		}
		sb.WriteRune(n.Choices[r.rng.IntN(len(n.Choices))])
		return nil

	case ast.KindConcat:
		for _, sub := range n.Subs {
			if err := r.node(sub, sb); err != nil {
				return err
			}
		}
		return nil

	case ast.KindAlternate:
		return r.node(n.Subs[r.rng.IntN(len(n.Subs))], sb)

	case ast.KindCapture:
		var body strings.Builder
		if err := r.node(n.Sub, &body); err != nil {
			return err
		}
		if n.Index > 0 {
			r.captures[n.Index] = body.String()
		}
		sb.WriteString(body.String())
		return nil

	case ast.KindGroup:
		return r.node(n.Sub, sb)

	case ast.KindPosLook:
		// Rendered for its side effects (captures inside the assertion stay
		// usable by later backreferences) but contributes no output.
		var body strings.Builder
		return r.node(n.Sub, &body)

	case ast.KindBackref:
		sb.WriteString(r.captures[n.Index])
		return nil

	case ast.KindRepeat:
		upper := n.Max
		if upper == ast.Unbounded {
			upper = max(n.Min, r.maxRepeat)
		}
		times := n.Min + r.rng.IntN(upper-n.Min+1)
		for i := 0; i < times; i++ {
			if err := r.node(n.Sub, sb); err != nil {
				return err
			}
		}
		return nil

	case ast.KindUnsupported:
		return &UnsupportedError{Construct: n.Name}

	default:
		return &UnsupportedError{Construct: fmt.Sprintf("node kind %v", n.Kind)}
	}
}
