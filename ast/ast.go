// Package ast defines the pattern tree the generation engines walk.
//
// The tree is parsed once from pattern text (see Parse) with every character
// class resolved against the active charset.Table, and is immutable
// afterwards. Each engine (render, count, enumerate) dispatches on Kind with
// an exhaustive switch, so adding a Kind forces every engine to decide how
// to handle it.
package ast

import "fmt"

// Kind discriminates the node variants.
type Kind uint8

const (
	// KindEmpty matches exactly the empty string.
	KindEmpty Kind = iota
	// KindNothing matches no string at all, e.g. (?!).
	KindNothing
	// KindLiteral matches a fixed sequence of characters.
	KindLiteral
	// KindAnyChar matches any printable character except newline.
	KindAnyChar
	// KindClass matches one character from a resolved character class.
	KindClass
	// KindConcat matches its children in order.
	KindConcat
	// KindAlternate matches any one of its children.
	KindAlternate
	// KindCapture matches its body and records the match under Index.
	KindCapture
	// KindGroup matches its body without capturing.
	KindGroup
	// KindPosLook is a zero-width lookaround assertion.
	KindPosLook
	// KindNegLook is a zero-width negative lookaround assertion.
	KindNegLook
	// KindBackref matches the text captured by group Index.
	KindBackref
	// KindRepeat matches its body between Min and Max times.
	KindRepeat
	// KindAnchor is a zero-width position assertion (^ $ \b \A \z …).
	KindAnchor
	// KindUnsupported marks a construct the engines refuse to interpret.
	KindUnsupported
)

var kindNames = [...]string{
	"Empty", "Nothing", "Literal", "AnyChar", "Class",
	"Concat", "Alternate", "Capture", "Group", "PosLook", "NegLook",
	"Backref", "Repeat", "Anchor", "Unsupported",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Unbounded is the Max value of a repeat with no upper bound (* + {n,}).
const Unbounded = -1

// Node is one unit of a compiled pattern. Which fields are meaningful
// depends on Kind; unused fields are zero.
type Node struct {
	Kind Kind

	// Lit holds the characters of a KindLiteral.
	Lit []rune

	// Choices holds the resolved candidate characters of a KindClass or
	// KindAnyChar, sorted by code point. May be empty when a negated class
	// excludes the whole printable universe.
	Choices []rune

	// Subs holds the children of KindConcat and KindAlternate.
	Subs []*Node

	// Sub is the body of KindCapture, KindGroup, KindPosLook, KindNegLook
	// and KindRepeat.
	Sub *Node

	// Index is the group number of KindCapture and KindBackref.
	Index int

	// Name is the group name of a named KindCapture, the assertion symbol
	// of a KindAnchor, or the construct description of a KindUnsupported.
	Name string

	// Min and Max bound a KindRepeat; Max may be Unbounded.
	Min, Max int

	// Lazy marks a non-greedy KindRepeat. Generation draws repetition
	// counts the same way for lazy and greedy repeats; the flag is kept
	// for diagnostics.
	Lazy bool
}

// Unsupported returns the first unsupported node in the tree, or nil.
// Engines that cannot report errors lazily (the enumerator) use this to
// reject a pattern before iteration starts.
func (n *Node) Unsupported() *Node {
	if n == nil {
		return nil
	}
	if n.Kind == KindUnsupported {
		return n
	}
	if n.Sub != nil {
		if u := n.Sub.Unsupported(); u != nil {
			return u
		}
	}
	for _, sub := range n.Subs {
		if u := sub.Unsupported(); u != nil {
			return u
		}
	}
	return nil
}
