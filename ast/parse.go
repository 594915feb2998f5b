package ast

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tolstislon/string-gen/charset"
)

// maxDepth limits recursion during parsing to prevent stack overflow on
// pathologically nested patterns.
const maxDepth = 250

// ErrTooComplex indicates the pattern nests deeper than the parser allows.
var ErrTooComplex = fmt.Errorf("pattern too deeply nested (limit %d)", maxDepth)

const eof rune = -1

// Parse compiles pattern text into a generation tree. Character classes are
// resolved against the table here, so the engines never see class syntax.
//
// Constructs the engines cannot interpret (atomic groups, conditionals,
// inline flags) parse to KindUnsupported nodes rather than failing: the
// error taxonomy reports them at generation time, not at construction.
func Parse(pattern string, table *charset.Table) (*Node, error) {
	p := &parser{
		input:  []rune(pattern),
		table:  table,
		names:  make(map[string]int),
		closed: make(map[int]bool),
	}
	root, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		if p.peek() == ')' {
			return nil, p.errorf("unbalanced parenthesis")
		}
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return root, nil
}

// parser is a recursive-descent parser over the pattern runes. Capture
// groups are numbered in opening-bracket order; a backreference is only
// valid once its group has been closed, as in the reference semantics.
type parser struct {
	input  []rune
	pos    int
	table  *charset.Table
	groups int            // capture groups opened so far
	names  map[string]int // group name -> number
	closed map[int]bool   // group number -> fully parsed
	depth  int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() rune {
	if p.eof() {
		return eof
	}
	return p.input[p.pos]
}

func (p *parser) next() rune {
	r := p.peek()
	if r != eof {
		p.pos++
	}
	return r
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

// alternation parses branch ('|' branch)*.
func (p *parser) alternation() (*Node, error) {
	p.depth++
	if p.depth > maxDepth {
		return nil, ErrTooComplex
	}
	defer func() { p.depth-- }()

	first, err := p.concat()
	if err != nil {
		return nil, err
	}
	if p.peek() != '|' {
		return first, nil
	}
	subs := []*Node{first}
	for p.peek() == '|' {
		p.pos++
		branch, err := p.concat()
		if err != nil {
			return nil, err
		}
		subs = append(subs, branch)
	}
	return &Node{Kind: KindAlternate, Subs: subs}, nil
}

// concat parses a run of quantified atoms up to '|', ')' or end of input.
// An empty run (e.g. an empty branch of "a|") is KindEmpty.
func (p *parser) concat() (*Node, error) {
	var subs []*Node
	for !p.eof() && p.peek() != '|' && p.peek() != ')' {
		n, err := p.term()
		if err != nil {
			return nil, err
		}
		subs = append(subs, n)
	}
	switch len(subs) {
	case 0:
		return &Node{Kind: KindEmpty}, nil
	case 1:
		return subs[0], nil
	}
	return &Node{Kind: KindConcat, Subs: subs}, nil
}

// term parses one atom and its optional quantifier.
func (p *parser) term() (*Node, error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	min, max, quantified, err := p.quantifier()
	if err != nil {
		return nil, err
	}
	if !quantified {
		return atom, nil
	}
	if atom.Kind == KindAnchor {
		return nil, p.errorf("nothing to repeat")
	}
	lazy := false
	if p.peek() == '?' {
		p.pos++
		lazy = true
	}
	if r := p.peek(); r == '*' || r == '+' || r == '?' {
		return nil, p.errorf("multiple repeat")
	}
	return &Node{Kind: KindRepeat, Min: min, Max: max, Lazy: lazy, Sub: atom}, nil
}

// quantifier parses '*', '+', '?' or a '{m}' / '{m,}' / '{m,n}' bound.
// A '{' that does not form a valid bound is not a quantifier; the caller
// re-reads it as a literal.
func (p *parser) quantifier() (min, max int, ok bool, err error) {
	switch p.peek() {
	case '*':
		p.pos++
		return 0, Unbounded, true, nil
	case '+':
		p.pos++
		return 1, Unbounded, true, nil
	case '?':
		p.pos++
		return 0, 1, true, nil
	case '{':
		start := p.pos
		p.pos++
		lo, valid := p.number()
		if !valid {
			p.pos = start
			return 0, 0, false, nil
		}
		hi := lo
		if p.peek() == ',' {
			p.pos++
			if p.peek() == '}' {
				hi = Unbounded
			} else if hi, valid = p.number(); !valid {
				p.pos = start
				return 0, 0, false, nil
			}
		}
		if p.peek() != '}' {
			p.pos = start
			return 0, 0, false, nil
		}
		p.pos++
		if hi != Unbounded && lo > hi {
			return 0, 0, false, p.errorf("min repeat greater than max repeat")
		}
		return lo, hi, true, nil
	}
	return 0, 0, false, nil
}

// number parses a decimal integer, reporting whether any digits were read.
func (p *parser) number() (int, bool) {
	start := p.pos
	n := 0
	for isDigit(p.peek()) {
		n = n*10 + int(p.next()-'0')
	}
	return n, p.pos > start
}

func (p *parser) atom() (*Node, error) {
	switch r := p.peek(); r {
	case '(':
		return p.group()
	case '[':
		return p.class()
	case '.':
		p.pos++
		return &Node{Kind: KindAnyChar, Choices: p.table.ResolveExcluding('\n')}, nil
	case '^':
		p.pos++
		return anchor("^"), nil
	case '$':
		p.pos++
		return anchor("$"), nil
	case '\\':
		return p.escape()
	case '*', '+', '?':
		return nil, p.errorf("nothing to repeat")
	case '{':
		// A well-formed bound with no preceding atom is an error; anything
		// else is a literal brace.
		start := p.pos
		if _, _, ok, err := p.quantifier(); err != nil {
			return nil, err
		} else if ok {
			p.pos = start
			return nil, p.errorf("nothing to repeat")
		}
		p.pos++
		return &Node{Kind: KindLiteral, Lit: []rune{r}}, nil
	default:
		p.pos++
		return &Node{Kind: KindLiteral, Lit: []rune{r}}, nil
	}
}

// group parses everything that starts with '('.
func (p *parser) group() (*Node, error) {
	p.pos++
	if p.peek() != '?' {
		p.groups++
		index := p.groups
		body, err := p.groupBody()
		if err != nil {
			return nil, err
		}
		p.closed[index] = true
		return &Node{Kind: KindCapture, Index: index, Sub: body}, nil
	}
	p.pos++

	switch p.peek() {
	case ':':
		p.pos++
		body, err := p.groupBody()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindGroup, Sub: body}, nil

	case '=':
		p.pos++
		body, err := p.groupBody()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindPosLook, Sub: body}, nil

	case '!':
		p.pos++
		body, err := p.groupBody()
		if err != nil {
			return nil, err
		}
		if body.Kind == KindEmpty {
			// (?!) vetoes the empty match: nothing can ever match.
			return &Node{Kind: KindNothing}, nil
		}
		return &Node{Kind: KindNegLook, Sub: body}, nil

	case '>':
		p.pos++
		if _, err := p.groupBody(); err != nil {
			return nil, err
		}
		return unsupported("atomic group (?>...)"), nil

	case '#':
		for !p.eof() && p.peek() != ')' {
			p.pos++
		}
		if p.eof() {
			return nil, p.errorf("unterminated comment")
		}
		p.pos++
		return &Node{Kind: KindEmpty}, nil

	case '<':
		p.pos++
		switch p.peek() {
		case '=':
			p.pos++
			body, err := p.groupBody()
			if err != nil {
				return nil, err
			}
			return &Node{Kind: KindPosLook, Sub: body}, nil
		case '!':
			p.pos++
			body, err := p.groupBody()
			if err != nil {
				return nil, err
			}
			if body.Kind == KindEmpty {
				return &Node{Kind: KindNothing}, nil
			}
			return &Node{Kind: KindNegLook, Sub: body}, nil
		}
		return p.namedGroup('>')

	case 'P':
		p.pos++
		switch p.peek() {
		case '<':
			p.pos++
			return p.namedGroup('>')
		case '=':
			p.pos++
			name, err := p.groupName(')')
			if err != nil {
				return nil, err
			}
			return p.namedBackref(name)
		}
		return nil, p.errorf("unexpected %q after (?P", p.peek())

	case '(':
		// Conditional (?(cond)yes|no). The body is parsed so group numbering
		// stays consistent, then the whole construct is marked unsupported.
		p.pos++
		for !p.eof() && p.peek() != ')' {
			p.pos++
		}
		if p.eof() {
			return nil, p.errorf("unterminated conditional")
		}
		p.pos++
		if _, err := p.groupBody(); err != nil {
			return nil, err
		}
		return unsupported("conditional (?(...)...)"), nil
	}

	if strings.ContainsRune("imsxuUn-", p.peek()) {
		return p.inlineFlags()
	}
	return nil, p.errorf("unknown group syntax (?%c", p.peek())
}

// groupBody parses an alternation and consumes the closing parenthesis.
func (p *parser) groupBody() (*Node, error) {
	body, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if p.peek() != ')' {
		return nil, p.errorf("missing closing parenthesis")
	}
	p.pos++
	return body, nil
}

// namedGroup parses name-terminated-by-end plus the group body.
func (p *parser) namedGroup(end rune) (*Node, error) {
	name, err := p.groupName(end)
	if err != nil {
		return nil, err
	}
	if _, dup := p.names[name]; dup {
		return nil, p.errorf("duplicate group name %q", name)
	}
	p.groups++
	index := p.groups
	p.names[name] = index
	body, err := p.groupBody()
	if err != nil {
		return nil, err
	}
	p.closed[index] = true
	return &Node{Kind: KindCapture, Index: index, Name: name, Sub: body}, nil
}

func (p *parser) groupName(end rune) (string, error) {
	start := p.pos
	for r := p.peek(); isWordRune(r); r = p.peek() {
		p.pos++
	}
	name := string(p.input[start:p.pos])
	switch {
	case name == "":
		return "", p.errorf("missing group name")
	case isDigit(rune(name[0])):
		return "", p.errorf("group name %q cannot start with a digit", name)
	case p.peek() != end:
		return "", p.errorf("unterminated group name %q", name)
	}
	p.pos++
	return name, nil
}

func (p *parser) namedBackref(name string) (*Node, error) {
	index, known := p.names[name]
	if !known || !p.closed[index] {
		return nil, p.errorf("invalid group name %q", name)
	}
	return &Node{Kind: KindBackref, Index: index, Name: name}, nil
}

// inlineFlags parses (?flags) and (?flags:...). Generation cannot honor
// matching-mode flags, so both forms are unsupported constructs.
func (p *parser) inlineFlags() (*Node, error) {
	start := p.pos
	for strings.ContainsRune("imsxuUn-", p.peek()) {
		p.pos++
	}
	flags := string(p.input[start:p.pos])
	switch p.peek() {
	case ')':
		p.pos++
	case ':':
		p.pos++
		if _, err := p.groupBody(); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf("unknown inline flag %q", p.peek())
	}
	return unsupported(fmt.Sprintf("inline flags (?%s...)", flags)), nil
}

// escape parses a backslash sequence outside a character class.
func (p *parser) escape() (*Node, error) {
	p.pos++
	if p.eof() {
		return nil, p.errorf("trailing backslash")
	}
	r := p.next()
	switch r {
	case 'd', 'D', 's', 'S', 'w', 'W':
		return &Node{Kind: KindClass, Choices: p.table.Category(categoryOf(r))}, nil
	case 'b':
		return anchor(`\b`), nil
	case 'B':
		return anchor(`\B`), nil
	case 'A':
		return anchor(`\A`), nil
	case 'Z':
		return anchor(`\Z`), nil
	case 'z':
		return anchor(`\z`), nil
	case 'G':
		return anchor(`\G`), nil
	case 'k':
		if p.peek() != '<' {
			return nil, p.errorf(`expected '<' after \k`)
		}
		p.pos++
		name, err := p.groupName('>')
		if err != nil {
			return nil, err
		}
		return p.namedBackref(name)
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		index := int(r - '0')
		for isDigit(p.peek()) {
			index = index*10 + int(p.next()-'0')
		}
		if !p.closed[index] {
			return nil, p.errorf("invalid group reference %d", index)
		}
		return &Node{Kind: KindBackref, Index: index}, nil
	case '0':
		// \0 with up to two octal digits.
		value := rune(0)
		for i := 0; i < 2 && p.peek() >= '0' && p.peek() <= '7'; i++ {
			value = value*8 + (p.next() - '0')
		}
		return &Node{Kind: KindLiteral, Lit: []rune{value}}, nil
	}
	c, err := p.escapedChar(r)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindLiteral, Lit: []rune{c}}, nil
}

// escapedChar resolves single-character escapes shared by atoms and classes.
// r is the rune following the backslash.
func (p *parser) escapedChar(r rune) (rune, error) {
	switch r {
	case 'a':
		return '\a', nil
	case 'e':
		return '\x1b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	case 'x':
		return p.hexChar(2)
	case 'u':
		return p.hexChar(4)
	}
	if isWordRune(r) {
		return 0, p.errorf(`bad escape \%c`, r)
	}
	return r, nil
}

func (p *parser) hexChar(digits int) (rune, error) {
	value := rune(0)
	for i := 0; i < digits; i++ {
		d := hexDigit(p.peek())
		if d < 0 {
			return 0, p.errorf("invalid hexadecimal escape")
		}
		p.pos++
		value = value*16 + rune(d)
	}
	return value, nil
}

// class parses a [...] character class. Listed members are taken as-is
// (literals, range expansions and category expansions); only a leading '^'
// brings the printable universe into play, as printable minus the members.
func (p *parser) class() (*Node, error) {
	p.pos++
	negate := false
	if p.peek() == '^' {
		p.pos++
		negate = true
	}

	var members []rune
	for first := true; ; first = false {
		if p.eof() {
			return nil, p.errorf("unterminated character class")
		}
		if p.peek() == ']' && !first {
			p.pos++
			break
		}

		lo, isSet, err := p.classChar(&members)
		if err != nil {
			return nil, err
		}
		if isSet {
			continue
		}
		if p.peek() == '-' && p.pos+1 < len(p.input) && p.input[p.pos+1] != ']' {
			p.pos++
			hi, isSet, err := p.classChar(nil)
			if err != nil {
				return nil, err
			}
			if isSet || hi < lo {
				return nil, p.errorf("bad character range")
			}
			for c := lo; c <= hi; c++ {
				members = append(members, c)
			}
			continue
		}
		members = append(members, lo)
	}

	var choices []rune
	if negate {
		choices = p.table.Complement(members)
	} else {
		slices.Sort(members)
		choices = slices.Compact(members)
	}
	return &Node{Kind: KindClass, Choices: choices}, nil
}

// classChar parses one class member. Category shorthands append their table
// entries to members and report isSet; single characters are returned for
// possible use as a range endpoint.
func (p *parser) classChar(members *[]rune) (c rune, isSet bool, err error) {
	r := p.next()
	if r != '\\' {
		return r, false, nil
	}
	if p.eof() {
		return 0, false, p.errorf("trailing backslash")
	}
	e := p.next()
	switch e {
	case 'd', 'D', 's', 'S', 'w', 'W':
		if members == nil {
			return 0, true, nil
		}
		*members = append(*members, p.table.Category(categoryOf(e))...)
		return 0, true, nil
	case 'b':
		return '\b', false, nil
	}
	c, err = p.escapedChar(e)
	return c, false, err
}

func categoryOf(r rune) charset.Category {
	switch r {
	case 'd':
		return charset.Digit
	case 'D':
		return charset.NotDigit
	case 's':
		return charset.Space
	case 'S':
		return charset.NotSpace
	case 'w':
		return charset.Word
	default:
		return charset.NotWord
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' || isDigit(r) ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func hexDigit(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

func anchor(symbol string) *Node {
	return &Node{Kind: KindAnchor, Name: symbol}
}

func unsupported(construct string) *Node {
	return &Node{Kind: KindUnsupported, Name: construct}
}
