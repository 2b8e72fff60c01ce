package mask

import "strings"

// symKind classifies one compiled pattern position.
type symKind uint8

const (
	// symRequired is a '0' slot: exactly one digit.
	symRequired symKind = iota

	// symOptional is a '#' slot: one digit or nothing.
	symOptional

	// symLiteral is a constant character, including escaped '0' and '#'.
	symLiteral
)

// symbol is one compiled pattern position.
type symbol struct {
	kind symKind
	ch   rune // literal character, set for symLiteral only
}

// Pattern is a compiled mask pattern. It is immutable and safe for
// concurrent use; compile once and apply on every keystroke.
type Pattern struct {
	src      string
	syms     []symbol
	required int
	optional int
}

// Compile parses pattern into its slots and literals.
// Compile never fails: every character other than '0', '#', '\x00' and
// '\x01' is a literal, backslash included.
//
// Complexity: O(len(pattern)).
func Compile(pattern string) *Pattern {
	p := &Pattern{src: pattern, syms: make([]symbol, 0, len(pattern))}

	for _, r := range pattern {
		switch r {
		case '0':
			p.syms = append(p.syms, symbol{kind: symRequired})
			p.required++
		case '#':
			p.syms = append(p.syms, symbol{kind: symOptional})
			p.optional++
		case '\x00':
			p.syms = append(p.syms, symbol{kind: symLiteral, ch: '0'})
		case '\x01':
			p.syms = append(p.syms, symbol{kind: symLiteral, ch: '#'})
		default:
			p.syms = append(p.syms, symbol{kind: symLiteral, ch: r})
		}
	}

	return p
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.src }

// Slots reports the number of required ('0') and optional ('#') digit slots.
func (p *Pattern) Slots() (required, optional int) {
	return p.required, p.optional
}

// Prefix returns the literal text in front of the first digit slot. For a
// pattern without any digit slot that is the whole (unescaped) pattern.
func (p *Pattern) Prefix() string {
	var b strings.Builder
	for _, s := range p.syms {
		if s.kind != symLiteral {
			break
		}
		b.WriteRune(s.ch)
	}

	return b.String()
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isSeparator reports whether r belongs to the separator class
// `. , space + - / \`.
func isSeparator(r rune) bool {
	switch r {
	case '.', ',', ' ', '+', '-', '/', '\\':
		return true
	}

	return false
}
