package datefmt

import (
	"strings"
	"unicode/utf8"
)

// field identifies what a layout token stands for.
type field uint8

const (
	fLiteral field = iota
	fYear4
	fYear2
	fMonth
	fDay
	fHour24
	fHour12
	fMinute
	fSecond
	fMilli
	fAmPmLower
	fAmPmUpper
)

// token is one element of a compiled layout.
//   - padded: fixed width (MM, dd...); otherwise 1-2 digits (M, d...).
//   - lit: the character of a literal token.
type token struct {
	field  field
	padded bool
	lit    rune
}

// tokenDefs maps a layout spelling to its token; ordered longest first.
var tokenDefs = []struct {
	text string
	tok  token
}{
	{"yyyy", token{field: fYear4, padded: true}},
	{"fff", token{field: fMilli, padded: true}},
	{"yy", token{field: fYear2, padded: true}},
	{"MM", token{field: fMonth, padded: true}},
	{"dd", token{field: fDay, padded: true}},
	{"HH", token{field: fHour24, padded: true}},
	{"hh", token{field: fHour12, padded: true}},
	{"mm", token{field: fMinute, padded: true}},
	{"ss", token{field: fSecond, padded: true}},
	{"M", token{field: fMonth}},
	{"d", token{field: fDay}},
	{"H", token{field: fHour24}},
	{"h", token{field: fHour12}},
	{"m", token{field: fMinute}},
	{"s", token{field: fSecond}},
	{"a", token{field: fAmPmLower}},
	{"A", token{field: fAmPmUpper}},
}

// tokenize splits layout into field and literal tokens. Text between single
// quotes is literal; "''" is a literal quote inside or outside of them, and
// an unterminated quote runs to the end of the layout.
func tokenize(layout string) []token {
	var out []token
	for rest := layout; rest != ""; {
		if rest[0] == '\'' {
			var text string
			text, rest = unquote(rest[1:])
			for _, r := range text {
				out = append(out, token{field: fLiteral, lit: r})
			}
			continue
		}
		matched := false
		for _, d := range tokenDefs {
			if strings.HasPrefix(rest, d.text) {
				out = append(out, d.tok)
				rest = rest[len(d.text):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		out = append(out, token{field: fLiteral, lit: r})
		rest = rest[size:]
	}

	return out
}

// unquote reads quoted layout text after its opening quote and returns the
// literal text and the remaining layout.
func unquote(s string) (text, rest string) {
	if strings.HasPrefix(s, "'") {
		return "'", s[1:]
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(s, '\'')
		if i < 0 {
			b.WriteString(s)
			return b.String(), ""
		}
		b.WriteString(s[:i])
		s = s[i+1:]
		if !strings.HasPrefix(s, "'") {
			return b.String(), s
		}
		b.WriteByte('\'')
		s = s[1:]
	}
}

// width returns the fixed digit count of a padded numeric token, 0 otherwise.
func (t token) width() int {
	switch t.field {
	case fYear4:
		return 4
	case fMilli:
		return 3
	case fLiteral, fAmPmLower, fAmPmUpper:
		return 0
	}
	if t.padded {
		return 2
	}

	return 0
}
