package datefmt

import (
	"strings"
	"time"

	"github.com/katalvlaran/inputmask/mask"
)

// MaskPattern returns the mask pattern matching layout: padded tokens become
// '0' runs of their width, unpadded ones "#0". Literal '0' and '#' are written
// as the '\x00' and '\x01' escapes so the mask treats them as constants.
//
// Errors:
//   - ErrEmptyLayout — layout is "".
//   - ErrNotMaskable — layout holds an am/pm marker.
func MaskPattern(layout string) (string, error) {
	const method = "MaskPattern"
	if layout == "" {
		return "", errorf(method, ErrEmptyLayout, "layout %q", layout)
	}

	var b strings.Builder
	for _, tok := range tokenize(layout) {
		switch tok.field {
		case fLiteral:
			switch tok.lit {
			case '0':
				b.WriteByte('\x00')
			case '#':
				b.WriteByte('\x01')
			default:
				b.WriteRune(tok.lit)
			}
		case fAmPmLower, fAmPmUpper:
			return "", errorf(method, ErrNotMaskable, "layout %q", layout)
		default:
			if w := tok.width(); w > 0 {
				b.WriteString(strings.Repeat("0", w))
			} else {
				b.WriteString("#0")
			}
		}
	}

	return b.String(), nil
}

// Complete masks value with the pattern of layout and parses the result once
// the mask reports it complete. The mask result is returned in every case so
// callers can write the corrected text back into the field.
//
// Errors: those of MaskPattern and Parse, plus ErrIncomplete while the value
// does not fill the layout.
func Complete(value, layout string, opts ...Option) (time.Time, mask.Result, error) {
	pattern, err := MaskPattern(layout)
	if err != nil {
		return time.Time{}, mask.Result{}, err
	}
	o := resolve(opts)

	res := mask.Compile(pattern).Apply(value, o.MaskOptions...)
	if !res.Complete {
		return time.Time{}, res, errorf("Complete", ErrIncomplete, "%q as %q", res.Text, layout)
	}
	t, err := Parse(res.Text, layout, opts...)

	return t, res, err
}
