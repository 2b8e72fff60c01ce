package datefmt

import (
	"strings"
	"time"
)

const methodParse = "Parse"

// fields collects the numbers read by Parse before validation.
type fields struct {
	year, month, day    int
	hour, minute, sec   int
	milli               int
	hour12, pm, hasAmPm bool
}

// Parse reads s according to layout.
//
// Rules:
//   - padded tokens need exactly their width in digits (yyyy: 4, MM: 2, fff: 3);
//     unpadded tokens take one or two digits, greedily;
//   - literals must match exactly, quoted ones ('at') included; am/pm markers
//     match in any case;
//   - trailing input after the last token is an error.
//
// Errors:
//   - ErrEmptyLayout — layout is "".
//   - ErrBadValue    — s does not follow layout.
//   - ErrOutOfRange  — a field is out of range or the date does not exist.
func Parse(s, layout string, opts ...Option) (time.Time, error) {
	if layout == "" {
		return time.Time{}, errorf(methodParse, ErrEmptyLayout, "value %q", s)
	}
	o := resolve(opts)

	f := fields{year: 1970, month: 1, day: 1}
	in := []rune(s)
	pos := 0
	for _, tok := range tokenize(layout) {
		switch tok.field {
		case fLiteral:
			if pos >= len(in) || in[pos] != tok.lit {
				return time.Time{}, errorf(methodParse, ErrBadValue, "%q: want %q at %d", s, tok.lit, pos)
			}
			pos++
			continue
		case fAmPmLower, fAmPmUpper:
			if pos+2 > len(in) {
				return time.Time{}, errorf(methodParse, ErrBadValue, "%q: missing am/pm at %d", s, pos)
			}
			switch strings.ToLower(string(in[pos : pos+2])) {
			case "am":
			case "pm":
				f.pm = true
			default:
				return time.Time{}, errorf(methodParse, ErrBadValue, "%q: want am/pm at %d", s, pos)
			}
			f.hasAmPm = true
			pos += 2
			continue
		}

		n, next, ok := readNum(in, pos, tok)
		if !ok {
			return time.Time{}, errorf(methodParse, ErrBadValue, "%q: want digits at %d", s, pos)
		}
		pos = next
		switch tok.field {
		case fYear4:
			f.year = n
		case fYear2:
			f.year = 2000 + n
		case fMonth:
			f.month = n
		case fDay:
			f.day = n
		case fHour24:
			f.hour = n
		case fHour12:
			f.hour, f.hour12 = n, true
		case fMinute:
			f.minute = n
		case fSecond:
			f.sec = n
		case fMilli:
			f.milli = n
		}
	}
	if pos != len(in) {
		return time.Time{}, errorf(methodParse, ErrBadValue, "%q: unexpected %q at %d", s, string(in[pos:]), pos)
	}

	if name := f.invalid(); name != "" {
		return time.Time{}, errorf(methodParse, ErrOutOfRange, "%q: %s", s, name)
	}
	if f.hour12 && f.hasAmPm {
		switch {
		case f.pm && f.hour < 12:
			f.hour += 12
		case !f.pm && f.hour == 12:
			f.hour = 0
		}
	}

	return time.Date(f.year, time.Month(f.month), f.day,
		f.hour, f.minute, f.sec, f.milli*int(time.Millisecond), o.Location), nil
}

// readNum reads the digits of a numeric token starting at pos.
func readNum(in []rune, pos int, tok token) (n, next int, ok bool) {
	minW, maxW := 1, 2
	if w := tok.width(); w > 0 {
		minW, maxW = w, w
	}
	next = pos
	for next < len(in) && next-pos < maxW && in[next] >= '0' && in[next] <= '9' {
		n = n*10 + int(in[next]-'0')
		next++
	}

	return n, next, next-pos >= minW
}

// invalid returns the name of the first field out of range, or "" when the
// fields form an existing date and time.
func (f fields) invalid() string {
	switch {
	case f.month < 1 || f.month > 12:
		return "month"
	case f.day < 1 || f.day > daysIn(f.year, f.month):
		return "day"
	case f.hour12 && (f.hour < 1 || f.hour > 12):
		return "hour"
	case !f.hour12 && f.hour > 23:
		return "hour"
	case f.minute > 59:
		return "minute"
	case f.sec > 59:
		return "second"
	}

	return ""
}

// daysIn returns the number of days of month in year.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
