package datefmt

import (
	"strconv"
	"strings"
	"time"
)

// Format renders t with layout. Unpadded tokens print without leading zeros;
// literals, quoted text included, are copied as is. An empty layout yields "".
//
// Complexity: O(len(layout)).
func Format(t time.Time, layout string) string {
	var b strings.Builder
	for _, tok := range tokenize(layout) {
		switch tok.field {
		case fLiteral:
			b.WriteRune(tok.lit)
		case fYear4:
			writeNum(&b, t.Year(), 4)
		case fYear2:
			writeNum(&b, t.Year()%100, 2)
		case fMonth:
			writeNum(&b, int(t.Month()), tok.width())
		case fDay:
			writeNum(&b, t.Day(), tok.width())
		case fHour24:
			writeNum(&b, t.Hour(), tok.width())
		case fHour12:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			writeNum(&b, h, tok.width())
		case fMinute:
			writeNum(&b, t.Minute(), tok.width())
		case fSecond:
			writeNum(&b, t.Second(), tok.width())
		case fMilli:
			writeNum(&b, t.Nanosecond()/int(time.Millisecond), 3)
		case fAmPmLower:
			b.WriteString(ampm(t, "am", "pm"))
		case fAmPmUpper:
			b.WriteString(ampm(t, "AM", "PM"))
		}
	}

	return b.String()
}

// writeNum writes n left-padded with zeros to width (0 = no padding).
func writeNum(b *strings.Builder, n, width int) {
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func ampm(t time.Time, am, pm string) string {
	if t.Hour() < 12 {
		return am
	}

	return pm
}
