// Package datefmt formats and parses dates with token layouts such as
// "yyyy-MM-dd" or "M/d/yyyy hh:mm A", and derives the matching input mask.
//
// Tokens (longest match wins, anything else is a literal):
//
//	yyyy yy        year, 4 digits / 2 digits (2000+yy)
//	MM M           month, padded / 1-2 digits
//	dd d           day of month
//	HH H           hour 0-23
//	hh h           hour 1-12
//	mm m           minute
//	ss s           second
//	fff            milliseconds
//	a A            am/pm marker, lower/upper case
//	'text'         literal text, token letters included ("'Date:' dd")
//	''             literal single quote
//
// Letters outside quotes are read as tokens where they spell one, so
// "Date: dd" holds an am/pm marker; write "'Date:' dd" instead.
//
// Parse is strict: fields must be in range and the calendar date must exist,
// nothing overflows into the next month. Missing date fields default to
// 1970-01-01, missing time fields to zero.
//
// MaskPattern turns a layout into a pattern for package mask, and Complete
// chains the two: mask what was typed, parse it once it is complete.
//
//	t, res, err := datefmt.Complete("12152024", "MM/dd/yyyy")
//	// res.Text == "12/15/2024", t == 2024-12-15 00:00:00 UTC
//
// Errors are sentinels matched with errors.Is: ErrEmptyLayout, ErrBadValue,
// ErrOutOfRange, ErrNotMaskable, ErrIncomplete.
package datefmt
