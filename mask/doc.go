// Package mask formats raw keystroke text against a digit pattern, the way
// a masked input field corrects what the user typed on every key press.
//
// 🚀 What does it do?
//
//	Given a value ("12345678") and a pattern ("0000-00-00") it returns the
//	corrected text ("1234-56-78") and whether the pattern is fully satisfied.
//	It is used for:
//	  • Dates, times and other fixed-width numeric fields
//	  • Phone numbers and postal codes
//	  • Amounts with literal prefixes/suffixes ("$ ###0 USD")
//
// Pattern mini-language:
//
//	0        required digit
//	#        optional digit
//	\x00     literal '0'
//	\x01     literal '#'
//	other    literal character that must be typed or is inserted for the user,
//	         backslash included
//
// ✨ Key features:
//   - auto-separators: raw digits flow over literals ("12345678" → "1234-56-78")
//   - prediction: trailing literals are shown once the current run is full
//     ("1234" → "1234-")
//   - lazy padding: a short run closed by a separator is left-padded with '0'
//     ("1234-1-" → "1234-01-")
//   - optional credits: digits typed into '#' slots may stand in for a later
//     '0' slot of the same run ("1" satisfies "##0")
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/inputmask/mask"
//
//	res := mask.Apply("1234-1-", "0000-00-00")
//	// res.Text == "1234-01-", res.Complete == false
//
//	p := mask.Compile("$ ###0 USD")      // reuse across keystrokes
//	res = p.Apply("$ 5", mask.WithPrediction(false))
//	// res.Text == "$ 5"
//
// Apply never fails: every value/pattern pair yields a best-effort text and a
// completeness flag. A pattern without digit slots degrades to its literal text.
//
// Performance:
//
//   - Time:   O(len(pattern) + len(value)), a single pass
//   - Memory: O(len(pattern) + len(value))
//
// See example_test.go for runnable examples.
package mask
