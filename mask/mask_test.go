package mask_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/inputmask/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply_EmptyValue verifies that an empty value yields the literal prefix
// of the pattern and is never complete.
func TestApply_EmptyValue(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"0000-00-00", ""},
		{"$ ###0 USD", "$ "},
		{"+1 (000) 000-0000", "+1 ("},
		{"##0.#0", ""},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		res := mask.Apply("", tc.pattern)
		assert.Equal(t, tc.want, res.Text, "pattern %q", tc.pattern)
		assert.False(t, res.Complete, "pattern %q", tc.pattern)
	}
}

// TestApply_AutoSeparators checks that raw digits flow over literal positions.
func TestApply_AutoSeparators(t *testing.T) {
	res := mask.Apply("12345678", "0000-00-00")
	assert.Equal(t, mask.Result{Text: "1234-56-78", Complete: true}, res)
}

// TestApply_ForeignSeparatorReplaced verifies that a separator of the wrong
// kind is replaced by the pattern's literal.
func TestApply_ForeignSeparatorReplaced(t *testing.T) {
	res := mask.Apply("1234/56.78", "0000-00-00")
	assert.Equal(t, mask.Result{Text: "1234-56-78", Complete: true}, res)
}

// TestApply_CompleteValueIsStable checks idempotence on values that already
// satisfy the pattern.
func TestApply_CompleteValueIsStable(t *testing.T) {
	cases := []struct{ value, pattern string }{
		{"1234-56-78", "0000-00-00"},
		{"$ 5 USD", "$ ###0 USD"},
		{"$ 1234 USD", "$ ###0 USD"},
		{"1.5", "##0.#0"},
		{"123.45", "##0.#0"},
		{"+1 (555) 123-4567", "+1 (000) 000-0000"},
	}
	for _, tc := range cases {
		res := mask.Apply(tc.value, tc.pattern)
		assert.Equal(t, tc.value, res.Text, "value %q pattern %q", tc.value, tc.pattern)
		assert.True(t, res.Complete, "value %q pattern %q", tc.value, tc.pattern)

		again := mask.Apply(res.Text, tc.pattern)
		assert.Equal(t, res, again, "second pass must not change %q", res.Text)
	}
}

// TestApply_PrefixGrowth types values one key at a time. Without prediction
// every result extends the previous one. With prediction a predicted literal
// may be overtaken by the next digit ("1." → "12."), but the text never shrinks.
func TestApply_PrefixGrowth(t *testing.T) {
	cases := []struct {
		name       string
		pattern    string
		value      string
		prediction bool
		rewrites   bool // prediction may move a trailing literal
		want       []string
		complete   int // first prefix length that is complete
	}{
		{
			name: "date", pattern: "0000-00-00", value: "12345678", prediction: true,
			want:     []string{"1", "12", "123", "1234-", "1234-5", "1234-56-", "1234-56-7", "1234-56-78"},
			complete: 8,
		},
		{
			name: "decimal", pattern: "##0.#0", value: "123.45", prediction: false,
			want:     []string{"1", "12", "123", "123.", "123.4", "123.45"},
			complete: 5,
		},
		{
			name: "decimal predicted", pattern: "##0.#0", value: "123.45", prediction: true, rewrites: true,
			want:     []string{"1.", "12.", "123.", "123.", "123.4", "123.45"},
			complete: 5,
		},
		{
			name: "phone", pattern: "+1 (000) 000-0000", value: "5551234567", prediction: false,
			want: []string{
				"+1 (5", "+1 (55", "+1 (555", "+1 (555) 1", "+1 (555) 12",
				"+1 (555) 123", "+1 (555) 123-4", "+1 (555) 123-45", "+1 (555) 123-456", "+1 (555) 123-4567",
			},
			complete: 10,
		},
		{
			name: "phone predicted", pattern: "+1 (000) 000-0000", value: "5551234567", prediction: true,
			want: []string{
				"+1 (5", "+1 (55", "+1 (555) ", "+1 (555) 1", "+1 (555) 12",
				"+1 (555) 123-", "+1 (555) 123-4", "+1 (555) 123-45", "+1 (555) 123-456", "+1 (555) 123-4567",
			},
			complete: 10,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, tc.want, len(tc.value))
			p := mask.Compile(tc.pattern)
			prev := ""
			for i := 1; i <= len(tc.value); i++ {
				res := p.Apply(tc.value[:i], mask.WithPrediction(tc.prediction))
				assert.Equal(t, tc.want[i-1], res.Text, "prefix %q", tc.value[:i])
				assert.Equal(t, i >= tc.complete, res.Complete, "prefix %q", tc.value[:i])
				if tc.rewrites {
					assert.GreaterOrEqual(t, len(res.Text), len(prev), "%q shorter than %q", res.Text, prev)
				} else {
					assert.True(t, strings.HasPrefix(res.Text, prev), "%q must extend %q", res.Text, prev)
				}
				prev = res.Text
			}
		})
	}
}

// TestApply_LazyPadding verifies zero padding of a short run closed early.
func TestApply_LazyPadding(t *testing.T) {
	res := mask.Apply("1234-1-", "0000-00-00", mask.WithLazy(true))
	assert.Equal(t, mask.Result{Text: "1234-01-", Complete: false}, res)

	res = mask.Apply("1-2-", "00-00-0000")
	assert.Equal(t, "01-02-", res.Text)

	res = mask.Apply("1-", "0000-00")
	assert.Equal(t, "0001-", res.Text, "each missing required slot is padded")
}

// TestApply_LazyDisabled ensures the scan stops instead of padding.
func TestApply_LazyDisabled(t *testing.T) {
	res := mask.Apply("1234-1-", "0000-00-00", mask.WithLazy(false))
	assert.Equal(t, mask.Result{Text: "1234-1", Complete: false}, res)
}

// TestApply_LazyNeverPadsEmptyRun checks that a separator at the start of a
// run is not turned into a zero.
func TestApply_LazyNeverPadsEmptyRun(t *testing.T) {
	res := mask.Apply("1234--", "0000-00-00")
	assert.Equal(t, mask.Result{Text: "1234-", Complete: false}, res)

	res = mask.Apply("-", "00-00")
	assert.Equal(t, mask.Result{Text: "", Complete: false}, res)
}

// TestApply_Prediction covers speculative literal suffixes.
func TestApply_Prediction(t *testing.T) {
	res := mask.Apply("1", "##0.#0")
	assert.Equal(t, mask.Result{Text: "1.", Complete: false}, res)

	res = mask.Apply("$ 5", "$ ###0 USD")
	assert.Equal(t, mask.Result{Text: "$ 5 USD", Complete: true}, res)

	res = mask.Apply("5", "$ ###0 USD")
	assert.Equal(t, mask.Result{Text: "$ 5 USD", Complete: true}, res, "leading literals are inserted")

	res = mask.Apply("1234", "0000-00-00")
	assert.Equal(t, "1234-", res.Text)
}

// TestApply_PredictionDisabled ensures no literal is appended past the input.
func TestApply_PredictionDisabled(t *testing.T) {
	off := mask.WithPrediction(false)

	assert.Equal(t, mask.Result{Text: "1"}, mask.Apply("1", "##0.#0", off))
	assert.Equal(t, mask.Result{Text: "$ 5"}, mask.Apply("$ 5", "$ ###0 USD", off))
	assert.Equal(t, mask.Result{Text: "1234"}, mask.Apply("1234", "0000-00-00", off))

	// Auto-separators are independent of prediction.
	assert.Equal(t, mask.Result{Text: "1234-5"}, mask.Apply("12345", "0000-00-00", off))
}

// TestApply_PredictionNeedsSatisfiedRun checks that an interior literal is not
// predicted while required slots before it are still empty.
func TestApply_PredictionNeedsSatisfiedRun(t *testing.T) {
	assert.Equal(t, mask.Result{Text: "12"}, mask.Apply("12", "0000-00-00"))
	assert.Equal(t, mask.Result{Text: "1."}, mask.Apply("1.", "##0.#0"))
}

// TestApply_PredictionStopsAfterSkippedRun keeps prediction from running past
// a field made only of '#' slots that received no digit.
func TestApply_PredictionStopsAfterSkippedRun(t *testing.T) {
	assert.Equal(t, mask.Result{Text: "1-"}, mask.Apply("1", "0-#-0"))
	assert.Equal(t, mask.Result{Text: "1-"}, mask.Apply("1", "0-##/0"))
	assert.Equal(t, mask.Result{Text: "1-2-3", Complete: true}, mask.Apply("123", "0-#-0"))

	// A trailing '#' field still completes the pattern.
	assert.Equal(t, mask.Result{Text: "12-", Complete: true}, mask.Apply("12", "00-#"))
}

// TestApply_OptionalCredits verifies '#' digits standing in for '0' slots
// within one run, and that credits do not cross a literal.
func TestApply_OptionalCredits(t *testing.T) {
	assert.Equal(t, mask.Result{Text: "12", Complete: true}, mask.Apply("12", "##0"))
	assert.Equal(t, mask.Result{Text: "1.5", Complete: true}, mask.Apply("1.5", "##0.#0"))

	// The credit earned by "1" in the first run does not carry past '-'.
	assert.Equal(t, mask.Result{Text: "1-"}, mask.Apply("1-", "#-0", mask.WithLazy(false)))
}

// TestApply_Escapes checks escaped literal '0' and '#'.
func TestApply_Escapes(t *testing.T) {
	// Control-character escapes.
	res := mask.Apply("#123", "\x01000")
	assert.Equal(t, mask.Result{Text: "#123", Complete: true}, res)

	res = mask.Apply("123", "\x01000")
	assert.Equal(t, mask.Result{Text: "#123", Complete: true}, res, "escaped '#' is inserted like any literal")

	res = mask.Apply("505", "0\x000")
	assert.Equal(t, mask.Result{Text: "505", Complete: true}, res)

	// A backslash is an ordinary literal, and a separator when typed.
	res = mask.Apply(`12\34`, `00\00`)
	assert.Equal(t, mask.Result{Text: `12\34`, Complete: true}, res)

	res = mask.Apply("1234", `00\00`)
	assert.Equal(t, mask.Result{Text: `12\34`, Complete: true}, res)

	res = mask.Apply("1/34", `00\00`)
	assert.Equal(t, mask.Result{Text: `01\34`, Complete: true}, res)

	res = mask.Apply("1/34", `00\00`, mask.WithLazy(false))
	assert.Equal(t, mask.Result{Text: "1"}, res)

	res = mask.Apply("55", `0\00`)
	assert.Equal(t, mask.Result{Text: `5\5`}, res, `"\0" is a backslash then a required slot`)
}

// TestApply_HardStop verifies that a non-separator mismatch stops the scan.
func TestApply_HardStop(t *testing.T) {
	assert.Equal(t, mask.Result{Text: "12"}, mask.Apply("12x4", "0000"))
	assert.Equal(t, mask.Result{Text: "$ 5 "}, mask.Apply("$ 5 X", "$ ###0 USD"))
	assert.Equal(t, mask.Result{Text: ""}, mask.Apply("x", "abc"))
}

// TestApply_ExtraInputDropped checks clamping once the pattern is consumed.
func TestApply_ExtraInputDropped(t *testing.T) {
	assert.Equal(t, mask.Result{Text: "1234-56-78", Complete: true}, mask.Apply("1234567890", "0000-00-00"))
	assert.Equal(t, mask.Result{Text: "$ 1234 USD", Complete: true}, mask.Apply("$ 12345", "$ ###0 USD"))
}

// TestApply_NoSlotPattern covers patterns without digit slots.
func TestApply_NoSlotPattern(t *testing.T) {
	assert.Equal(t, mask.Result{Text: "abc", Complete: true}, mask.Apply("abc", "abc"))
	assert.Equal(t, mask.Result{Text: "abc", Complete: true}, mask.Apply("a", "abc"))
	assert.Equal(t, mask.Result{Text: "", Complete: true}, mask.Apply("1", ""))
}

// TestApply_Unicode ensures multi-byte literals are handled per rune.
func TestApply_Unicode(t *testing.T) {
	res := mask.Apply("125", "00€0")
	assert.Equal(t, mask.Result{Text: "12€5", Complete: true}, res)
}

// TestOnChunk verifies the trace hook sees every new chunk and padding.
func TestOnChunk(t *testing.T) {
	var seen []string
	mask.Apply("1234-1-", "0000-00-00", mask.WithOnChunk(func(c string) {
		seen = append(seen, c)
	}))
	assert.Equal(t, []string{"1", "-", "1", "01", "-"}, seen)
}

// TestWithLogger checks that chunk traces reach the logger at debug level.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res := mask.Apply("12345678", "0000-00-00", mask.WithLogger(logger))
	require.True(t, res.Complete)
	assert.Contains(t, buf.String(), "mask chunk")
	assert.Equal(t, 5, strings.Count(buf.String(), "mask chunk"), "three runs and two separators")
}

// TestNilOptionsIgnored ensures nil options and nil hooks are harmless.
func TestNilOptionsIgnored(t *testing.T) {
	res := mask.Apply("12", "00", nil, mask.WithOnChunk(nil), mask.WithLogger(nil))
	assert.Equal(t, mask.Result{Text: "12", Complete: true}, res)
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := mask.DefaultOptions()
	assert.True(t, o.Prediction)
	assert.True(t, o.Lazy)
	assert.Nil(t, o.OnChunk)
	assert.Nil(t, o.Logger)
}
