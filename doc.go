// Package inputmask is the engine behind masked input fields: it turns what a
// user typed, keystroke by keystroke, into text that fits a pattern, and reads
// dates back out of it.
//
// 🚀 What is inputmask?
//
//	A small, dependency-light library that brings together:
//		• Mask formatting: digit patterns with literals ("0000-00-00", "$ ###0 USD")
//		• Auto-separators, trailing-literal prediction and lazy zero padding
//		• Date layouts: format, strict parse, and the mask for a layout
//
// ✨ Why choose inputmask?
//
//   - Pure functions – no globals, safe for concurrent use
//   - Never fails on input – every value gets a best-effort text
//   - Traceable – chunk hooks and slog debug output on demand
//
// Packages:
//
//	mask/        — pattern compiler and keystroke formatter
//	datefmt/     — date layout tokens, Format / Parse / MaskPattern / Complete
//	cmd/maskctl/ — command-line front end
//
// Quick example:
//
//	typed     pattern        text          complete
//	"1234"    "0000-00-00"   "1234-"       false
//	"1234-1-" "0000-00-00"   "1234-01-"    false
//	"12345678" "0000-00-00"  "1234-56-78"  true
//
//	go get github.com/katalvlaran/inputmask
package inputmask
