package mask

import "log/slog"

// Apply — keystroke mask formatting
//
// Description:
//
//	Apply walks value and pattern with two cursors and builds the output as
//	an ordered list of chunks: digit runs and single literal characters.
//	The pattern cursor advances on every step; the value cursor advances only
//	when the current character is consumed, so an unconsumed character is
//	retried against the next pattern position.
//
// Algorithm Outline:
//  1. Empty value → return the literal prefix of the pattern, incomplete.
//  2. For each pattern position pi, with c = value[vi]:
//     '0': digit → append, consume.
//     no digit, optional credit left → spend it, retry c.
//     Lazy, c is a separator, current run non-empty → pad run with '0', retry c.
//     otherwise → stop, incomplete.
//     '#': digit → append, consume, earn one optional credit.
//     otherwise → skip the slot, retry c.
//     literal: c equals it → new literal chunk, consume.
//     c is a digit → insert the literal, retry c.
//     c is a separator → insert the literal in its place, consume.
//     otherwise → stop, incomplete.
//     Any literal chunk resets the run's credits.
//  3. Value exhausted before the pattern end → finish the tail: '#' slots are
//     skipped, '0' slots spend credits, literals are appended when Prediction
//     is on. A '0' without credit, or a literal without Prediction, stops
//     the scan, incomplete. So does a literal that follows a run whose slots
//     were all skipped '#' ("1" on "0-#-0" → "1-").
//  4. Pattern end reached → complete. Value characters beyond the end of the
//     pattern are dropped.
//
// Complexity:
//
//	Time   = O(len(pattern) + len(value)); every iteration advances pi.
//	Memory = O(len(pattern) + len(value))
func Apply(value, pattern string, opts ...Option) Result {
	return Compile(pattern).Apply(value, opts...)
}

// Apply formats value against the compiled pattern. See the package-level
// Apply for the rules.
func (p *Pattern) Apply(value string, opts ...Option) Result {
	if value == "" {
		return Result{Text: p.Prefix()}
	}
	o := resolve(opts)
	s := &scanner{syms: p.syms, val: []rune(value), opts: &o}

	return s.run()
}

// chunk is one output segment.
type chunk struct {
	text    []rune
	literal bool
}

// scanner carries the state of a single Apply call.
type scanner struct {
	syms []symbol
	val  []rune
	opts *Options

	chunks      []chunk
	cntOptional int // '#' digits of the current run not yet spent on a '0'
	cntDig      int // digits in the current run, padding included
}

func (s *scanner) run() Result {
	vi := 0
	for pi := 0; pi < len(s.syms); pi++ {
		if vi >= len(s.val) {
			return s.result(s.finish(pi))
		}
		c, sym := s.val[vi], s.syms[pi]

		switch sym.kind {
		case symRequired:
			switch {
			case isDigit(c):
				s.addDigit(c, pi)
				vi++
			case s.cntOptional > 0:
				s.cntOptional--
			case s.opts.Lazy && isSeparator(c) && s.padZero(pi):
			default:
				return s.result(false)
			}

		case symOptional:
			if isDigit(c) {
				s.addDigit(c, pi)
				s.cntOptional++
				vi++
			}

		case symLiteral:
			switch {
			case c == sym.ch:
				s.addLiteral(c, pi)
				vi++
			case isDigit(c):
				s.addLiteral(sym.ch, pi)
			case isSeparator(c):
				s.addLiteral(sym.ch, pi)
				vi++
			default:
				return s.result(false)
			}
		}
	}

	return s.result(true)
}

// finish handles the pattern tail once the value is exhausted at pi.
// It reports whether the tail could be satisfied. Prediction stops in front
// of a literal that follows a run made only of skipped '#' slots, so nothing
// is shown past a field the user has not reached.
func (s *scanner) finish(pi int) bool {
	skipped := false
	for ; pi < len(s.syms); pi++ {
		switch sym := s.syms[pi]; sym.kind {
		case symOptional:
			if s.cntDig == 0 {
				skipped = true
			}
		case symRequired:
			if s.cntOptional == 0 {
				return false
			}
			s.cntOptional--
		case symLiteral:
			if !s.opts.Prediction || skipped {
				return false
			}
			s.addLiteral(sym.ch, pi)
		}
	}

	return true
}

// addDigit appends r to the current digit run, opening one if needed.
func (s *scanner) addDigit(r rune, pi int) {
	s.cntDig++
	if n := len(s.chunks); n > 0 && !s.chunks[n-1].literal {
		s.chunks[n-1].text = append(s.chunks[n-1].text, r)
		return
	}
	s.chunks = append(s.chunks, chunk{text: []rune{r}})
	s.trace(pi)
}

// addLiteral closes the current run with a literal chunk.
func (s *scanner) addLiteral(r rune, pi int) {
	s.chunks = append(s.chunks, chunk{text: []rune{r}, literal: true})
	s.cntOptional, s.cntDig = 0, 0
	s.trace(pi)
}

// padZero left-pads the current digit run with '0'.
// An empty or literal chunk is never padded.
func (s *scanner) padZero(pi int) bool {
	n := len(s.chunks)
	if n == 0 || s.chunks[n-1].literal || s.cntDig == 0 {
		return false
	}
	last := &s.chunks[n-1]
	last.text = append([]rune{'0'}, last.text...)
	s.cntDig++
	s.trace(pi)

	return true
}

func (s *scanner) trace(pi int) {
	if s.opts.OnChunk == nil && s.opts.Logger == nil {
		return
	}
	text := string(s.chunks[len(s.chunks)-1].text)
	if s.opts.OnChunk != nil {
		s.opts.OnChunk(text)
	}
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("mask chunk",
			slog.String("chunk", text),
			slog.Int("pattern_pos", pi),
			slog.Int("chunks", len(s.chunks)))
	}
}

// result joins the chunks.
func (s *scanner) result(complete bool) Result {
	n := 0
	for _, c := range s.chunks {
		n += len(c.text)
	}
	out := make([]rune, 0, n)
	for _, c := range s.chunks {
		out = append(out, c.text...)
	}

	return Result{Text: string(out), Complete: complete}
}
