// Package scanner provides the cursor the structured field parser
// reads through. It is a thin position tracker over an immutable
// input string. The structured field grammar is LL(1) once the first
// character of a bare item has been seen, so the cursor never needs
// to rewind and never does.
package scanner

// EOF is the byte returned by Peek and Next once the input is
// exhausted. NUL cannot appear in a structured field, so there is no
// ambiguity.
const EOF byte = 0

// Scanner tracks a read offset into an input string. The zero value
// is an empty scanner; use New for anything useful.
type Scanner struct {
	input string
	pos   int
}

// New returns a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Empty reports whether the input is exhausted.
func (s *Scanner) Empty() bool {
	return s.pos >= len(s.input)
}

// Offset returns the current read offset in bytes.
func (s *Scanner) Offset() int {
	return s.pos
}

// Peek returns the byte at the cursor without moving it, or EOF when
// the input is exhausted.
func (s *Scanner) Peek() byte {
	if s.pos >= len(s.input) {
		return EOF
	}
	return s.input[s.pos]
}

// PeekAt returns the byte n positions past the cursor without moving
// it, or EOF when that position is past the end. PeekAt(0) is Peek.
func (s *Scanner) PeekAt(n int) byte {
	if s.pos+n >= len(s.input) {
		return EOF
	}
	return s.input[s.pos+n]
}

// Next returns the byte at the cursor and moves past it, or returns
// EOF without moving when the input is exhausted.
func (s *Scanner) Next() byte {
	if s.pos >= len(s.input) {
		return EOF
	}
	c := s.input[s.pos]
	s.pos++
	return c
}

// Consume moves past the byte at the cursor and returns true when it
// equals c. Otherwise the cursor stays put and Consume returns false.
func (s *Scanner) Consume(c byte) bool {
	if s.Peek() == c {
		s.pos++
		return true
	}
	return false
}

// TakeWhile moves the cursor past the maximal run of bytes satisfying
// pred and returns that run, which may be empty.
func (s *Scanner) TakeWhile(pred func(byte) bool) string {
	start := s.pos
	for s.pos < len(s.input) && pred(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// SkipOWS moves the cursor past optional whitespace. Structured
// fields admit only space and horizontal tab between tokens; newlines
// are never whitespace here.
func (s *Scanner) SkipOWS() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c != ' ' && c != '\t' {
			break
		}
		s.pos++
	}
}

// Context returns a snippet of the input surrounding the cursor,
// suitable for inclusion in error messages.
func (s *Scanner) Context() string {
	const reach = 20

	start := s.pos - reach
	if start < 0 {
		start = 0
	}
	end := s.pos + reach
	if end > len(s.input) {
		end = len(s.input)
	}

	snippet := s.input[start:end]
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(s.input) {
		snippet += "..."
	}
	return snippet
}
