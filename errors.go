package sfv

import "fmt"

// ParseError is returned when input text violates the structured
// field grammar. A single syntax error anywhere fails the whole
// decode, so the error carries the byte offset of the failure and a
// snippet of the surrounding input to make the report useful.
type ParseError struct {
	Offset  int    // byte offset where parsing failed
	Message string // what was wrong
	Context string // the input surrounding the failure
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("structured field parse error at offset %d: %s (near %q)", e.Offset, e.Message, e.Context)
}

// InvalidValueError is the panic value raised by the Serialize
// functions when handed a value that violates the structured field
// data model, such as an out-of-range Integer or a Token containing
// characters outside the token charset. Such a value cannot have come
// from a successful parse, so this signals a bug in the calling
// program rather than bad input and is deliberately not recoverable
// as an ordinary error return.
type InvalidValueError struct {
	Message string
}

// Error returns the error message.
func (e *InvalidValueError) Error() string {
	return "invalid structured field value: " + e.Message
}

// invalidf panics with an InvalidValueError.
func invalidf(format string, args ...any) {
	panic(&InvalidValueError{Message: fmt.Sprintf(format, args...)})
}
