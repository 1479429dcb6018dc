// Package sfv parses and serializes HTTP Structured Field Values as
// defined by RFC 8941, with the Date and Display String types added by
// RFC 9651. It grew out of the header handling in
// github.com/zostay/go-email, which taught me that the only header
// code worth shipping is header code that round-trips: whatever the
// parser accepts, the serializer must reproduce byte-for-byte, and
// whatever the serializer emits, the parser must read back into a
// deep-equal value.
//
// A structured field is always exactly one of three shapes and the
// caller must know which one their field uses:
//
//   - an Item, a single bare value with optional parameters, parsed
//     with ParseItem;
//   - a List, a comma-separated sequence of items and inner lists,
//     parsed with ParseList;
//   - a Dictionary, a comma-separated sequence of key=value members,
//     parsed with ParseDictionary.
//
// The bare values are modeled as a closed set of types implementing
// the BareItem interface: Integer, Decimal, String, Token, Bytes,
// Boolean, Date, and DisplayString. Code consuming parsed fields
// switches on these types directly.
//
// Parsing is strict and total. The grammar gives no license to guess:
// a syntax error anywhere in the input fails the whole decode and
// ParseItem, ParseList, and ParseDictionary return a *ParseError
// describing where. There is no partial result and no best-effort
// recovery at this layer. Field-specific packages built on top of
// this one (cachestatus, proxystatus, priority, cachecontrol) are the
// place for leniency about which keys mean what.
//
// Serialization is the mirror walk over the same value model and
// always emits canonical text: one space between inner list members,
// ", " between top-level members, no trailing separators. Serialize
// functions panic with *InvalidValueError if handed a value that
// could not have come from a successful parse, such as an Integer
// beyond fifteen digits or a Token containing a space. That is a bug
// in the calling program, not an input error, so it is not returned
// as an error value.
//
// The codec holds no state between calls and may be used from any
// number of goroutines without locking.
package sfv
