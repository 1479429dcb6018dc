package sfv

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zostay/go-sfv/internal/scanner"
)

// ParseOption configures a call to one of the parse functions.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxLength int
}

// WithMaxLength caps the length of input a parse call will consider.
// Input longer than n bytes fails with a *ParseError before any
// parsing happens. The default is no cap. Decoding is a single pass
// over the input, so this is only worth setting when the input comes
// from an untrusted peer; it changes nothing for conformant input
// within the cap.
func WithMaxLength(n int) ParseOption {
	return func(cfg *parseConfig) {
		cfg.maxLength = n
	}
}

// ParseItem parses a complete header value as a single item, such as
// a Content-Digest preference or an ETag-like field. The whole input
// must be exactly one item; anything before or after it other than
// whitespace fails the parse.
func ParseItem(text string, opts ...ParseOption) (Item, error) {
	p, err := newParser(text, opts)
	if err != nil {
		return Item{}, err
	}

	p.s.SkipOWS()
	item, err := p.parseItem()
	if err != nil {
		return Item{}, err
	}

	p.s.SkipOWS()
	if !p.s.Empty() {
		return Item{}, p.fail("unexpected text after the item")
	}
	return item, nil
}

// ParseList parses a complete header value as a list of items and
// inner lists. Empty input yields an empty List, which is how a
// header that was never sent reads. A syntax error anywhere fails the
// whole parse; no members are ever dropped or salvaged.
func ParseList(text string, opts ...ParseOption) (List, error) {
	p, err := newParser(text, opts)
	if err != nil {
		return nil, err
	}

	if p.s.Empty() {
		return nil, nil
	}
	return p.parseList()
}

// ParseDictionary parses a complete header value as a dictionary.
// Empty input yields an empty Dictionary, which is how a header that
// was never sent reads. A syntax error anywhere fails the whole
// parse; no members are ever dropped or salvaged.
func ParseDictionary(text string, opts ...ParseOption) (*Dictionary, error) {
	p, err := newParser(text, opts)
	if err != nil {
		return nil, err
	}

	dict := NewDictionary()
	if p.s.Empty() {
		return dict, nil
	}
	if err := p.parseDictionary(dict); err != nil {
		return nil, err
	}
	return dict, nil
}

type parser struct {
	s *scanner.Scanner
}

func newParser(text string, opts []ParseOption) (*parser, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := scanner.New(text)
	if cfg.maxLength > 0 && len(text) > cfg.maxLength {
		return nil, &ParseError{
			Offset:  0,
			Message: fmt.Sprintf("input length %d exceeds the configured maximum %d", len(text), cfg.maxLength),
			Context: s.Context(),
		}
	}
	return &parser{s: s}, nil
}

// fail builds a *ParseError at the scanner's current position.
func (p *parser) fail(message string) *ParseError {
	return &ParseError{
		Offset:  p.s.Offset(),
		Message: message,
		Context: p.s.Context(),
	}
}

// parseList reads list members until the input runs out. The scanner
// is known to be non-empty on entry.
func (p *parser) parseList() (List, error) {
	var list List
	for {
		p.s.SkipOWS()
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		list = append(list, m)

		p.s.SkipOWS()
		if p.s.Empty() {
			return list, nil
		}
		if !p.s.Consume(',') {
			return nil, p.fail("list members must be separated by commas")
		}
		p.s.SkipOWS()
		if p.s.Empty() {
			return nil, p.fail("list ends with a trailing comma")
		}
	}
}

// parseDictionary reads dictionary members into dict until the input
// runs out. The scanner is known to be non-empty on entry.
func (p *parser) parseDictionary(dict *Dictionary) error {
	for {
		p.s.SkipOWS()
		key, err := p.parseKey()
		if err != nil {
			return err
		}

		p.s.SkipOWS()
		var member Member
		if p.s.Consume('=') {
			member, err = p.parseMember()
		} else {
			// A bare key means boolean true, but parameters may
			// still follow the key and attach to that implicit item.
			var params *Parameters
			params, err = p.parseParameters()
			member = Item{Value: Boolean(true), Params: params}
		}
		if err != nil {
			return err
		}
		dict.Set(key, member)

		p.s.SkipOWS()
		if p.s.Empty() {
			return nil
		}
		if !p.s.Consume(',') {
			return p.fail("dictionary members must be separated by commas")
		}
		p.s.SkipOWS()
		if p.s.Empty() {
			return p.fail("dictionary ends with a trailing comma")
		}
	}
}

// parseMember reads one list member or dictionary value: an inner
// list when the next character is "(", an item otherwise.
func (p *parser) parseMember() (Member, error) {
	if p.s.Peek() == '(' {
		return p.parseInnerList()
	}
	return p.parseItem()
}

// parseItem reads a bare item and any parameters attached to it.
func (p *parser) parseItem() (Item, error) {
	bare, err := p.parseBareItem()
	if err != nil {
		return Item{}, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return Item{}, err
	}
	return Item{Value: bare, Params: params}, nil
}

// parseInnerList reads "(", space-separated items, ")", and the
// parameters attached to the list as a whole.
func (p *parser) parseInnerList() (InnerList, error) {
	p.s.Next() // the "(" the caller dispatched on

	var list InnerList
	for {
		p.s.SkipOWS()
		if p.s.Consume(')') {
			break
		}
		if p.s.Empty() {
			return InnerList{}, p.fail("inner list is missing its closing paren")
		}

		item, err := p.parseItem()
		if err != nil {
			return InnerList{}, err
		}
		list.Items = append(list.Items, item)

		if p.s.Empty() {
			return InnerList{}, p.fail("inner list is missing its closing paren")
		}
		if c := p.s.Peek(); c != ' ' && c != ')' {
			return InnerList{}, p.fail("inner list items must be separated by spaces")
		}
	}

	params, err := p.parseParameters()
	if err != nil {
		return InnerList{}, err
	}
	list.Params = params
	return list, nil
}

// parseParameters reads zero or more ";key" or ";key=value" pairs.
// It returns nil when no ";" follows, so an item parsed without
// parameters carries a nil parameter set. Duplicate keys keep only
// the final occurrence.
func (p *parser) parseParameters() (*Parameters, error) {
	var params *Parameters
	for p.s.Consume(';') {
		p.s.SkipOWS()

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}

		var value BareItem = Boolean(true)
		if p.s.Consume('=') {
			value, err = p.parseBareItem()
			if err != nil {
				return nil, err
			}
		}

		if params == nil {
			params = NewParameters()
		}
		params.Set(key, value)
	}
	return params, nil
}

// parseKey reads a parameter or dictionary key.
func (p *parser) parseKey() (string, error) {
	if !isKeyStart(p.s.Peek()) {
		return "", p.fail("keys must start with a lowercase letter or *")
	}
	return p.s.TakeWhile(isKeyChar), nil
}

// parseBareItem dispatches on the first character of a bare item.
// The grammar keeps each type's first character disjoint, so one or
// two bytes of lookahead settle the type before any input is
// consumed.
func (p *parser) parseBareItem() (BareItem, error) {
	c := p.s.Peek()
	switch {
	case c == '-' || isDigit(c):
		return p.parseNumber()
	case c == '"':
		return p.parseString()
	case isTokenStart(c):
		return p.parseToken()
	case c == ':':
		return p.parseBytes()
	case c == '?':
		return p.parseBoolean()
	case c == '@':
		return p.parseDate()
	case c == '%' && p.s.PeekAt(1) == '"':
		return p.parseDisplayString()
	case c == scanner.EOF:
		return nil, p.fail("expected a bare item before the end of input")
	default:
		return nil, p.fail("no bare item starts with this character")
	}
}

// parseNumber reads an integer or decimal. The two share a prefix:
// only once the digit run ends can a "." tell them apart, and the
// digit budgets differ between the two readings. The budget check is
// lexical, which for integers doubles as the range check: fifteen
// digits is exactly the numeric domain.
func (p *parser) parseNumber() (BareItem, error) {
	neg := p.s.Consume('-')

	intDigits := p.s.TakeWhile(isDigit)
	if intDigits == "" {
		return nil, p.fail("expected a digit")
	}

	if p.s.Peek() != '.' {
		if len(intDigits) > 15 {
			return nil, p.fail("integers carry at most 15 digits")
		}
		n, err := strconv.ParseInt(intDigits, 10, 64)
		if err != nil {
			return nil, p.fail("malformed integer")
		}
		if neg {
			n = -n
		}
		return Integer(n), nil
	}

	if len(intDigits) > 12 {
		return nil, p.fail("decimals carry at most 12 integral digits")
	}
	p.s.Next() // the "."

	fracDigits := p.s.TakeWhile(isDigit)
	if fracDigits == "" {
		return nil, p.fail("decimals need at least one digit after the dot")
	}
	if len(fracDigits) > MaxDecimalPrecision {
		return nil, p.fail("decimals carry at most 3 fractional digits")
	}

	ipart, _ := strconv.ParseInt(intDigits, 10, 64)
	fpart, _ := strconv.ParseInt(fracDigits, 10, 64)

	units := ipart
	for i := 0; i < len(fracDigits); i++ {
		units *= 10
	}
	units += fpart
	if neg {
		units = -units
	}
	return Decimal{units: units, prec: uint8(len(fracDigits))}, nil
}

// parseString reads a double-quoted string. Only printable ASCII may
// appear raw, and only the quote and the backslash may be escaped.
func (p *parser) parseString() (BareItem, error) {
	p.s.Next() // the opening quote

	var sb strings.Builder
	for {
		c := p.s.Next()
		switch {
		case c == '"':
			return String(sb.String()), nil
		case c == '\\':
			e := p.s.Next()
			if e != '"' && e != '\\' {
				return nil, p.fail(`only \" and \\ escapes exist in strings`)
			}
			sb.WriteByte(e)
		case c == scanner.EOF:
			return nil, p.fail("string is missing its closing quote")
		case !isPrintable(c):
			return nil, p.fail("strings cannot contain control or non-ASCII characters")
		default:
			sb.WriteByte(c)
		}
	}
}

// parseToken reads a token. The dispatch already verified the first
// character, and every legal first character is also a legal interior
// character, so the maximal run is the token.
func (p *parser) parseToken() (BareItem, error) {
	return Token(p.s.TakeWhile(isTokenChar)), nil
}

// parseBytes reads a colon-delimited base64 byte sequence. Decoding
// is strict: the standard alphabet with required padding and no
// nonzero trailing bits, so the accepted text is exactly what the
// serializer would emit for the decoded bytes.
func (p *parser) parseBytes() (BareItem, error) {
	p.s.Next() // the opening colon

	b64 := p.s.TakeWhile(isBase64Char)
	if !p.s.Consume(':') {
		return nil, p.fail("byte sequence is missing its closing colon")
	}

	data, err := base64.StdEncoding.Strict().DecodeString(b64)
	if err != nil {
		return nil, p.fail("byte sequence is not canonical base64")
	}
	return Bytes(data), nil
}

// parseBoolean reads "?0" or "?1".
func (p *parser) parseBoolean() (BareItem, error) {
	p.s.Next() // the "?"
	switch p.s.Next() {
	case '0':
		return Boolean(false), nil
	case '1':
		return Boolean(true), nil
	}
	return nil, p.fail("booleans are ?0 or ?1")
}

// parseDate reads "@" followed by an integer number of seconds. A
// decimal after the "@" is a parse error, not a truncation.
func (p *parser) parseDate() (BareItem, error) {
	p.s.Next() // the "@"
	n, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	i, ok := n.(Integer)
	if !ok {
		return nil, p.fail("dates are whole seconds, not decimals")
	}
	return Date(i), nil
}

// parseDisplayString reads %"..." with %xx byte escapes. Escapes use
// lowercase hex only, and the decoded bytes must form valid UTF-8.
func (p *parser) parseDisplayString() (BareItem, error) {
	p.s.Next() // the "%"
	p.s.Next() // the opening quote, verified by the dispatch

	var sb strings.Builder
	for {
		c := p.s.Next()
		switch {
		case c == '"':
			if !utf8.ValidString(sb.String()) {
				return nil, p.fail("display string does not decode to valid UTF-8")
			}
			return DisplayString(sb.String()), nil
		case c == '%':
			hi := p.s.Next()
			lo := p.s.Next()
			if !isLowerHex(hi) || !isLowerHex(lo) {
				return nil, p.fail("display string escapes are two lowercase hex digits")
			}
			sb.WriteByte(unhex(hi)<<4 | unhex(lo))
		case c == scanner.EOF:
			return nil, p.fail("display string is missing its closing quote")
		case !isPrintable(c):
			return nil, p.fail("display strings cannot contain raw control or non-ASCII bytes")
		default:
			sb.WriteByte(c)
		}
	}
}
