package sfv

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"
)

// The serializer is a top-down walk over the value model, mirroring
// the parser's structure one level at a time. It always produces the
// canonical form: exactly ", " between top-level members, exactly one
// space between inner list members, no whitespace anywhere else.
//
// Values that violate the data model make these functions panic with
// *InvalidValueError. Parsed values are always within the model, so
// the panic only ever reports a value the caller constructed wrongly.

// SerializeItem returns the canonical text for a single-item header
// value.
func SerializeItem(item Item) string {
	var sb strings.Builder
	writeItem(&sb, item)
	return sb.String()
}

// SerializeList returns the canonical text for a list header value.
// An empty list yields the empty string: such a header is not sent at
// all.
func SerializeList(list List) string {
	var sb strings.Builder
	for i, m := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeMember(&sb, m)
	}
	return sb.String()
}

// SerializeDictionary returns the canonical text for a dictionary
// header value. An empty or nil dictionary yields the empty string:
// such a header is not sent at all. A member that is boolean true
// with no parameters serializes in its shorthand form, the bare key.
func SerializeDictionary(dict *Dictionary) string {
	if dict == nil {
		return ""
	}

	var sb strings.Builder
	for i, key := range dict.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeKey(&sb, key)

		member := dict.members[key]
		if item, ok := member.(Item); ok {
			if b, isBool := item.Value.(Boolean); isBool && bool(b) {
				// the =?1 is implied by the bare key
				writeParams(&sb, item.Params)
				continue
			}
		}

		sb.WriteByte('=')
		writeMember(&sb, member)
	}
	return sb.String()
}

func writeMember(sb *strings.Builder, m Member) {
	switch v := m.(type) {
	case Item:
		writeItem(sb, v)
	case InnerList:
		writeInnerList(sb, v)
	default:
		invalidf("%T is not a list or dictionary member", m)
	}
}

func writeItem(sb *strings.Builder, item Item) {
	writeBareItem(sb, item.Value)
	writeParams(sb, item.Params)
}

func writeInnerList(sb *strings.Builder, list InnerList) {
	sb.WriteByte('(')
	for i, item := range list.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeItem(sb, item)
	}
	sb.WriteByte(')')
	writeParams(sb, list.Params)
}

func writeParams(sb *strings.Builder, params *Parameters) {
	if params == nil {
		return
	}
	for _, key := range params.keys {
		sb.WriteByte(';')
		writeKey(sb, key)

		value := params.values[key]
		if b, ok := value.(Boolean); ok && bool(b) {
			// boolean true is implied by a bare key
			continue
		}
		sb.WriteByte('=')
		writeBareItem(sb, value)
	}
}

func writeKey(sb *strings.Builder, key string) {
	if !validKey(key) {
		invalidf("%q is not a valid key", key)
	}
	sb.WriteString(key)
}

func writeBareItem(sb *strings.Builder, bare BareItem) {
	switch v := bare.(type) {
	case Integer:
		if v > MaxInteger || v < MinInteger {
			invalidf("integer %d is out of range", int64(v))
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Decimal:
		writeDecimal(sb, v)
	case String:
		writeString(sb, v)
	case Token:
		if !validToken(string(v)) {
			invalidf("%q is not a valid token", string(v))
		}
		sb.WriteString(string(v))
	case Bytes:
		sb.WriteByte(':')
		sb.WriteString(base64.StdEncoding.EncodeToString(v))
		sb.WriteByte(':')
	case Boolean:
		if v {
			sb.WriteString("?1")
		} else {
			sb.WriteString("?0")
		}
	case Date:
		if v > MaxInteger || v < MinInteger {
			invalidf("date %d is out of range", int64(v))
		}
		sb.WriteByte('@')
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case DisplayString:
		writeDisplayString(sb, v)
	case nil:
		invalidf("nil bare item")
	default:
		invalidf("%T is not a bare item", bare)
	}
}

// writeDecimal emits exactly the precision the Decimal carries, so
// the output reparses to a deep-equal value: trailing zeros within
// the stored precision are kept, not trimmed.
func writeDecimal(sb *strings.Builder, d Decimal) {
	prec := d.Precision()

	pow := int64(1)
	for i := 0; i < prec; i++ {
		pow *= 10
	}

	// at most twelve integral digits, checked on the scaled value so
	// the negation below cannot overflow either
	bound := (MaxDecimalIntegral+1)*pow - 1
	if d.units > bound || d.units < -bound {
		invalidf("decimal is out of range")
	}

	units := d.units
	if units < 0 {
		sb.WriteByte('-')
		units = -units
	}

	sb.WriteString(strconv.FormatInt(units/pow, 10))
	sb.WriteByte('.')

	digits := strconv.FormatInt(units%pow, 10)
	for i := len(digits); i < prec; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)
}

func writeString(sb *strings.Builder, s String) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isPrintable(c) {
			invalidf("string contains a control or non-ASCII character")
		}
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
}

const lowerHex = "0123456789abcdef"

func writeDisplayString(sb *strings.Builder, s DisplayString) {
	if !utf8.ValidString(string(s)) {
		invalidf("display string is not valid UTF-8")
	}

	sb.WriteString(`%"`)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' || c == '"' || !isPrintable(c) {
			sb.WriteByte('%')
			sb.WriteByte(lowerHex[c>>4])
			sb.WriteByte(lowerHex[c&0xf])
		} else {
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}
