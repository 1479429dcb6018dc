package sfv

import (
	"math"
	"time"
)

// Limits on the numeric types. Structured field integers carry at
// most fifteen decimal digits of magnitude; decimals carry at most
// twelve integral digits and three fractional digits.
const (
	// MaxInteger is the largest integer a structured field can carry.
	MaxInteger = 999999999999999

	// MinInteger is the smallest integer a structured field can carry.
	MinInteger = -999999999999999

	// MaxDecimalIntegral is the largest integral part a structured
	// field decimal can carry.
	MaxDecimalIntegral = 999999999999

	// MaxDecimalPrecision is the most fractional digits a structured
	// field decimal can carry.
	MaxDecimalPrecision = 3
)

// BareItem is a single typed leaf value in a structured field: the
// value of an item or of a parameter, before any parameters of its
// own. It is a closed set: Integer, Decimal, String, Token, Bytes,
// Boolean, Date, and DisplayString implement it and nothing else
// does. Consumers dispatch with a type switch.
type BareItem interface {
	bareItem()
}

// Integer is a whole number between MinInteger and MaxInteger
// inclusive, such as the value of Age or Content-Length.
type Integer int64

func (Integer) bareItem() {}

// String is printable-ASCII text, serialized in double quotes with
// backslash escapes for the quote and the backslash. No other escape
// exists, so a String cannot carry control characters or non-ASCII
// text; use DisplayString for that.
type String string

func (String) bareItem() {}

// Token is an identifier-like value, serialized without quoting. The
// first character is a letter or "*", the rest draw from the HTTP
// token charset plus ":" and "/".
type Token string

func (Token) bareItem() {}

// Bytes is a byte sequence, serialized as padded standard base64
// between colons.
type Bytes []byte

func (Bytes) bareItem() {}

// Boolean is a true or false value, serialized as "?1" or "?0".
type Boolean bool

func (Boolean) bareItem() {}

// Date is an instant in time, counted in whole seconds since the
// Unix epoch and serialized as "@" followed by an integer. It shares
// Integer's numeric domain.
type Date int64

func (Date) bareItem() {}

// DateFromTime converts a time to a Date, truncating to whole
// seconds.
func DateFromTime(t time.Time) Date {
	return Date(t.Unix())
}

// Time converts the Date to a time.Time in UTC.
func (d Date) Time() time.Time {
	return time.Unix(int64(d), 0).UTC()
}

// DisplayString is Unicode text, serialized as %"..." with every
// byte outside the printable ASCII range percent-escaped. It must
// hold valid UTF-8; serializing a DisplayString holding anything else
// panics.
type DisplayString string

func (DisplayString) bareItem() {}

// Decimal is a fixed-point number with at most twelve integral digits
// and one to three fractional digits. Unlike a float, a Decimal
// remembers its precision: parsing "1.100" yields a Decimal that
// serializes back to "1.100", not "1.1". The zero value is 0.0.
type Decimal struct {
	units int64 // the value scaled by 10^prec
	prec  uint8 // fractional digits, 1..3 (0 only in the zero value)
}

// NewDecimal builds a Decimal from a scaled integer: units is the
// value multiplied by 10 to the prec, so NewDecimal(1123, 3) is 1.123
// and NewDecimal(15, 1) is 1.5. It panics with *InvalidValueError if
// prec is outside 1 through 3.
func NewDecimal(units int64, prec int) Decimal {
	if prec < 1 || prec > MaxDecimalPrecision {
		invalidf("decimal precision %d is outside 1..%d", prec, MaxDecimalPrecision)
	}
	return Decimal{units: units, prec: uint8(prec)}
}

// DecimalFromFloat builds a Decimal from a float, rounding half to
// even at the third fractional digit and then dropping trailing
// fractional zeros down to a minimum of one digit, which is how a
// freshly computed value is conventionally serialized. It panics with
// *InvalidValueError if the value's integral part needs more than
// twelve digits.
func DecimalFromFloat(f float64) Decimal {
	scaled := math.RoundToEven(f * 1000)
	if math.IsNaN(scaled) || scaled > MaxInteger || scaled < MinInteger {
		invalidf("decimal %v is out of range", f)
	}

	units := int64(scaled)
	prec := uint8(3)
	for prec > 1 && units%10 == 0 {
		units /= 10
		prec--
	}
	return Decimal{units: units, prec: prec}
}

// Float returns the Decimal's value as a float64.
func (d Decimal) Float() float64 {
	return float64(d.units) / math.Pow10(d.Precision())
}

// Precision returns the number of fractional digits the Decimal
// carries, between 1 and 3.
func (d Decimal) Precision() int {
	if d.prec == 0 {
		return 1
	}
	return int(d.prec)
}

func (Decimal) bareItem() {}
