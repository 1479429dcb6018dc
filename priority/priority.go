// Package priority reads and writes the Priority header defined by
// RFC 9218, the extensible prioritization scheme for HTTP. The header
// is a structured field dictionary carrying an urgency from 0 (most
// urgent) to 7 and an incremental flag.
//
// RFC 9218 requires receivers to ignore unknown dictionary keys and
// out-of-range or wrongly typed values, falling back to the defaults,
// and this package does exactly that. A header that is not a valid
// structured field dictionary at all still fails, because the codec
// underneath never returns partial results.
package priority

import (
	"fmt"

	sfv "github.com/zostay/go-sfv"
)

// Name is the header field name this package reads and writes.
const Name = "Priority"

// Urgency bounds and default per RFC 9218.
const (
	MinUrgency     = 0
	MaxUrgency     = 7
	DefaultUrgency = 3
)

// Priority is a request or response priority signal.
type Priority struct {
	// Urgency orders responses: lower is more urgent. The protocol
	// default is 3.
	Urgency int

	// Incremental is true when the resource is usable as it streams,
	// so concurrent delivery with same-urgency responses helps.
	Incremental bool
}

// Default returns the priority a message carries when the header is
// absent: urgency 3, non-incremental.
func Default() Priority {
	return Priority{Urgency: DefaultUrgency}
}

// Parse reads a Priority header value. Unknown keys, wrong types,
// and out-of-range urgencies are ignored in favor of the defaults,
// as RFC 9218 directs. The empty string yields Default.
func Parse(value string) (Priority, error) {
	dict, err := sfv.ParseDictionary(value)
	if err != nil {
		return Default(), fmt.Errorf("priority: %w", err)
	}

	p := Default()
	if m, ok := dict.Get("u"); ok {
		if item, ok := m.(sfv.Item); ok {
			if n, ok := item.Value.(sfv.Integer); ok && n >= MinUrgency && n <= MaxUrgency {
				p.Urgency = int(n)
			}
		}
	}
	if m, ok := dict.Get("i"); ok {
		if item, ok := m.(sfv.Item); ok {
			if b, ok := item.Value.(sfv.Boolean); ok {
				p.Incremental = bool(b)
			}
		}
	}
	return p, nil
}

// Render serializes the priority. Values matching the protocol
// defaults are omitted, so Default renders as the empty string and
// the header need not be sent at all.
func (p Priority) Render() string {
	dict := sfv.NewDictionary()
	if p.Urgency != DefaultUrgency {
		dict.Set("u", sfv.Item{Value: sfv.Integer(p.Urgency)})
	}
	if p.Incremental {
		dict.Set("i", sfv.Item{Value: sfv.Boolean(true)})
	}
	return sfv.SerializeDictionary(dict)
}
