// Package cachecontrol reads and writes targeted cache-control
// fields as defined by RFC 9213, such as CDN-Cache-Control. Unlike
// the legacy Cache-Control syntax, targeted fields are structured
// field dictionaries, which is what lets this package lean on the
// codec instead of ad hoc splitting.
//
// Unrecognized directives are kept in Directives.Extensions, as RFC
// 9213 tells targets to ignore rather than reject them; a field that
// is not a valid structured field dictionary fails as a whole and
// RFC 9213 tells the target to treat it as absent.
package cachecontrol

import (
	"fmt"

	sfv "github.com/zostay/go-sfv"
)

// CDNCacheControl is the targeted field name aimed at content
// delivery networks, the first target RFC 9213 registers.
const CDNCacheControl = "CDN-Cache-Control"

// Directives is a parsed targeted cache-control field. Boolean
// directives are present-or-absent; integer directives are nil when
// absent.
type Directives struct {
	// MaxAge caps freshness in seconds.
	MaxAge *int64

	// MustRevalidate forbids serving stale responses.
	MustRevalidate bool

	// NoCache demands revalidation before reuse.
	NoCache bool

	// NoStore forbids storing the response.
	NoStore bool

	// NoTransform forbids transforming the payload.
	NoTransform bool

	// StaleWhileRevalidate allows serving stale for this many
	// seconds while revalidating in the background (RFC 5861).
	StaleWhileRevalidate *int64

	// StaleIfError allows serving stale for this many seconds when
	// revalidation fails (RFC 5861).
	StaleIfError *int64

	// Extensions holds directives this package does not recognize,
	// or recognized directives with unexpected types, in wire order.
	Extensions *sfv.Dictionary
}

// Parse reads a targeted cache-control field value. The empty string
// yields zero Directives, the same as a field that was never sent.
func Parse(value string) (Directives, error) {
	dict, err := sfv.ParseDictionary(value)
	if err != nil {
		return Directives{}, fmt.Errorf("targeted cache-control: %w", err)
	}

	var d Directives
	for _, key := range dict.Keys() {
		m, _ := dict.Get(key)
		if d.apply(key, m) {
			continue
		}
		if d.Extensions == nil {
			d.Extensions = sfv.NewDictionary()
		}
		d.Extensions.Set(key, m)
	}
	return d, nil
}

func (d *Directives) apply(key string, m sfv.Member) bool {
	item, ok := m.(sfv.Item)
	if !ok {
		// no defined directive takes an inner list
		return false
	}

	boolean := func(set func()) bool {
		if b, ok := item.Value.(sfv.Boolean); ok && bool(b) {
			set()
			return true
		}
		return false
	}
	seconds := func(set func(int64)) bool {
		if n, ok := item.Value.(sfv.Integer); ok && n >= 0 {
			set(int64(n))
			return true
		}
		return false
	}

	switch key {
	case "max-age":
		return seconds(func(n int64) { d.MaxAge = &n })
	case "must-revalidate":
		return boolean(func() { d.MustRevalidate = true })
	case "no-cache":
		return boolean(func() { d.NoCache = true })
	case "no-store":
		return boolean(func() { d.NoStore = true })
	case "no-transform":
		return boolean(func() { d.NoTransform = true })
	case "stale-while-revalidate":
		return seconds(func(n int64) { d.StaleWhileRevalidate = &n })
	case "stale-if-error":
		return seconds(func(n int64) { d.StaleIfError = &n })
	}
	return false
}

// Render serializes the directives back into a field value. Zero
// Directives render as the empty string: send nothing.
func (d Directives) Render() string {
	dict := sfv.NewDictionary()
	if d.MaxAge != nil {
		dict.Set("max-age", sfv.Item{Value: sfv.Integer(*d.MaxAge)})
	}
	if d.MustRevalidate {
		dict.Set("must-revalidate", sfv.Item{Value: sfv.Boolean(true)})
	}
	if d.NoCache {
		dict.Set("no-cache", sfv.Item{Value: sfv.Boolean(true)})
	}
	if d.NoStore {
		dict.Set("no-store", sfv.Item{Value: sfv.Boolean(true)})
	}
	if d.NoTransform {
		dict.Set("no-transform", sfv.Item{Value: sfv.Boolean(true)})
	}
	if d.StaleWhileRevalidate != nil {
		dict.Set("stale-while-revalidate", sfv.Item{Value: sfv.Integer(*d.StaleWhileRevalidate)})
	}
	if d.StaleIfError != nil {
		dict.Set("stale-if-error", sfv.Item{Value: sfv.Integer(*d.StaleIfError)})
	}
	for _, key := range d.Extensions.Keys() {
		m, _ := d.Extensions.Get(key)
		dict.Set(key, m)
	}
	return sfv.SerializeDictionary(dict)
}
