// Package cachestatus reads and writes the Cache-Status response
// header defined by RFC 9211. The header is a structured field list
// with one member per cache that handled the request, nearest to the
// origin first, each annotated with parameters describing what that
// cache did.
//
// Parsing here is lenient about meaning but not about syntax: a
// member or parameter of an unexpected type is kept in Entry.Extra
// rather than interpreted, but a header that is not a valid
// structured field list fails outright, because the underlying codec
// never returns partial results.
package cachestatus

import (
	"fmt"

	sfv "github.com/zostay/go-sfv"
)

// Name is the header field name this package reads and writes.
const Name = "Cache-Status"

// Forward reasons defined by RFC 9211 for the fwd parameter.
const (
	FwdBypass   = "bypass"
	FwdMethod   = "method"
	FwdURIMiss  = "uri-miss"
	FwdVaryMiss = "vary-miss"
	FwdMiss     = "miss"
	FwdRequest  = "request"
	FwdStale    = "stale"
	FwdPartial  = "partial"
)

// Entry describes what one cache did with the request.
type Entry struct {
	// Cache identifies the cache, such as a hostname or a product
	// name.
	Cache string

	// Hit is true when the response came from the cache without
	// contacting upstream.
	Hit bool

	// Fwd is the reason the request went forward, one of the Fwd*
	// constants, or empty when the request was not forwarded.
	Fwd string

	// FwdStatus is the status code received from upstream, when it
	// differs from the response status. Nil when absent.
	FwdStatus *int64

	// TTL is the response's remaining freshness lifetime in seconds
	// as the cache sees it. It may be negative. Nil when absent.
	TTL *int64

	// Stored is true when a forwarded response was stored.
	Stored bool

	// Collapsed is true when this request was collapsed with others.
	Collapsed bool

	// Key is the cache key, when the cache chooses to reveal it.
	Key string

	// Detail carries additional implementation-specific information.
	Detail string

	// Extra holds parameters this package does not recognize, or
	// recognized parameters whose value had an unexpected type, in
	// their wire order. They survive a parse/render round trip after
	// the known parameters.
	Extra *sfv.Parameters
}

// Parse reads a Cache-Status header value into entries, nearest the
// origin first. List members that are not items with a string or
// token value carry no meaning under RFC 9211 and are skipped.
func Parse(value string) ([]Entry, error) {
	list, err := sfv.ParseList(value)
	if err != nil {
		return nil, fmt.Errorf("cache-status: %w", err)
	}

	entries := make([]Entry, 0, len(list))
	for _, m := range list {
		item, ok := m.(sfv.Item)
		if !ok {
			continue
		}

		var e Entry
		switch v := item.Value.(type) {
		case sfv.Token:
			e.Cache = string(v)
		case sfv.String:
			e.Cache = string(v)
		default:
			continue
		}

		for _, k := range item.Params.Keys() {
			v, _ := item.Params.Get(k)
			if e.apply(k, v) {
				continue
			}
			if e.Extra == nil {
				e.Extra = sfv.NewParameters()
			}
			e.Extra.Set(k, v)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// apply interprets one parameter, reporting whether it was
// recognized with the type RFC 9211 gives it.
func (e *Entry) apply(key string, value sfv.BareItem) bool {
	switch key {
	case "hit":
		if b, ok := value.(sfv.Boolean); ok {
			e.Hit = bool(b)
			return true
		}
	case "fwd":
		if t, ok := value.(sfv.Token); ok {
			e.Fwd = string(t)
			return true
		}
	case "fwd-status":
		if n, ok := value.(sfv.Integer); ok {
			v := int64(n)
			e.FwdStatus = &v
			return true
		}
	case "ttl":
		if n, ok := value.(sfv.Integer); ok {
			v := int64(n)
			e.TTL = &v
			return true
		}
	case "stored":
		if b, ok := value.(sfv.Boolean); ok {
			e.Stored = bool(b)
			return true
		}
	case "collapsed":
		if b, ok := value.(sfv.Boolean); ok {
			e.Collapsed = bool(b)
			return true
		}
	case "key":
		if s, ok := value.(sfv.String); ok {
			e.Key = string(s)
			return true
		}
	case "detail":
		switch v := value.(type) {
		case sfv.Token:
			e.Detail = string(v)
			return true
		case sfv.String:
			e.Detail = string(v)
			return true
		}
	}
	return false
}

// Render serializes entries back into a Cache-Status header value.
// Cache names and details that fit the token charset render as
// tokens, otherwise as strings. False booleans and empty strings are
// the parameters' absent states and are omitted.
func Render(entries []Entry) string {
	list := make(sfv.List, 0, len(entries))
	for _, e := range entries {
		list = append(list, e.item())
	}
	return sfv.SerializeList(list)
}

func (e Entry) item() sfv.Item {
	ps := sfv.NewParameters()
	if e.Hit {
		ps.Set("hit", sfv.Boolean(true))
	}
	if e.Fwd != "" {
		ps.Set("fwd", sfv.Token(e.Fwd))
	}
	if e.FwdStatus != nil {
		ps.Set("fwd-status", sfv.Integer(*e.FwdStatus))
	}
	if e.TTL != nil {
		ps.Set("ttl", sfv.Integer(*e.TTL))
	}
	if e.Stored {
		ps.Set("stored", sfv.Boolean(true))
	}
	if e.Collapsed {
		ps.Set("collapsed", sfv.Boolean(true))
	}
	if e.Key != "" {
		ps.Set("key", sfv.String(e.Key))
	}
	if e.Detail != "" {
		ps.Set("detail", tokenOrString(e.Detail))
	}
	for _, k := range e.Extra.Keys() {
		v, _ := e.Extra.Get(k)
		ps.Set(k, v)
	}

	if ps.Len() == 0 {
		ps = nil
	}
	return sfv.Item{Value: tokenOrString(e.Cache), Params: ps}
}

func tokenOrString(s string) sfv.BareItem {
	if sfv.ValidToken(s) {
		return sfv.Token(s)
	}
	return sfv.String(s)
}
