// Package proxystatus reads and writes the Proxy-Status response
// header defined by RFC 9209. The header is a structured field list
// with one member per intermediary that handled the response, in
// processing order, each annotated with parameters describing how the
// next hop behaved.
//
// As with the sibling packages, leniency stops at syntax: parameters
// of unexpected types land in Entry.Extra, but a malformed header
// fails as a whole.
package proxystatus

import (
	"fmt"

	sfv "github.com/zostay/go-sfv"
)

// Name is the header field name this package reads and writes.
const Name = "Proxy-Status"

// A few of the proxy error types registered by RFC 9209 for the
// error parameter. The full registry is maintained by IANA; any
// token is legal.
const (
	ErrDNSTimeout           = "dns_timeout"
	ErrDNSError             = "dns_error"
	ErrDestinationNotFound  = "destination_not_found"
	ErrConnectionRefused    = "connection_refused"
	ErrConnectionTerminated = "connection_terminated"
	ErrConnectionTimeout    = "connection_timeout"
	ErrHTTPResponseTimeout  = "http_response_timeout"
	ErrHTTPProtocolError    = "http_protocol_error"
	ErrProxyInternalError   = "proxy_internal_error"
)

// Entry describes one intermediary's handling of the response.
type Entry struct {
	// Proxy identifies the intermediary: a hostname, a product name,
	// or an obfuscated identifier.
	Proxy string

	// Error is the proxy error type when the intermediary generated
	// the response because of an error, or empty.
	Error string

	// NextHop names the upstream the intermediary contacted, when
	// disclosed.
	NextHop string

	// NextProtocol is the ALPN protocol identifier used with the
	// next hop, when disclosed.
	NextProtocol string

	// ReceivedStatus is the status code received from the next hop.
	// Nil when absent.
	ReceivedStatus *int64

	// Details carries free-form additional information.
	Details string

	// Extra holds unrecognized or wrongly typed parameters, in wire
	// order.
	Extra *sfv.Parameters
}

// Parse reads a Proxy-Status header value into entries, in
// processing order. Members that are not items with a string or
// token value carry no meaning under RFC 9209 and are skipped.
func Parse(value string) ([]Entry, error) {
	list, err := sfv.ParseList(value)
	if err != nil {
		return nil, fmt.Errorf("proxy-status: %w", err)
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
			e.Proxy = string(v)
		case sfv.String:
			e.Proxy = string(v)
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

func (e *Entry) apply(key string, value sfv.BareItem) bool {
	switch key {
	case "error":
		if t, ok := value.(sfv.Token); ok {
			e.Error = string(t)
			return true
		}
	case "next-hop":
		switch v := value.(type) {
		case sfv.Token:
			e.NextHop = string(v)
			return true
		case sfv.String:
			e.NextHop = string(v)
			return true
		}
	case "next-protocol":
		if t, ok := value.(sfv.Token); ok {
			e.NextProtocol = string(t)
			return true
		}
	case "received-status":
		if n, ok := value.(sfv.Integer); ok {
			v := int64(n)
			e.ReceivedStatus = &v
			return true
		}
	case "details":
		if s, ok := value.(sfv.String); ok {
			e.Details = string(s)
			return true
		}
	}
	return false
}

// Render serializes entries back into a Proxy-Status header value.
// Empty strings and nil numbers are the parameters' absent states and
// are omitted.
func Render(entries []Entry) string {
	list := make(sfv.List, 0, len(entries))
	for _, e := range entries {
		list = append(list, e.item())
	}
	return sfv.SerializeList(list)
}

func (e Entry) item() sfv.Item {
	ps := sfv.NewParameters()
	if e.Error != "" {
		ps.Set("error", sfv.Token(e.Error))
	}
	if e.NextHop != "" {
		ps.Set("next-hop", tokenOrString(e.NextHop))
	}
	if e.NextProtocol != "" {
		ps.Set("next-protocol", sfv.Token(e.NextProtocol))
	}
	if e.ReceivedStatus != nil {
		ps.Set("received-status", sfv.Integer(*e.ReceivedStatus))
	}
	if e.Details != "" {
		ps.Set("details", sfv.String(e.Details))
	}
	for _, k := range e.Extra.Keys() {
		v, _ := e.Extra.Get(k)
		ps.Set(k, v)
	}

	if ps.Len() == 0 {
		ps = nil
	}
	return sfv.Item{Value: tokenOrString(e.Proxy), Params: ps}
}

func tokenOrString(s string) sfv.BareItem {
	if sfv.ValidToken(s) {
		return sfv.Token(s)
	}
	return sfv.String(s)
}
