// Package method lists the request methods defined by RFC 9110 and RFC 5789. The parser
// doesn't restrict methods to these, any alphanumeric token is accepted.
package method

import "slices"

const (
	GET     = "GET"
	HEAD    = "HEAD"
	POST    = "POST"
	PUT     = "PUT"
	DELETE  = "DELETE"
	CONNECT = "CONNECT"
	OPTIONS = "OPTIONS"
	TRACE   = "TRACE"
	PATCH   = "PATCH"
)

var List = []string{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

// IsKnown tells whether the method is one of the standard ones. Methods are case-sensitive.
func IsKnown(method string) bool {
	return slices.Contains(List, method)
}

// IsSafe tells whether the method is read-only by its semantics.
func IsSafe(method string) bool {
	switch method {
	case GET, HEAD, OPTIONS, TRACE:
		return true
	default:
		return false
	}
}
