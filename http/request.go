package http

import (
	"net"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http/proto"
	"github.com/indigo-web/webparse/kv"
	"github.com/indigo-web/webparse/uri"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents HTTP request
type Request struct {
	// Method is an alphanumeric token, not necessarily one of the standard methods.
	Method string
	// URI is the raw request target, exactly as it was presented in the request line.
	URI string
	// Protocol is the version from the request line.
	Protocol proto.Version
	// Headers holds header pairs with lower-cased keys. Every key is presented at most once,
	// the last occurrence wins.
	Headers Headers
	// Body is everything after the blank line, verbatim.
	Body []byte
	// Remote holds the remote address. Nil if the request was parsed outside a connection.
	Remote   net.Addr
	response *Response
}

func NewRequest(cfg *config.Config, remote net.Addr) *Request {
	return &Request{
		Headers:  kv.NewPrealloc(cfg.Headers.Number.Default),
		Remote:   remote,
		response: NewResponse(),
	}
}

// Header returns the value of the header and whether it was presented at all. The lookup
// is case-insensitive.
func (r *Request) Header(name string) (string, bool) {
	return r.Headers.Get(name)
}

func (r *Request) HasHeader(name string) bool {
	return r.Headers.Has(name)
}

// HasBody tells whether anything followed the headers.
func (r *Request) HasBody() bool {
	return len(r.Body) > 0
}

// Target parses the request target as a URI. Please note that asterisk-form (OPTIONS *)
// is a valid relative reference as well, resulting in a single path segment.
func (r *Request) Target() (*uri.URI, error) {
	return uri.Parse(r.URI)
}

// Respond returns a cleared response object, which is owned by the request and therefore
// reused between requests.
func (r *Request) Respond() *Response {
	if r.response == nil {
		r.response = NewResponse()
	}

	return r.response.Clear()
}

// Reset brings the request into the empty state, keeping the allocated memory. It also
// makes a zero-value Request usable.
func (r *Request) Reset() {
	r.Method = ""
	r.URI = ""
	r.Protocol = proto.Version{}
	if r.Headers == nil {
		r.Headers = kv.New()
	}

	r.Headers.Clear()
	r.Body = nil
}
