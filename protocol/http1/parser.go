// Package http1 parses HTTP/1.1 requests presented as a single buffer and serializes
// responses back.
package http1

import (
	"bytes"
	"math"

	"github.com/indigo-web/utils/uf"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http"
	"github.com/indigo-web/webparse/http/proto"
	"github.com/indigo-web/webparse/http/status"
	"github.com/indigo-web/webparse/internal/strutil"
	"github.com/indigo-web/webparse/uri"
)

const (
	crlf       = "\r\n"
	httpScheme = "HTTP/"
)

// Parser is a non-backtracking parser of a complete request: the request line, the headers
// and the body, which is everything after the blank line. It's not framing-aware, so
// neither Content-Length nor Transfer-Encoding are taken into account.
//
// Parser holds no state between calls, however each of them writes into the passed request
// object, which therefore mustn't be shared between concurrent calls.
type Parser struct {
	cfg *config.Config
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{
		cfg: cfg,
	}
}

// Parse parses the data into the request, which is reset beforehand. In case of an error,
// the request is left reset. The returned errors are status.HTTPError, so they can be
// answered with the corresponding code.
//
// The body isn't copied, therefore it refers to the passed data.
func (p *Parser) Parse(request *http.Request, data []byte) error {
	request.Reset()

	if err := p.parse(request, data); err != nil {
		request.Reset()
		return err
	}

	return nil
}

func (p *Parser) parse(request *http.Request, data []byte) error {
	var (
		headersNumber int
		major, minor  int
		headersCfg    = p.cfg.Headers
	)

	// method
	for i := 0; i < len(data); i++ {
		if isAlnum(data[i]) {
			continue
		}

		if i == 0 || data[i] != ' ' {
			return status.ErrBadRequest
		}

		request.Method = string(data[:i])
		data = data[i+1:]
		goto target
	}

	return status.ErrBadRequest

target:
	{
		sp := bytes.IndexByte(data, ' ')
		switch {
		case sp > p.cfg.URI.RequestLineSize.Maximal:
			return status.ErrURITooLong
		case sp == -1:
			if len(data) > p.cfg.URI.RequestLineSize.Maximal {
				return status.ErrURITooLong
			}

			return status.ErrBadRequest
		case sp == 0:
			// double space
			return status.ErrBadRequest
		}

		for _, c := range data[:sp] {
			if isCTL(c) {
				return status.ErrBadRequest
			}
		}

		request.URI = string(data[:sp])
		data = data[sp+1:]
	}

	// protocol
	if !bytes.HasPrefix(data, uf.S2B(httpScheme)) {
		return status.ErrHTTPVersionNotSupported
	}

	data = data[len(httpScheme):]
	{
		var n int
		var ok bool

		if major, n, ok = parseDecimal(data); !ok || n == 0 {
			return status.ErrHTTPVersionNotSupported
		}

		data = data[n:]
		if len(data) == 0 || data[0] != '.' {
			return status.ErrHTTPVersionNotSupported
		}

		if minor, n, ok = parseDecimal(data[1:]); !ok {
			return status.ErrHTTPVersionNotSupported
		}

		data = data[1+n:]
	}

	if !bytes.HasPrefix(data, uf.S2B(crlf)) {
		return status.ErrBadRequest
	}

	request.Protocol = proto.Version{Major: major, Minor: minor}
	data = data[len(crlf):]

headerKey:
	switch {
	case len(data) == 0:
		// the header section must be terminated by a blank line
		return status.ErrBadRequest
	case data[0] == '\r':
		if len(data) < 2 || data[1] != '\n' {
			return status.ErrBadRequest
		}

		data = data[len(crlf):]
		goto body
	}

	{
		lineEnd := bytes.Index(data, uf.S2B(crlf))
		if lineEnd == -1 {
			return status.ErrBadRequest
		}

		line := data[:lineEnd]
		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return status.ErrBadRequest
		}

		for _, c := range line[:colon] {
			if uri.HeaderSeparators.Contains(c) || isCTL(c) {
				return status.ErrBadRequest
			}
		}

		for _, c := range line[colon+1:] {
			if isCTL(c) && c != '\t' {
				return status.ErrBadRequest
			}
		}

		if headersNumber++; headersNumber > headersCfg.Number.Maximal {
			return status.ErrTooManyHeaders
		}

		key := strutil.ToLowerASCII(string(line[:colon]))
		value := strutil.StripWS(string(line[colon+1:]))
		request.Headers.Set(key, value)

		data = data[lineEnd+len(crlf):]
		goto headerKey
	}

body:
	if len(data) > p.cfg.Body.MaxSize {
		return status.ErrBodyTooLarge
	}

	if len(data) > 0 {
		request.Body = data
	}

	return nil
}

// parseDecimal reads the leading run of decimal digits. It fails only if the value overflows.
func parseDecimal(data []byte) (value, n int, ok bool) {
	for ; n < len(data) && isDigit(data[n]); n++ {
		digit := int(data[n] - '0')
		if value > (math.MaxInt-digit)/10 {
			return 0, 0, false
		}

		value = value*10 + digit
	}

	return value, n, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isCTL(c byte) bool {
	return c < 0x20 || c == 0x7f
}
