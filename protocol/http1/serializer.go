package http1

import (
	"slices"
	"strings"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http"
	"github.com/indigo-web/webparse/http/status"
	"github.com/indigo-web/webparse/internal/strutil"
	"github.com/indigo-web/webparse/kv"
)

// Serialize renders the response as is: the status line, the headers in the order they were
// added (duplicates included) and the body.
func Serialize(response *http.Response) []byte {
	s := serializer{}
	s.write(response)

	return s.buff
}

// Serializer renders responses into a reusable buffer. Unlike Serialize, it also appends
// the default headers from the config, unless a response overrides them.
type Serializer struct {
	cfg *config.Config
	s   serializer
}

func NewSerializer(cfg *config.Config) *Serializer {
	return &Serializer{
		cfg: cfg,
		s: serializer{
			buff:           make([]byte, 0, cfg.NET.WriteBufferSize.Default),
			defaultHeaders: preprocessDefaultHeaders(cfg.Headers.Default),
		},
	}
}

// Serialize returns the rendered response. The returned slice is valid only until the next
// call.
func (s *Serializer) Serialize(response *http.Response) []byte {
	if cap(s.s.buff) > s.cfg.NET.WriteBufferSize.Maximal {
		// don't hold too much memory after a single huge response
		s.s.buff = make([]byte, 0, s.cfg.NET.WriteBufferSize.Default)
	}

	s.s.buff = s.s.buff[:0]
	s.s.write(response)
	s.s.defaultHeaders.Reset()

	return s.s.buff
}

type serializer struct {
	buff           []byte
	defaultHeaders defaultHeaders
}

func (s *serializer) write(response *http.Response) {
	fields := response.Expose()
	s.growToContain(len(fields.Body) + 128)
	s.buff = fields.Protocol.AppendTo(s.buff)
	s.sp()
	s.appendStatus(fields)
	s.appendHeaders(fields)
	s.crlf()
	s.buff = append(s.buff, fields.Body...)
}

func (s *serializer) growToContain(n int) {
	s.buff = slices.Grow(s.buff, n)
}

func (s *serializer) appendStatus(fields *http.Fields) {
	s.buff = append(s.buff, status.StringCode(fields.Code)...)
	s.sp()
	s.buff = append(s.buff, fields.Status...)
	s.crlf()
}

func (s *serializer) appendHeaders(fields *http.Fields) {
	for _, header := range fields.Headers.Expose() {
		s.defaultHeaders.Exclude(header.Key)
		s.appendHeader(header)
	}

	for _, header := range s.defaultHeaders {
		if header.Excluded {
			continue
		}

		s.buff = append(s.buff, header.Full...)
	}
}

// appendHeader writes a complete header field line.
func (s *serializer) appendHeader(header kv.Pair) {
	s.buff = append(s.buff, header.Key...)
	s.colonsp()
	s.buff = append(s.buff, header.Value...)
	s.crlf()
}

func (s *serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *serializer) colonsp() {
	s.buff = append(s.buff, ':', ' ')
}

func (s *serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

func preprocessDefaultHeaders(headers map[string]string) defaultHeaders {
	processed := make(defaultHeaders, 0, len(headers))

	for key, value := range headers {
		serialized := key + ": " + value + crlf
		processed = append(processed, defaultHeader{
			// we let the GC release all the values of the map, as here we're using only
			// the brand-new line without keeping the original string
			Key:  serialized[:len(key)],
			Full: serialized,
		})
	}

	// maps are unordered, however the output must be deterministic
	slices.SortFunc(processed, func(a, b defaultHeader) int {
		return strings.Compare(a.Key, b.Key)
	})

	return processed
}

type defaultHeader struct {
	Excluded bool
	Key      string
	Full     string
}

type defaultHeaders []defaultHeader

func (d defaultHeaders) Exclude(key string) {
	for i, header := range d {
		if strutil.CmpFold(header.Key, key) {
			d[i].Excluded = true
			return
		}
	}
}

func (d defaultHeaders) Reset() {
	for i := range d {
		d[i].Excluded = false
	}
}
