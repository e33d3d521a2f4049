package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"

	"github.com/indigo-web/webparse/http/mime"
	"github.com/indigo-web/webparse/http/proto"
	"github.com/indigo-web/webparse/http/status"
	"github.com/indigo-web/webparse/kv"
)

const (
	// why 7? I don't know. There's no theory behind this number nor researches.
	// It can be adjusted to 10 as well, but why you would ever need to do this?
	preallocRespHeaders = 7
)

var (
	ErrBadHeaderName  = errors.New("invalid header field name")
	ErrBadHeaderValue = errors.New("invalid header field value")
	ErrBadReason      = errors.New("reason phrase must not contain CR or LF")
)

// Fields are the values filled by the builder.
type Fields struct {
	Code     status.Code
	Status   status.Status
	Protocol proto.Version
	// Headers are kept in the insertion order, duplicates included. The keys are written
	// as is, without any case normalization.
	Headers *kv.Storage
	Body    []byte
}

type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// protocol set to HTTP/1.1 and pre-allocated space for response headers.
// NOTE: it's recommended to use Request.Respond() method inside of handlers, if there's no
// clear reason otherwise
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code:     status.OK,
			Status:   status.Text(status.OK),
			Protocol: proto.HTTP11,
			Headers:  kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Code sets a Response code and a corresponding standard reason phrase. In case of unknown
// code, the reason phrase is left empty, so Status should be called explicitly.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	r.fields.Status = status.Text(code)
	return r
}

// Status sets a custom reason phrase. Must be called after Code, as the latter overrides it.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Protocol sets the version rendered in the status line.
func (r *Response) Protocol(version proto.Version) *Response {
	r.fields.Protocol = version
	return r
}

// ContentType sets the Content-Type header value, overriding the previous one.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.fields.Headers.Set("Content-Type", value)
	return r
}

// Header adds header values to a key. In case it already exists the value will
// be appended, so the header is rendered multiple times.
func (r *Response) Header(key string, values ...string) *Response {
	for _, value := range values {
		r.fields.Headers.Add(key, value)
	}

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON receives a model (must be a pointer to the structure) and returns a new Response
// object and an error
func (r *Response) TryJSON(model any) (*Response, error) {
	// the previous body may refer to memory we don't own, e.g. a string set via String
	r.fields.Body = nil
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// If an instance of status.HTTPError is passed, error code will be automatically set. Custom
// codes can be passed, however only first will be used. By default, the error is
// status.ErrInternalServerError
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		return r.
			Code(httpErr.Code).
			String(httpErr.Message)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		// peek the first, ignore the rest
		c = code[0]
	}

	return r.
		Code(c).
		String(err.Error())
}

// Validate makes sure the response can't break the message framing: header names must be
// tokens, header values and the reason phrase must not contain line breaks.
func (r *Response) Validate() error {
	for _, c := range []byte(r.fields.Status) {
		if c == '\r' || c == '\n' {
			return ErrBadReason
		}
	}

	for key, value := range r.fields.Headers.Pairs() {
		if !httpguts.ValidHeaderFieldName(key) {
			return errors.Wrapf(ErrBadHeaderName, "%q", key)
		}

		if !httpguts.ValidHeaderFieldValue(value) {
			return errors.Wrapf(ErrBadHeaderValue, "%s: %q", key, value)
		}
	}

	return nil
}

// Expose returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Expose() *Fields {
	return &r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	r.fields.Code = status.OK
	r.fields.Status = status.Text(status.OK)
	r.fields.Protocol = proto.HTTP11
	r.fields.Headers.Clear()
	r.fields.Body = nil
	return r
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// String is a predicate to request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error, code ...status.Code) *Response {
	return request.Respond().Error(err, code...)
}
