// Package server drives a single connection: it reads one request, parses it, passes it to
// the handler and writes the response back.
package server

import (
	"bytes"
	"io"
	"log"
	"net"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http"
	"github.com/indigo-web/webparse/http/status"
	"github.com/indigo-web/webparse/protocol/http1"
	"github.com/indigo-web/webparse/transport"
)

var headEnd = []byte("\r\n\r\n")

type Server struct {
	cfg     *config.Config
	handler http.Handler
	parser  *http1.Parser
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg:     cfg,
		handler: handler,
		parser:  http1.NewParser(cfg),
	}
}

// HandleConn serves exactly one request. Closing the connection is left to the caller.
func (s *Server) HandleConn(conn net.Conn) {
	id := uuid.New()
	client := transport.NewClient(conn, s.cfg.NET.ReadTimeout, make([]byte, s.cfg.NET.ReadBufferSize))
	request := http.NewRequest(s.cfg, client.Remote())

	response, err := s.serve(client, request)
	if err != nil {
		log.Printf("%s %s: %s", id, client.Remote(), err)
		if response == nil {
			return
		}
	}

	if err = response.Validate(); err != nil {
		log.Printf("%s %s: handler returned malformed response: %s", id, client.Remote(), err)
		response = request.Respond().Error(status.ErrInternalServerError)
	}

	serializer := http1.NewSerializer(s.cfg)
	if _, err = client.Write(serializer.Serialize(response)); err != nil {
		log.Printf("%s %s: %s", id, client.Remote(), errors.Wrap(err, "write response"))
		return
	}

	log.Printf(
		"%s %s %s %q -> %d", id, client.Remote(), request.Method, request.URI,
		response.Expose().Code,
	)
}

// serve returns the response to be written. It's nil, when there's nobody to answer to.
func (s *Server) serve(client transport.Client, request *http.Request) (response *http.Response, err error) {
	data, err := s.readRequest(client)
	if err != nil {
		if isHTTPError(err) {
			return request.Respond().Error(err), err
		}

		return nil, err
	}

	if err = s.parser.Parse(request, data); err != nil {
		return request.Respond().Error(err), errors.Wrap(err, "parse request")
	}

	defer func() {
		if r := recover(); r != nil {
			response = request.Respond().Error(status.ErrInternalServerError)
			err = errors.Errorf("handler panicked: %v", r)
		}
	}()

	response = s.handler(request)
	if response == nil {
		response = request.Respond()
	}

	return response, nil
}

// readRequest accumulates data until the blank line terminating the headers section is met.
// Whatever arrived along with the last chunk is considered the body, as no framing headers
// are respected.
func (s *Server) readRequest(client transport.Client) ([]byte, error) {
	buff := make([]byte, 0, s.cfg.Headers.Space.Default)

	for {
		data, err := client.Read()
		// the terminator may be split between two reads
		offset := max(0, len(buff)-len(headEnd)+1)
		buff = append(buff, data...)

		if bytes.Contains(buff[offset:], headEnd) {
			return buff, nil
		}

		if len(buff) > s.cfg.Headers.Space.Maximal {
			return nil, status.ErrHeaderFieldsTooLarge
		}

		if err != nil {
			if len(buff) > 0 {
				// let the parser tell what exactly is wrong with the request
				return buff, nil
			}

			if errors.Is(err, io.EOF) {
				return nil, errors.New("connection closed without a request")
			}

			return nil, errors.Wrap(err, "read request")
		}
	}
}

func isHTTPError(err error) bool {
	var httpErr status.HTTPError
	return errors.As(err, &httpErr)
}
