// Command inspect parses a URI or an HTTP request and prints the result as JSON.
//
//	inspect uri <uri>
//	inspect request [file]
//
// The request is read from stdin, if no file is given.
package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http"
	"github.com/indigo-web/webparse/protocol/http1"
	"github.com/indigo-web/webparse/uri"
)

const usage = "usage: inspect uri <uri> | inspect request [file]"

type URI struct {
	Scheme    string   `json:"scheme,omitempty"`
	UserInfo  string   `json:"userinfo,omitempty"`
	Host      string   `json:"host,omitempty"`
	ASCIIHost string   `json:"ascii_host,omitempty"`
	Port      *uint16  `json:"port,omitempty"`
	Path      []string `json:"path"`
	Query     *string  `json:"query,omitempty"`
	Fragment  *string  `json:"fragment,omitempty"`
	String    string   `json:"string"`
}

type Request struct {
	Method   string      `json:"method"`
	Target   string      `json:"target"`
	URI      *URI        `json:"uri,omitempty"`
	Protocol string      `json:"protocol"`
	Headers  [][2]string `json:"headers"`
	Body     string      `json:"body,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "inspect:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	var model any

	switch args[0] {
	case "uri":
		if len(args) != 2 {
			return errors.New(usage)
		}

		u, err := inspectURI(args[1])
		if err != nil {
			return err
		}

		model = u
	case "request":
		data, err := readInput(args[1:], stdin)
		if err != nil {
			return err
		}

		r, err := inspectRequest(data)
		if err != nil {
			return err
		}

		model = r
	default:
		return errors.New(usage)
	}

	encoder := json.ConfigCompatibleWithStandardLibrary.NewEncoder(stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(model)
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "read stdin")
	case 1:
		data, err := os.ReadFile(args[0])
		return data, errors.Wrapf(err, "read %s", args[0])
	default:
		return nil, errors.New(usage)
	}
}

func inspectURI(str string) (*URI, error) {
	parsed, err := uri.Parse(str)
	if err != nil {
		return nil, errors.Wrapf(err, "uri %q", str)
	}

	return describe(parsed)
}

func describe(parsed *uri.URI) (*URI, error) {
	asciiHost, err := parsed.ASCIIHost()
	if err != nil {
		return nil, errors.Wrap(err, "host")
	}

	u := &URI{
		Scheme:   parsed.Scheme(),
		UserInfo: parsed.UserInfo(),
		Host:     parsed.Host(),
		Path:     parsed.Path(),
		String:   parsed.String(),
	}

	if asciiHost != u.Host {
		u.ASCIIHost = asciiHost
	}

	if port, ok := parsed.Port(); ok {
		u.Port = &port
	}

	if query, ok := parsed.Query(); ok {
		u.Query = &query
	}

	if fragment, ok := parsed.Fragment(); ok {
		u.Fragment = &fragment
	}

	return u, nil
}

func inspectRequest(data []byte) (*Request, error) {
	cfg := config.Default()
	request := http.NewRequest(cfg, nil)
	if err := http1.NewParser(cfg).Parse(request, data); err != nil {
		return nil, errors.Wrap(err, "request")
	}

	r := &Request{
		Method:   request.Method,
		Target:   request.URI,
		Protocol: request.Protocol.String(),
		Headers:  make([][2]string, 0, request.Headers.Len()),
		Body:     string(request.Body),
	}

	for key, value := range request.Headers.Pairs() {
		r.Headers = append(r.Headers, [2]string{key, value})
	}

	// the target isn't necessarily a valid URI, which isn't a reason to fail the request
	if target, err := request.Target(); err == nil {
		r.URI, _ = describe(target)
	}

	return r, nil
}
