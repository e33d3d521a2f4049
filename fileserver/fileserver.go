// Package fileserver serves files from a directory, resolving the request path the same way
// a URI reference is resolved against the root, so it's impossible to escape the directory.
package fileserver

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http"
	"github.com/indigo-web/webparse/http/method"
	"github.com/indigo-web/webparse/http/mime"
	"github.com/indigo-web/webparse/http/status"
	"github.com/indigo-web/webparse/uri"
)

var ErrBadSegment = errors.New("path segment contains a separator")

type FileServer struct {
	root, index string
}

func New(cfg config.Static) *FileServer {
	return &FileServer{
		root:  cfg.Root,
		index: cfg.Index,
	}
}

// Handle serves GET and HEAD requests. HEAD is answered with the same headers, but without
// the body.
func (f *FileServer) Handle(request *http.Request) *http.Response {
	switch request.Method {
	case method.GET, method.HEAD:
	default:
		return http.Code(request, status.MethodNotAllowed).
			Header("Allow", method.GET+", "+method.HEAD)
	}

	target, err := request.Target()
	if err != nil || !target.IsAbsolutePath() {
		return http.Error(request, status.ErrBadRequest)
	}

	name, err := f.Locate(target.Path())
	if err != nil {
		return http.Error(request, status.ErrBadRequest)
	}

	name, content, err := f.read(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.Error(request, status.ErrNotFound)
	case err != nil:
		log.Printf("fileserver: %s", err)
		return http.Error(request, status.ErrInternalServerError)
	}

	response := request.Respond().
		ContentType(mime.ContentType(mime.FromFilename(name))).
		Header("Content-Length", strconv.Itoa(len(content)))

	if request.Method == method.HEAD {
		return response
	}

	return response.Bytes(content)
}

// Locate maps an absolute path onto the file system. Dot segments are resolved, and the
// double dots are clamped at the root.
func (f *FileServer) Locate(path []string) (string, error) {
	var relative []string
	if len(path) > 0 {
		relative = path[1:]
	}

	segments := uri.New().
		SetPath([]string{""}).
		ResolvePath(relative).
		Path()[1:]

	for _, segment := range segments {
		// decoded %2F and friends must not introduce new segments
		if strings.ContainsAny(segment, "/\\\x00") {
			return "", errors.Wrapf(ErrBadSegment, "%q", segment)
		}
	}

	return filepath.Join(f.root, filepath.FromSlash(strings.Join(segments, "/"))), nil
}

// read returns the contents of the file. Directories are substituted by their index file,
// whose name is returned then.
func (f *FileServer) read(name string) (string, []byte, error) {
	info, err := os.Stat(name)
	if err != nil {
		return "", nil, errors.Wrap(err, "stat")
	}

	if info.IsDir() {
		name = filepath.Join(name, f.index)
	}

	content, err := os.ReadFile(name)
	if err != nil {
		return "", nil, errors.Wrap(err, "read")
	}

	return name, content, nil
}
