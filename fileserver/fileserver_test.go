package fileserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/http"
	"github.com/indigo-web/webparse/http/method"
	"github.com/indigo-web/webparse/http/status"
)

func newFileServer(t *testing.T) (*FileServer, string) {
	root := t.TempDir()
	files := map[string]string{
		"index.html":        "<h1>index</h1>",
		"hello.txt":         "Hello, world!",
		"static/app.js":     "console.log(1)",
		"static/index.html": "<h1>static</h1>",
	}

	for name, content := range files {
		name = filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	}

	cfg := config.Default().Static
	cfg.Root = root

	return New(cfg), root
}

func newRequest(m, target string) *http.Request {
	request := http.NewRequest(config.Default(), nil)
	request.Method = m
	request.URI = target

	return request
}

func TestHandle(t *testing.T) {
	fs, _ := newFileServer(t)

	serve := func(m, target string) *http.Fields {
		return fs.Handle(newRequest(m, target)).Expose()
	}

	t.Run("file", func(t *testing.T) {
		resp := serve(method.GET, "/hello.txt")
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "Hello, world!", string(resp.Body))
		require.Equal(t, "text/plain;charset=utf8", resp.Headers.Value("content-type"))
		require.Equal(t, "13", resp.Headers.Value("Content-Length"))
	})

	t.Run("index", func(t *testing.T) {
		for _, target := range []string{"/", "/index.html", "/?query", "/static/.."} {
			resp := serve(method.GET, target)
			require.Equal(t, status.OK, resp.Code, target)
			require.Equal(t, "<h1>index</h1>", string(resp.Body), target)
		}

		resp := serve(method.GET, "/static/")
		require.Equal(t, "<h1>static</h1>", string(resp.Body))
	})

	t.Run("percent-encoded", func(t *testing.T) {
		resp := serve(method.GET, "/st%61tic/app.js")
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "console.log(1)", string(resp.Body))
	})

	t.Run("clamped at root", func(t *testing.T) {
		resp := serve(method.GET, "/../../../hello.txt")
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "Hello, world!", string(resp.Body))
	})

	t.Run("encoded separator", func(t *testing.T) {
		resp := serve(method.GET, "/static%2F..%2F..%2Fhello.txt")
		require.Equal(t, status.BadRequest, resp.Code)
	})

	t.Run("head", func(t *testing.T) {
		resp := serve(method.HEAD, "/hello.txt")
		require.Equal(t, status.OK, resp.Code)
		require.Empty(t, resp.Body)
		require.Equal(t, "13", resp.Headers.Value("Content-Length"))
	})

	t.Run("not found", func(t *testing.T) {
		resp := serve(method.GET, "/nothing.txt")
		require.Equal(t, status.NotFound, resp.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp := serve(method.POST, "/hello.txt")
		require.Equal(t, status.MethodNotAllowed, resp.Code)
		require.Equal(t, "GET, HEAD", resp.Headers.Value("Allow"))
		require.Empty(t, resp.Body)
	})

	t.Run("bad target", func(t *testing.T) {
		for _, target := range []string{"*", "hello.txt", "/hello.txt#a b", "//[zz]/"} {
			resp := serve(method.GET, target)
			require.Equal(t, status.BadRequest, resp.Code, target)
		}
	})
}

func TestLocate(t *testing.T) {
	fs, root := newFileServer(t)

	tcs := []struct {
		Path []string
		Want string
	}{
		{[]string{""}, root},
		{[]string{"", ""}, root},
		{[]string{"", "a", "b"}, filepath.Join(root, "a", "b")},
		{[]string{"", "a", "..", "b"}, filepath.Join(root, "b")},
		{[]string{"", "..", "..", "etc", "passwd"}, filepath.Join(root, "etc", "passwd")},
		{[]string{"", ".", "a", "."}, filepath.Join(root, "a")},
	}

	for _, tc := range tcs {
		name, err := fs.Locate(tc.Path)
		require.NoError(t, err, tc.Path)
		require.Equal(t, tc.Want, name, tc.Path)
	}

	_, err := fs.Locate([]string{"", "a/b"})
	require.ErrorIs(t, err, ErrBadSegment)
}
