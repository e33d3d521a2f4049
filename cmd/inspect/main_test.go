package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func inspect(t *testing.T, stdin string, args ...string) (string, error) {
	out := new(bytes.Buffer)
	err := run(args, strings.NewReader(stdin), out)
	return out.String(), err
}

func TestURI(t *testing.T) {
	out, err := inspect(t, "", "uri", "http://user@b%C3%BCcher.example:8080/a/b?q#f")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"scheme": "http",
		"userinfo": "user",
		"host": "b%C3%BCcher.example",
		"ascii_host": "xn--bcher-kva.example",
		"port": 8080,
		"path": ["", "a", "b"],
		"query": "q",
		"fragment": "f",
		"string": "http://user@b%C3%BCcher.example:8080/a/b?q#f"
	}`, out)
}

func TestURIRelative(t *testing.T) {
	out, err := inspect(t, "", "uri", "foo/bar")
	require.NoError(t, err)
	require.JSONEq(t, `{"path": ["foo", "bar"], "string": "///foo/bar"}`, out)
}

func TestURIMalformed(t *testing.T) {
	_, err := inspect(t, "", "uri", "http://[::1/")
	require.Error(t, err)
}

func TestRequest(t *testing.T) {
	request := "POST /hello?world HTTP/1.1\r\nHost: localhost\r\nX-Id: 1\r\n\r\nbody"
	want := `{
		"method": "POST",
		"target": "/hello?world",
		"uri": {"path": ["", "hello"], "query": "world", "string": "///hello?world"},
		"protocol": "HTTP/1.1",
		"headers": [["host", "localhost"], ["x-id", "1"]],
		"body": "body"
	}`

	t.Run("stdin", func(t *testing.T) {
		out, err := inspect(t, request, "request")
		require.NoError(t, err)
		require.JSONEq(t, want, out)
	})

	t.Run("file", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "request.txt")
		require.NoError(t, os.WriteFile(name, []byte(request), 0o644))

		out, err := inspect(t, "", "request", name)
		require.NoError(t, err)
		require.JSONEq(t, want, out)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := inspect(t, "GET / HTTP/1.1\r\n", "request")
		require.Error(t, err)
	})
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"uri"}, {"uri", "a", "b"}, {"nothing"}} {
		_, err := inspect(t, "", args...)
		require.Error(t, err, args)
	}
}
