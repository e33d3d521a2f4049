package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indigo-web/webparse/http/mime"
	"github.com/indigo-web/webparse/http/proto"
	"github.com/indigo-web/webparse/http/status"
	"github.com/indigo-web/webparse/kv"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, status.Status("OK"), fields.Status)
		require.Equal(t, proto.HTTP11, fields.Protocol)
		require.True(t, fields.Headers.Empty())
		require.Empty(t, fields.Body)
	})

	t.Run("code sets the reason", func(t *testing.T) {
		fields := NewResponse().Code(status.NotFound).Expose()
		require.Equal(t, status.Status("Not Found"), fields.Status)

		fields = NewResponse().Code(status.NotFound).Status("Nope").Expose()
		require.Equal(t, status.Status("Nope"), fields.Status)
	})

	t.Run("headers keep order and duplicates", func(t *testing.T) {
		fields := NewResponse().
			Header("Set-Cookie", "a=1", "b=2").
			Header("X-Foo", "bar").
			Header("set-cookie", "c=3").
			Expose()

		want := []kv.Pair{
			{Key: "Set-Cookie", Value: "a=1"},
			{Key: "Set-Cookie", Value: "b=2"},
			{Key: "X-Foo", Value: "bar"},
			{Key: "set-cookie", Value: "c=3"},
		}
		require.Equal(t, want, fields.Headers.Expose())
	})

	t.Run("content type overrides", func(t *testing.T) {
		fields := NewResponse().ContentType(mime.HTML).ContentType(mime.JSON).Expose()
		require.Equal(t, 1, fields.Headers.Len())
		require.Equal(t, mime.JSON, fields.Headers.Value("content-type"))
	})

	t.Run("json", func(t *testing.T) {
		model := struct {
			Hello string `json:"hello"`
		}{"world"}

		fields := NewResponse().JSON(&model).Expose()
		require.JSONEq(t, `{"hello":"world"}`, string(fields.Body))
		require.Equal(t, mime.JSON, fields.Headers.Value("Content-Type"))
	})

	t.Run("error", func(t *testing.T) {
		fields := NewResponse().Error(status.ErrURITooLong).Expose()
		require.Equal(t, status.RequestURITooLong, fields.Code)

		fields = NewResponse().Error(errors.New("boom")).Expose()
		require.Equal(t, status.InternalServerError, fields.Code)
		require.Equal(t, "boom", string(fields.Body))

		fields = NewResponse().Error(errors.New("teapot"), status.Teapot).Expose()
		require.Equal(t, status.Teapot, fields.Code)

		fields = NewResponse().Error(nil).Expose()
		require.Equal(t, status.OK, fields.Code)
	})

	t.Run("clear", func(t *testing.T) {
		resp := NewResponse().
			Code(status.BadRequest).
			Protocol(proto.HTTP10).
			Header("A", "b").
			String("body")

		fields := resp.Clear().Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, proto.HTTP11, fields.Protocol)
		require.True(t, fields.Headers.Empty())
		require.Empty(t, fields.Body)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, NewResponse().Header("Content-Length", "5").Validate())

	err := NewResponse().Header("Bad Name", "x").Validate()
	require.ErrorIs(t, err, ErrBadHeaderName)

	err = NewResponse().Header("X-Injected", "a\r\nSet-Cookie: evil=1").Validate()
	require.ErrorIs(t, err, ErrBadHeaderValue)

	err = NewResponse().Status("OK\r\nX: y").Validate()
	require.ErrorIs(t, err, ErrBadReason)
}
