package status

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringCode(t *testing.T) {
	for _, code := range KnownCodes {
		require.Equal(t, strconv.Itoa(int(code)), StringCode(code))
	}

	require.Equal(t, "1000", StringCode(1000))
}

func TestText(t *testing.T) {
	for _, code := range KnownCodes {
		require.NotEmpty(t, Text(code), code)
	}

	require.Equal(t, Status("OK"), Text(OK))
	require.Equal(t, Status("Internal Server Error"), Text(InternalServerError))
	require.Empty(t, Text(299))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, RequestURITooLong, CodeOf(ErrURITooLong))
	require.Equal(t, BadRequest, CodeOf(ErrBadRequest))
	require.Equal(t, InternalServerError, CodeOf(errors.New("boom")))
}

func Benchmark(b *testing.B) {
	code := KnownCodes[rand.IntN(len(KnownCodes))]
	b.ResetTimer()

	for range b.N {
		_ = StringCode(code)
	}
}
