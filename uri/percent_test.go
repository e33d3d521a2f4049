package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentEncode(t *testing.T) {
	require.Equal(t, "hello", Encode("hello"))
	require.Equal(t, "hello%20world", Encode("hello world"))
	require.Equal(t, "%2fa%2fb", Encode("/a/b"))
	require.Equal(t, "a!b%23", PercentEncode("a!b#", PathCharacters))
	require.Equal(t, "%00%ff", Encode("\x00\xff"))
	require.Empty(t, Encode(""))
}

func TestPercentDecode(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		decoded, err := PercentDecode("hello")
		require.NoError(t, err)
		require.Equal(t, "hello", decoded)
	})

	t.Run("mixed case", func(t *testing.T) {
		decoded, err := PercentDecode("%2F%2fa%41")
		require.NoError(t, err)
		require.Equal(t, "//aA", decoded)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, str := range []string{"%", "%2", "a%", "%zz", "%g1", "abc%1x"} {
			_, err := PercentDecode(str)
			require.ErrorIs(t, err, ErrBadEscape, str)
		}
	})
}

func TestPercentRoundTrip(t *testing.T) {
	var all []byte
	for c := range 256 {
		all = append(all, byte(c))
	}

	for _, set := range []CharacterSet{Unreserved, PathCharacters, QueryOrFragmentCharacters, {}} {
		encoded := PercentEncode(string(all), set)
		decoded, err := PercentDecode(encoded)
		require.NoError(t, err)
		require.Equal(t, string(all), decoded)
	}
}
