package uri

import (
	"strings"

	"github.com/indigo-web/webparse/internal/hexconv"
)

// Encode percent-encodes every character except the unreserved ones.
func Encode(str string) string {
	return PercentEncode(str, Unreserved)
}

// PercentEncode replaces every byte not contained in allowed by a percent followed by two
// lowercase hex digits. Already escaped sequences are escaped again, so it's up to the caller
// to keep track of what was encoded.
func PercentEncode(str string, allowed CharacterSet) string {
	for i := 0; i < len(str); i++ {
		if !allowed.Contains(str[i]) {
			return percentEncode(str, i, allowed)
		}
	}

	return str
}

func percentEncode(str string, from int, allowed CharacterSet) string {
	buff := make([]byte, 0, len(str)+2*(len(str)-from))
	buff = append(buff, str[:from]...)

	for i := from; i < len(str); i++ {
		if c := str[i]; allowed.Contains(c) {
			buff = append(buff, c)
		} else {
			buff = hexconv.AppendLower(append(buff, '%'), c)
		}
	}

	return string(buff)
}

// PercentDecode translates percent-encoded sequences into bytes they represent. A percent
// which isn't followed by two hex digits results in ErrBadEscape.
func PercentDecode(str string) (string, error) {
	percent := strings.IndexByte(str, '%')
	if percent == -1 {
		return str, nil
	}

	var b strings.Builder
	b.Grow(len(str))

	for ; percent != -1; percent = strings.IndexByte(str, '%') {
		b.WriteString(str[:percent])
		if len(str)-percent < 3 {
			return "", ErrBadEscape
		}

		c, ok := hexconv.Decode(str[percent+1], str[percent+2])
		if !ok {
			return "", ErrBadEscape
		}

		b.WriteByte(c)
		str = str[percent+3:]
	}

	b.WriteString(str)

	return b.String(), nil
}
