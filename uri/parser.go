package uri

import (
	"strings"

	"github.com/indigo-web/webparse/internal/hexconv"
	"github.com/indigo-web/webparse/internal/optional"
)

const maxPortDigits = 5

var pathRunCharacters = Union(PathCharacters, NewCharacterSet("/"))

// Parse parses the string into the URI, overriding all the previous values. Relative
// references are accepted as well. In case of an error, the URI is left empty.
//
// The components are consumed strictly left-to-right: scheme, authority (user info and host),
// port, path, query and fragment. Once a component is consumed, it's never reconsidered.
func (u *URI) Parse(str string) error {
	u.Clear()

	if len(str) == 0 {
		return ErrEmpty
	}

	if err := u.parse(str); err != nil {
		u.Clear()
		return err
	}

	return nil
}

func (u *URI) parse(str string) (err error) {
	var offset int

	u.scheme, offset = scanScheme(str)
	if len(u.scheme) == 0 && strings.Contains(str, "://") {
		// looks like there was an attempt to specify a scheme, which doesn't comply
		// with the grammar.
		return ErrBadScheme
	}

	offset = u.parseAuthority(str, offset)

	if len(u.host) == 0 {
		if offset, err = u.parseIPv6Host(str, offset); err != nil {
			return err
		}
	}

	if offset, err = u.parsePort(str, offset); err != nil {
		return err
	}

	if offset, err = u.parsePath(str, offset); err != nil {
		return err
	}

	if offset < len(str) && str[offset] == '?' {
		var query string
		if query, offset, err = scanDecoded(str, offset+1, QueryOrFragmentCharacters); err != nil {
			return err
		}

		u.query = optional.Some(query)
	}

	if offset < len(str) && str[offset] == '#' {
		var fragment string
		if fragment, offset, err = scanDecoded(str, offset+1, QueryOrFragmentCharacters); err != nil {
			return err
		}

		u.fragment = optional.Some(fragment)

		// the fragment is the last component, therefore it must span till the end.
		if offset < len(str) {
			return ErrTrailingData
		}
	}

	return nil
}

// scanScheme consumes ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":". The returned offset
// points after the colon, or is 0 if there's no scheme.
func scanScheme(str string) (scheme string, offset int) {
	if len(str) == 0 || !alpha.Contains(str[0]) {
		return "", 0
	}

	for i := 1; i < len(str); i++ {
		switch c := str[i]; {
		case c == ':':
			return str[:i], i + 1
		case !schemeCharacters.Contains(c):
			return "", 0
		}
	}

	return "", 0
}

// parseAuthority consumes [ ":" ] "//" [ userinfo "@" ] host. Nothing is consumed if there's
// no double slash.
func (u *URI) parseAuthority(str string, offset int) int {
	pos := offset
	if pos < len(str) && str[pos] == ':' {
		pos++
	}

	if !strings.HasPrefix(str[pos:], "//") {
		return offset
	}

	pos += len("//")
	if end := scanRun(str, pos, UserInfoCharacters); end < len(str) && str[end] == '@' {
		u.userInfo = str[pos:end]
		pos = end + 1
	}

	end := scanRun(str, pos, PathCharacters)
	u.host = str[pos:end]

	return end
}

// parseIPv6Host consumes a bracketed IPv6 literal, storing it without brackets. Brackets
// anywhere else are considered a malformed host.
func (u *URI) parseIPv6Host(str string, offset int) (int, error) {
	rest := str[offset:]
	if len(rest) == 0 || rest[0] != '[' {
		if opening := strings.IndexByte(rest, '['); opening != -1 &&
			strings.IndexByte(rest[opening:], ']') != -1 {
			return 0, ErrBadHost
		}

		return offset, nil
	}

	closing := strings.IndexByte(rest, ']')
	if closing == -1 {
		return 0, ErrBadHost
	}

	literal := rest[1:closing]
	if !IsIPv6(literal) {
		return 0, ErrBadHost
	}

	u.host = literal

	return offset + closing + 1, nil
}

// parsePort consumes ":" *5DIGIT. The port is considered presented only if there is at least
// a single digit. Overflowing 65535 fails the whole parsing.
func (u *URI) parsePort(str string, offset int) (int, error) {
	if offset >= len(str) || str[offset] != ':' {
		return offset, nil
	}

	var (
		port   uint32
		digits int
		pos    = offset + 1
	)

	for ; pos < len(str) && digits < maxPortDigits && isDigit(str[pos]); pos, digits = pos+1, digits+1 {
		port = port*10 + uint32(str[pos]-'0')
		if port > 0xFFFF {
			return 0, ErrPortOutOfRange
		}
	}

	if digits > 0 {
		u.port = optional.Some(uint16(port))
	}

	return pos, nil
}

// parsePath consumes slash-delimited segments, decoding each of them separately, so an
// escaped slash never splits a segment.
func (u *URI) parsePath(str string, offset int) (int, error) {
	end := scanRun(str, offset, pathRunCharacters)
	raw := str[offset:end]
	if len(raw) == 0 {
		return end, nil
	}

	segments := strings.Split(raw, "/")
	trailingSlash := raw[len(raw)-1] == '/'
	if trailingSlash {
		segments = segments[:len(segments)-1]
	}

	for i, segment := range segments {
		decoded, err := PercentDecode(segment)
		if err != nil {
			return 0, err
		}

		segments[i] = decoded
	}

	if trailingSlash && len(segments[len(segments)-1]) > 0 {
		segments = append(segments, "")
	}

	u.path = segments

	return end, nil
}

// scanDecoded consumes a run of allowed characters and percent-encoded sequences, returning
// it decoded.
func scanDecoded(str string, offset int, allowed CharacterSet) (value string, end int, err error) {
	end = scanRun(str, offset, allowed)
	value, err = PercentDecode(str[offset:end])

	return value, end, err
}

// scanRun returns the offset of the first character, which is neither in the set nor
// a beginning of a valid percent-encoded sequence.
func scanRun(str string, offset int, allowed CharacterSet) int {
	for offset < len(str) {
		switch c := str[offset]; {
		case allowed.Contains(c):
			offset++
		case c == '%' && offset+2 < len(str) && hexconv.Is(str[offset+1]) && hexconv.Is(str[offset+2]):
			offset += 3
		default:
			return offset
		}
	}

	return offset
}
