package uri

import (
	"slices"
	"strconv"
	"strings"
)

// String builds the URI back. Path segments are percent-encoded with PathCharacters,
// query and fragment with QueryOrFragmentCharacters. The user info and the host are
// emitted as is.
//
// The double slash always follows the scheme, even if the host is empty, so a relative
// path is rendered as an absolute one with an empty authority, e.g. ///a/b.
func (u *URI) String() string {
	var b strings.Builder

	if len(u.scheme) > 0 {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}

	b.WriteString("//")

	if len(u.userInfo) > 0 {
		b.WriteString(u.userInfo)
		b.WriteByte('@')
	}

	if strings.IndexByte(u.host, ':') != -1 {
		b.WriteByte('[')
		b.WriteString(u.host)
		b.WriteByte(']')
	} else {
		b.WriteString(u.host)
	}

	if port, ok := u.port.Get(); ok {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(port), 10))
	}

	u.writePath(&b)

	if query, ok := u.query.Get(); ok {
		b.WriteByte('?')
		b.WriteString(PercentEncode(query, QueryOrFragmentCharacters))
	}

	if fragment, ok := u.fragment.Get(); ok {
		b.WriteByte('#')
		b.WriteString(PercentEncode(fragment, QueryOrFragmentCharacters))
	}

	return b.String()
}

func (u *URI) writePath(b *strings.Builder) {
	switch {
	case len(u.path) == 0:
	case u.IsAbsolutePath():
		if len(u.path) == 1 {
			b.WriteByte('/')
			return
		}

		for _, segment := range u.path[1:] {
			b.WriteByte('/')
			b.WriteString(PercentEncode(segment, PathCharacters))
		}
	default:
		// a relative path can't immediately follow the authority, as it would be
		// glued to the host (or the port.)
		b.WriteByte('/')

		for i, segment := range u.path {
			if i > 0 {
				b.WriteByte('/')
			}

			b.WriteString(PercentEncode(segment, PathCharacters))
		}
	}
}

// ResolvePath merges the path with another one. An absolute path simply replaces the
// current one. Otherwise the segments are appended one by one, where a single dot is
// ignored and a double dot removes the last segment. The root is never removed, so it's
// impossible to escape it.
func (u *URI) ResolvePath(other []string) *URI {
	if len(other) > 0 && len(other[0]) == 0 {
		u.path = slices.Clone(other)
		return u
	}

	path := slices.Clone(u.path)
	if len(path) > 1 && len(path[len(path)-1]) == 0 {
		path = path[:len(path)-1]
	}

	for _, segment := range other {
		switch segment {
		case ".":
		case "..":
			if len(path) == 0 || (len(path) == 1 && len(path[0]) == 0) {
				continue
			}

			path = path[:len(path)-1]
		default:
			path = append(path, segment)
		}
	}

	u.path = path

	return u
}
