// Package proto holds the HTTP version, as presented in the request and status lines.
package proto

import (
	"cmp"
	"strconv"
)

// Version is a major and minor version number pair. Both are arbitrary non-negative
// decimals, so e.g. HTTP/91.2 is syntactically a fine version.
type Version struct {
	Major, Minor int
}

var (
	HTTP10 = Version{Major: 1, Minor: 0}
	HTTP11 = Version{Major: 1, Minor: 1}
)

// String renders the version as it appears on the wire, e.g. HTTP/1.1
func (v Version) String() string {
	return string(v.AppendTo(make([]byte, 0, len("HTTP/x.x"))))
}

// AppendTo appends the wire representation of the version to the buffer.
func (v Version) AppendTo(buff []byte) []byte {
	buff = append(buff, "HTTP/"...)
	buff = strconv.AppendInt(buff, int64(v.Major), 10)
	buff = append(buff, '.')
	return strconv.AppendInt(buff, int64(v.Minor), 10)
}

// Compare returns -1, 0 or +1, depending on whether v is lower, equal or higher than other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return cmp.Compare(v.Major, other.Major)
	}

	return cmp.Compare(v.Minor, other.Minor)
}
