package uri

import (
	"strings"

	"golang.org/x/net/idna"
)

// ASCIIHost returns the host converted into its ASCII-compatible form, so internationalized
// names become punycode, e.g. bücher.example becomes xn--bcher-kva.example. Percent-encoded
// hosts are decoded first. IP literals are returned unchanged.
func (u *URI) ASCIIHost() (string, error) {
	if len(u.host) == 0 || IsIPv4(u.host) || (strings.IndexByte(u.host, ':') != -1 && IsIPv6(u.host)) {
		return u.host, nil
	}

	host, err := PercentDecode(u.host)
	if err != nil {
		return "", err
	}

	return idna.ToASCII(host)
}
