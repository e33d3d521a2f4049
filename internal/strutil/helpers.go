package strutil

import "github.com/indigo-web/utils/strcomp"

// IsSpace reports whether the character is one of the C-locale whitespace characters:
// SP, HT, LF, VT, FF or CR.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		if !IsSpace(str[i]) {
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		if !IsSpace(str[i-1]) {
			return str[:i]
		}
	}

	return ""
}

// StripWS strips whitespaces from both sides.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// ToLowerASCII lower-cases ASCII letters only. The string is returned as is if there's
// nothing to lower, so no allocation happens.
func ToLowerASCII(str string) string {
	for i := 0; i < len(str); i++ {
		if 'A' <= str[i] && str[i] <= 'Z' {
			goto lower
		}
	}

	return str

lower:
	b := []byte(str)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c | 0x20
		}
	}

	return string(b)
}

// CmpFold compares two strings case-insensitively.
func CmpFold(a, b string) bool {
	return strcomp.EqualFold(a, b)
}
