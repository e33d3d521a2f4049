package uri

import "github.com/indigo-web/webparse/internal/hexconv"

const (
	ipv4Groups       = 4
	ipv4Dots         = ipv4Groups - 1
	ipv6MaxSegments  = 8
	ipv6MaxHexLength = 4
)

// IsIPv4 tells whether the string is a dotted-decimal IPv4 address: exactly four non-empty
// groups of digits, each of them in range [0, 255]. Leading zeroes are permitted.
func IsIPv4(str string) bool {
	var (
		groups  = 1
		number  int
		hasDigs bool
	)

	for i := 0; i < len(str); i++ {
		switch c := str[i]; {
		case c == '.':
			if !hasDigs {
				return false
			}

			groups++
			number, hasDigs = 0, false
		case '0' <= c && c <= '9':
			number = number*10 + int(c-'0')
			if number > 0xFF {
				return false
			}

			hasDigs = true
		default:
			return false
		}
	}

	return hasDigs && groups == ipv4Groups
}

// IsIPv6 tells whether the string looks like an IPv6 address. The check consists of two
// independent passes, one over the colon-delimited structure and another one over the digits.
//
// Note that it is more tolerant than RFC 4291: for example, a plain IPv4 address passes,
// as well as a hex group immediately preceding an embedded IPv4 tail.
func IsIPv6(str string) bool {
	return len(str) > 0 && ipv6ColonSegmentsValid(str) && ipv6DigitSegmentsValid(str)
}

// ipv6ColonSegmentsValid makes sure there's at most one elision marker (::), no runs of
// three or more colons and not too many segments in total.
func ipv6ColonSegmentsValid(str string) bool {
	var (
		segments     = 1
		doubleColons int
		colonRun     int
		dots         int
	)

	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ':':
			switch colonRun {
			case 0:
			case 1:
				if doubleColons > 0 {
					return false
				}

				doubleColons++
			default:
				return false
			}

			colonRun++
		case '.':
			dots++
		default:
			if colonRun > 0 {
				segments++
			}

			colonRun = 0
		}
	}

	if dots > 0 && dots != ipv4Dots {
		return false
	}

	return segments <= ipv6MaxSegments
}

// ipv6DigitSegmentsValid makes sure every non-delimiter is a hex digit, no hex group is longer
// than 4 characters and every decimal group of an embedded IPv4 tail fits into a byte.
func ipv6DigitSegmentsValid(str string) bool {
	var (
		run     int
		hasIPv4 bool
	)

	for i := 0; i < len(str); i++ {
		switch c := str[i]; {
		case hexconv.Is(c):
			if run++; run > ipv6MaxHexLength {
				return false
			}
		case c == ':':
			run = 0
		case c == '.':
			run = 0
			hasIPv4 = true
			if !decimalByteBefore(str, i) {
				return false
			}
		default:
			return false
		}
	}

	return !hasIPv4 || decimalByteBefore(str, len(str))
}

// decimalByteBefore reads the run of decimal digits immediately preceding the end index
// backwards and tells whether its value fits into a byte. An empty run is zero.
func decimalByteBefore(str string, end int) bool {
	var value, power = 0, 1

	for j := end - 1; j >= 0 && isDigit(str[j]); j-- {
		value += int(str[j]-'0') * power
		if value > 0xFF {
			return false
		}

		// any non-zero digit at the thousands position or higher would overflow anyway,
		// so there's no need to grow the multiplier further.
		if power < 1000 {
			power *= 10
		}
	}

	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
