package hexconv

// Halfbyte maps a hex digit (of any case) to its 4-bit value. All the other
// characters are mapped to 0xFF.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}()

const lowerDigits = "0123456789abcdef"

// Is tells whether the character is a hex digit.
func Is(c byte) bool {
	return Halfbyte[c] != 0xFF
}

// Decode combines two hex digits into a byte. ok is false if any of them isn't a hex digit.
func Decode(hi, lo byte) (c byte, ok bool) {
	x, y := Halfbyte[hi], Halfbyte[lo]
	if x == 0xFF || y == 0xFF {
		return 0, false
	}

	return x<<4 | y, true
}

// AppendLower writes the byte as two lowercase hex digits.
func AppendLower(buff []byte, c byte) []byte {
	return append(buff, lowerDigits[c>>4], lowerDigits[c&0xF])
}
