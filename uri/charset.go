package uri

// CharacterSet is an immutable set of bytes. The zero value is an empty set.
type CharacterSet struct {
	table [256]bool
}

// NewCharacterSet returns a set containing every byte of every passed string.
func NewCharacterSet(chars ...string) CharacterSet {
	var set CharacterSet
	for _, str := range chars {
		for i := 0; i < len(str); i++ {
			set.table[str[i]] = true
		}
	}

	return set
}

// Range returns a set containing all the bytes from first to last inclusively.
func Range(first, last byte) CharacterSet {
	var set CharacterSet
	for c := int(first); c <= int(last); c++ {
		set.table[c] = true
	}

	return set
}

// Union returns a new set containing all the elements of the passed sets.
func Union(sets ...CharacterSet) CharacterSet {
	var set CharacterSet
	for _, s := range sets {
		for c, ok := range s.table {
			set.table[c] = set.table[c] || ok
		}
	}

	return set
}

// Contains tells whether the byte belongs to the set.
func (c CharacterSet) Contains(char byte) bool {
	return c.table[char]
}

var (
	alpha = Union(Range('a', 'z'), Range('A', 'Z'))
	digit = Range('0', '9')

	// Unreserved are the characters that never require percent-encoding.
	// See RFC 3986, 2.3.
	Unreserved = Union(alpha, digit, NewCharacterSet("-._~"))
	// SubDelims are delimiters allowed unescaped inside most of the URI components.
	// See RFC 3986, 2.2.
	SubDelims = NewCharacterSet("!$&'()*+,;=")
	// PathCharacters may appear unescaped inside a single path segment and a host.
	PathCharacters = Union(Unreserved, SubDelims)
	// UserInfoCharacters may appear unescaped inside the user-info component.
	UserInfoCharacters = Union(PathCharacters, NewCharacterSet(":"))
	// QueryOrFragmentCharacters may appear unescaped inside a query or a fragment.
	QueryOrFragmentCharacters = Union(PathCharacters, NewCharacterSet("/?:@"))
	// HeaderSeparators are the separators listed in RFC 2616, 2.2. They are forbidden
	// in header names.
	HeaderSeparators = NewCharacterSet(" \t()<>@,;\\\"/[]?={}")

	schemeCharacters = Union(alpha, digit, NewCharacterSet("+-."))
)
