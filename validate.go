package roman

// Pattern is the numeral grammar as a regular expression in the common
// subset of ECMA-262 and RE2, suitable for JSON Schema "pattern". It also
// matches the empty string, so schemas pair it with minLength 1. The
// library itself does not use it; see scan.
const Pattern = `^[Mm]{0,3}` +
	`(?:[Dd]?[Cc]{0,3}|[Cc][Mm]|[Cc][Dd])` +
	`(?:[Ll]?[Xx]{0,3}|[Xx][Cc]|[Xx][Ll])` +
	`(?:[Vv]?[Ii]{0,3}|[Ii][Xx]|[Ii][Vv])$`

// field describes one decimal position of a numeral by its unit, five and
// ten symbols. A zero symbol never matches.
type field struct {
	one, five, ten byte
}

var (
	thousands = field{one: 'M'}
	hundreds  = field{one: 'C', five: 'D', ten: 'M'}
	tens      = field{one: 'X', five: 'L', ten: 'C'}
	units     = field{one: 'I', five: 'V', ten: 'X'}
)

// IsValid reports whether s is a canonical Roman numeral, ignoring ASCII
// case. It never fails; malformed input yields false.
func IsValid(s string) bool {
	_, ok := scan(s)
	return ok
}

// scan recognizes the four-field grammar over the whole of s.
func scan(s string) (Fields, bool) {
	if len(s) == 0 || len(s) > MaxLen {
		return Fields{}, false
	}
	var f Fields
	i := 0
	f.Thousands, i = thousands.digit(s, i)
	f.Hundreds, i = hundreds.digit(s, i)
	f.Tens, i = tens.digit(s, i)
	f.Units, i = units.digit(s, i)
	if i != len(s) {
		return Fields{}, false
	}
	return f, true
}

// digit consumes the longest spelling of this field starting at s[i] and
// returns its digit with the index past it. No match consumes nothing.
//
// Symbols of a lower field never start a higher one, so a single lookahead
// picks the only alternative that can lead to a full match.
func (fd field) digit(s string, i int) (int, int) {
	c := symbolAt(s, i)
	switch {
	case c == 0:
		return 0, i
	case c == fd.five:
		n := fd.repeat(s, i+1, 3)
		return 5 + n, i + 1 + n
	case c == fd.one:
		next := symbolAt(s, i+1)
		if fd.ten != 0 && next == fd.ten {
			return 9, i + 2
		}
		if fd.five != 0 && next == fd.five {
			return 4, i + 2
		}
		n := 1 + fd.repeat(s, i+1, 2)
		return n, i + n
	}
	return 0, i
}

// repeat counts up to limit consecutive unit symbols from s[i].
func (fd field) repeat(s string, i, limit int) int {
	n := 0
	for n < limit && symbolAt(s, i+n) == fd.one {
		n++
	}
	return n
}

// symbolAt returns the uppercased ASCII letter at s[i], or 0 past the end or
// for any byte that is not a numeral symbol.
func symbolAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	c := s[i]
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 'M', 'D', 'C', 'L', 'X', 'V', 'I':
		return c
	}
	return 0
}
