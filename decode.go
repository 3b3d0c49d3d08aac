package roman

// Decode returns the value of the canonical numeral s, in either case. Any
// string IsValid rejects fails with an invalid_format issue (matching
// ErrFormat) that records s.
func Decode(s string) (int, error) {
	f, ok := scan(s)
	if !ok {
		return 0, formatIssue(s)
	}
	return f.Value(), nil
}

// Split returns the per-field decomposition of the canonical numeral s.
func Split(s string) (Fields, error) {
	f, ok := scan(s)
	if !ok {
		return Fields{}, formatIssue(s)
	}
	return f, nil
}

// DecodePrefix decodes the longest leading run of numeral symbols in s and
// returns the rest of s after it. The run must itself be a canonical
// numeral; an empty run fails as well.
func DecodePrefix(s string) (int, string, error) {
	end := 0
	for symbolAt(s, end) != 0 {
		end++
	}
	n, err := Decode(s[:end])
	if err != nil {
		return 0, s, err
	}
	return n, s[end:], nil
}
