package roman

import (
	"reflect"
	"strings"
)

// Encode converts n to its canonical uppercase numeral. It fails with an
// out_of_range issue (matching ErrRange) unless 1 <= n <= 3999.
func Encode(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", rangeIssue(n)
	}
	var b strings.Builder
	b.Grow(MaxLen)
	for _, p := range table {
		for n >= p.Value {
			b.WriteString(p.Symbol)
			n -= p.Value
		}
	}
	return b.String(), nil
}

// MustEncode is like Encode but panics on error.
func MustEncode(n int) string {
	s, err := Encode(n)
	if err != nil {
		panic(err)
	}
	return s
}

// AppendEncode appends the canonical numeral for n to dst.
func AppendEncode(dst []byte, n int) ([]byte, error) {
	if n < MinValue || n > MaxValue {
		return dst, rangeIssue(n)
	}
	for _, p := range table {
		for n >= p.Value {
			dst = append(dst, p.Symbol...)
			n -= p.Value
		}
	}
	return dst, nil
}

// int64er is satisfied by json.Number and similar textual number types.
type int64er interface {
	Int64() (int64, error)
}

// EncodeValue encodes an untyped value. Only integer kinds (named types
// included) and integral textual numbers (json.Number) are accepted;
// anything else, floats included, fails with an invalid_type issue
// (matching ErrType).
func EncodeValue(v any) (string, error) {
	n, err := toInt(v)
	if err != nil {
		return "", err
	}
	return Encode(n)
}

// toInt narrows v to an int in the encodable range, reporting type
// failures before range failures.
func toInt(v any) (int, error) {
	var i int64
	switch t := v.(type) {
	case int:
		i = int64(t)
	case int8:
		i = int64(t)
	case int16:
		i = int64(t)
	case int32:
		i = int64(t)
	case int64:
		i = t
	case uint:
		return fromUint(uint64(t), v)
	case uint8:
		return fromUint(uint64(t), v)
	case uint16:
		return fromUint(uint64(t), v)
	case uint32:
		return fromUint(uint64(t), v)
	case uint64:
		return fromUint(t, v)
	case int64er:
		n, err := t.Int64()
		if err != nil {
			return 0, typeIssue(v)
		}
		i = n
	default:
		// Named integer types such as time.Month.
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i = rv.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fromUint(rv.Uint(), v)
		default:
			return 0, typeIssue(v)
		}
	}
	if i < MinValue || i > MaxValue {
		return 0, rangeIssue(v)
	}
	return int(i), nil
}

func fromUint(u uint64, orig any) (int, error) {
	if u < MinValue || u > MaxValue {
		return 0, rangeIssue(orig)
	}
	return int(u), nil
}
