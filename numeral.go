package roman

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/roman/i18n"
)

// Numeral is a validated Roman numeral held in canonical (uppercase) form
// together with its value. The zero Numeral is the empty numeral: it is not
// valid and refuses to marshal.
type Numeral struct {
	text  string
	value int
}

// Parse validates s (in any case) and returns it as a Numeral.
func Parse(s string) (Numeral, error) {
	n, err := Decode(s)
	if err != nil {
		return Numeral{}, err
	}
	return Numeral{text: strings.ToUpper(s), value: n}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Numeral {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromInt returns the Numeral for n.
func FromInt(n int) (Numeral, error) {
	s, err := Encode(n)
	if err != nil {
		return Numeral{}, err
	}
	return Numeral{text: s, value: n}, nil
}

// FromValue accepts a numeral string or any integral value EncodeValue
// accepts.
func FromValue(v any) (Numeral, error) {
	if s, ok := v.(string); ok {
		return Parse(s)
	}
	n, err := toInt(v)
	if err != nil {
		return Numeral{}, err
	}
	return FromInt(n)
}

func (n Numeral) Int() int       { return n.value }
func (n Numeral) String() string { return n.text }
func (n Numeral) IsZero() bool   { return n.value == 0 }

// Fields returns the decomposition of n; the zero Numeral has all-zero fields.
func (n Numeral) Fields() Fields {
	f, _ := scan(n.text)
	return f
}

func (n Numeral) MarshalText() ([]byte, error) {
	if n.IsZero() {
		return nil, formatIssue("")
	}
	return []byte(n.text), nil
}

func (n *Numeral) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*n = p
	return nil
}

func (n Numeral) MarshalJSON() ([]byte, error) {
	if n.IsZero() {
		return nil, formatIssue("")
	}
	return json.Marshal(n.text)
}

// UnmarshalJSON accepts a numeral string or an integral JSON number. null
// leaves n unchanged.
func (n *Numeral) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, err), Cause: err}}
	}
	p, err := FromValue(v)
	if err != nil {
		return err
	}
	*n = p
	return nil
}

func (n Numeral) MarshalYAML() (any, error) {
	if n.IsZero() {
		return nil, formatIssue("")
	}
	return n.text, nil
}

// UnmarshalYAML accepts a string scalar holding a numeral or an integer
// scalar. A null scalar leaves n unchanged.
func (n *Numeral) UnmarshalYAML(node *yaml.Node) error {
	var (
		p   Numeral
		err error
	)
	switch {
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
		return nil
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str":
		p, err = Parse(node.Value)
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return typeIssue(node.Value)
		}
		p, err = FromValue(i)
	default:
		var v any
		_ = node.Decode(&v)
		return typeIssue(v)
	}
	if err != nil {
		return err
	}
	*n = p
	return nil
}
