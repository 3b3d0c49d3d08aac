package codec

import (
	"context"
	"strings"

	"github.com/reoring/roman"
)

// Numeral returns a Codec that converts between numeral strings and int.
// Decode accepts either case; Encode emits the canonical uppercase form.
func Numeral() roman.Codec[string, int] {
	return &numeralCodec{
		in:  roman.NumeralSchema(),
		out: roman.IntegerSchema(),
	}
}

type numeralCodec struct {
	in  roman.Schema[string]
	out roman.Schema[int]
}

func (c *numeralCodec) In() roman.Schema[string] { return c.in }
func (c *numeralCodec) Out() roman.Schema[int]   { return c.out }

func (c *numeralCodec) Decode(ctx context.Context, a string) (int, error) {
	// wire(string) -> domain(int) -> Out.ValidateValue
	n, err := roman.Decode(a)
	if err != nil {
		return 0, err
	}
	if err := c.out.ValidateValue(ctx, n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *numeralCodec) Encode(ctx context.Context, b int) (string, error) {
	// Validate using Out, convert to wire(string), then re-validate via In
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return "", err
	}
	s, err := roman.Encode(b)
	if err != nil {
		return "", err
	}
	if err := c.in.ValidateValue(ctx, s); err != nil {
		return "", err
	}
	return s, nil
}

func (c *numeralCodec) DecodeWithMeta(ctx context.Context, a string) (roman.Decoded[int], error) {
	n, err := c.Decode(ctx, a)
	return roman.Decoded[int]{Value: n, Raw: a}, err
}

// EncodePreserving returns db.Raw unchanged while it still spells db.Value.
// Otherwise the value is encoded afresh, lowercased when Raw was lowercase.
func (c *numeralCodec) EncodePreserving(ctx context.Context, db roman.Decoded[int]) (string, error) {
	if db.Raw != "" {
		if n, err := roman.Decode(db.Raw); err == nil && n == db.Value {
			return db.Raw, nil
		}
	}
	s, err := c.Encode(ctx, db.Value)
	if err != nil {
		return "", err
	}
	if isLower(db.Raw) {
		s = strings.ToLower(s)
	}
	return s, nil
}

func isLower(s string) bool {
	return s != "" && s == strings.ToLower(s) && s != strings.ToUpper(s)
}
