package codec

import (
	"context"
	"fmt"

	"github.com/reoring/roman"
)

// Identity returns a Codec[T,T] over a single schema. Decode validates and
// then applies the schema's Normalizer, so Identity(roman.NumeralSchema())
// turns "xiv" into "XIV"; Encode validates only.
func Identity[T any](s roman.Schema[T]) roman.Codec[T, T] {
	return &identityCodec[T]{s: s}
}

type identityCodec[T any] struct {
	s roman.Schema[T]
}

func (c *identityCodec[T]) In() roman.Schema[T]  { return c.s }
func (c *identityCodec[T]) Out() roman.Schema[T] { return c.s }

func (c *identityCodec[T]) Decode(ctx context.Context, a T) (T, error) {
	var zero T
	if err := c.s.ValidateValue(ctx, a); err != nil {
		return zero, err
	}
	v, err := roman.ApplyNormalize(ctx, a, c.s)
	if err != nil {
		return zero, err
	}
	return v, nil
}

func (c *identityCodec[T]) Encode(ctx context.Context, b T) (T, error) {
	if err := c.s.ValidateValue(ctx, b); err != nil {
		var zero T
		return zero, err
	}
	return b, nil
}

func (c *identityCodec[T]) DecodeWithMeta(ctx context.Context, a T) (roman.Decoded[T], error) {
	v, err := c.Decode(ctx, a)
	return roman.Decoded[T]{Value: v, Raw: fmt.Sprint(a)}, err
}

// EncodePreserving returns the raw spelling for string codecs while it still
// normalizes to db.Value; other types have no alternative spelling.
func (c *identityCodec[T]) EncodePreserving(ctx context.Context, db roman.Decoded[T]) (T, error) {
	if _, isString := any(db.Value).(string); isString && db.Raw != "" {
		if raw, ok := any(db.Raw).(T); ok {
			if v, err := c.Decode(ctx, raw); err == nil && any(v) == any(db.Value) {
				return raw, nil
			}
		}
	}
	return c.Encode(ctx, db.Value)
}
