package roman

import (
	"context"
	"errors"

	js "github.com/reoring/roman/jsonschema"
)

// Schema surfaces the SRP-aligned pillars of construction, type checking, value
// validation, and typed validation.
type Schema[T any] interface {
	// Parse transforms an unknown input into T (TypeCheck -> Normalize ->
	// ValidateValue -> Refine). It returns an error when validation fails.
	Parse(ctx context.Context, v any) (T, error)

	// TypeCheck verifies that v has a Go type the schema can interpret.
	TypeCheck(ctx context.Context, v any) error

	// RuleCheck runs range/format validations assuming TypeCheck already
	// succeeded.
	RuleCheck(ctx context.Context, v any) error

	// Validate composes TypeCheck followed by RuleCheck.
	Validate(ctx context.Context, v any) error

	// ValidateValue verifies a value already typed as T without any conversion.
	ValidateValue(ctx context.Context, v T) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	In() Schema[A]                              // Wire schema (input side).
	Out() Schema[B]                             // Domain schema (output side).
	Decode(ctx context.Context, a A) (B, error) // A (In) -> B (convert) -> Out.ValidateValue.
	Encode(ctx context.Context, b B) (A, error) // Out.ValidateValue -> A -> In.ValidateValue for revalidation.
	// DecodeWithMeta returns the value together with the wire form it was
	// decoded from (enabling preserving encode).
	DecodeWithMeta(ctx context.Context, a A) (Decoded[B], error)
	// EncodePreserving emits output that keeps the original wire spelling
	// when it still denotes the value.
	EncodePreserving(ctx context.Context, db Decoded[B]) (A, error)
}

// Decoded carries a decoded value along with the raw wire text it came from.
type Decoded[T any] struct {
	Value T
	Raw   string
}

// EncodeMode exposes canonical vs preserving output intent at call sites.
// For non-WithMeta values, Preserving is not applicable and callers must supply the raw form via Decoded.
type EncodeMode int

const (
	EncodeCanonical EncodeMode = iota
	EncodePreserve
)

// ErrEncodePreserveRequiresRaw indicates EncodePreserve was requested without a Decoded value.
// Callers should use EncodeWithDecoded when the raw form is required.
var ErrEncodePreserveRequiresRaw = errors.New("roman: encode preserve requires the raw form; supply Decoded via EncodeWithDecoded")

// EncodeWithMode encodes a domain value using the given mode.
// If mode is EncodePreserve, this function returns ErrEncodePreserveRequiresRaw because
// preserving semantics require the raw form. Prefer EncodeWithDecoded with a Decoded value.
func EncodeWithMode[A, B any](ctx context.Context, c Codec[A, B], b B, mode EncodeMode) (A, error) {
	if mode == EncodePreserve {
		var zero A
		return zero, ErrEncodePreserveRequiresRaw
	}
	return c.Encode(ctx, b)
}

// EncodeWithDecoded encodes a domain value using the given mode. When mode is
// EncodePreserve, this calls c.EncodePreserving; when mode is EncodeCanonical it
// falls back to Encode.
func EncodeWithDecoded[A, B any](ctx context.Context, c Codec[A, B], db Decoded[B], mode EncodeMode) (A, error) {
	switch mode {
	case EncodePreserve:
		return c.EncodePreserving(ctx, db)
	default:
		return c.Encode(ctx, db.Value)
	}
}

// Normalizer provides an optional hook to normalize typed values during the
// Normalize phase of parsing. If it is not implemented, the phase is skipped.
type Normalizer[T any] interface {
	Normalize(ctx context.Context, v T) (T, error)
}

// Refiner provides an optional hook at the end of parsing. If it is not
// implemented, the phase is skipped.
type Refiner[T any] interface {
	Refine(ctx context.Context, v T) error
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s (TypeCheck+RuleCheck).
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}
