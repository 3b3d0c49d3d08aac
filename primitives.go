package roman

import (
	"context"
	"strings"

	js "github.com/reoring/roman/jsonschema"
)

// NumeralSchema returns the schema of numeral strings. Parse accepts either
// case and yields the canonical uppercase spelling.
func NumeralSchema() Schema[string] { return numeralSchema{} }

// IntegerSchema returns the schema of encodable integers (1..3999). Parse
// accepts Go integer kinds and integral json.Number values.
func IntegerSchema() Schema[int] { return integerSchema{} }

type numeralSchema struct{}

func (numeralSchema) Parse(ctx context.Context, v any) (string, error) {
	if err := (numeralSchema{}).TypeCheck(ctx, v); err != nil {
		return "", err
	}
	s := v.(string)
	// ValidateValue -> Normalize -> Refine
	if err := (numeralSchema{}).ValidateValue(ctx, s); err != nil {
		return "", err
	}
	ns, err := ApplyNormalize[string](ctx, s, numeralSchema{})
	if err != nil {
		return "", err
	}
	if err := ApplyRefine[string](ctx, ns, numeralSchema{}); err != nil {
		return "", err
	}
	return ns, nil
}

func (numeralSchema) Normalize(ctx context.Context, v string) (string, error) {
	return strings.ToUpper(v), nil
}

func (numeralSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return typeIssue(v)
	}
	return nil
}

func (numeralSchema) RuleCheck(ctx context.Context, v any) error {
	s, _ := v.(string)
	return (numeralSchema{}).ValidateValue(ctx, s)
}

func (numeralSchema) Validate(ctx context.Context, v any) error {
	if err := (numeralSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (numeralSchema{}).RuleCheck(ctx, v)
}

func (numeralSchema) ValidateValue(ctx context.Context, v string) error {
	if !IsValid(v) {
		return formatIssue(v)
	}
	return nil
}

func (numeralSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{
		Type:        "string",
		Format:      "roman",
		Description: "canonical Roman numeral (I..MMMCMXCIX), case-insensitive",
		Pattern:     Pattern,
		MinLength:   js.Int(1),
		MaxLength:   js.Int(MaxLen),
		Examples:    []any{"XIV", "MCMXCIV"},
	}, nil
}

type integerSchema struct{}

func (integerSchema) Parse(ctx context.Context, v any) (int, error) {
	n, err := toInt(v)
	if err != nil {
		return 0, err
	}
	if err := ApplyRefine[int](ctx, n, integerSchema{}); err != nil {
		return 0, err
	}
	return n, nil
}

func (integerSchema) TypeCheck(ctx context.Context, v any) error {
	_, err := toInt(v)
	if KindOf(err) == CodeInvalidType {
		return err
	}
	return nil
}

func (integerSchema) RuleCheck(ctx context.Context, v any) error {
	_, err := toInt(v)
	if KindOf(err) == CodeOutOfRange {
		return err
	}
	return nil
}

func (integerSchema) Validate(ctx context.Context, v any) error {
	_, err := toInt(v)
	return err
}

func (integerSchema) ValidateValue(ctx context.Context, v int) error {
	if v < MinValue || v > MaxValue {
		return rangeIssue(v)
	}
	return nil
}

func (integerSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{
		Type:        "integer",
		Description: "integer representable as a Roman numeral",
		Minimum:     js.Int(MinValue),
		Maximum:     js.Int(MaxValue),
		Examples:    []any{14, 1994},
	}, nil
}
