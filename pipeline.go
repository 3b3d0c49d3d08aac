package roman

import "context"

// ApplyNormalize calls Normalizer[T] if s implements it.
func ApplyNormalize[T any](ctx context.Context, v T, s Schema[T]) (T, error) {
	if n, ok := any(s).(Normalizer[T]); ok {
		return n.Normalize(ctx, v)
	}
	return v, nil
}

// ApplyRefine calls Refiner[T] if s implements it.
func ApplyRefine[T any](ctx context.Context, v T, s Schema[T]) error {
	if r, ok := any(s).(Refiner[T]); ok {
		return r.Refine(ctx, v)
	}
	return nil
}

// Refined narrows s with an extra check that runs after s accepted the
// value, in Parse, Validate and ValidateValue. Returning Issues from fn keeps
// the error model intact.
//
//	after1000 := roman.Refined(roman.IntegerSchema(), func(_ context.Context, n int) error {
//		if n <= 1000 {
//			return roman.Issues{{Path: "/", Code: roman.CodeOutOfRange, Message: "must be after M"}}
//		}
//		return nil
//	})
func Refined[T any](s Schema[T], fn func(ctx context.Context, v T) error) Schema[T] {
	return refined[T]{Schema: s, fn: fn}
}

type refined[T any] struct {
	Schema[T]
	fn func(ctx context.Context, v T) error
}

func (r refined[T]) Validate(ctx context.Context, v any) error {
	if err := r.Schema.Validate(ctx, v); err != nil {
		return err
	}
	_, err := r.Parse(ctx, v)
	return err
}

func (r refined[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := r.Schema.Parse(ctx, v)
	if err != nil {
		return out, err
	}
	if err := r.fn(ctx, out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (r refined[T]) ValidateValue(ctx context.Context, v T) error {
	if err := r.Schema.ValidateValue(ctx, v); err != nil {
		return err
	}
	return r.fn(ctx, v)
}
