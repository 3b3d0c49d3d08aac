package roman_test

import (
	"context"
	"errors"
	"testing"

	"github.com/reoring/roman"
)

func TestRefined(t *testing.T) {
	ctx := context.Background()
	errEarly := roman.Issues{{Path: "/", Code: roman.CodeOutOfRange, Message: "must be after M"}}
	after1000 := roman.Refined(roman.IntegerSchema(), func(_ context.Context, n int) error {
		if n <= 1000 {
			return errEarly
		}
		return nil
	})

	if n, err := after1000.Parse(ctx, 1066); err != nil || n != 1066 {
		t.Fatalf("Parse(1066) = %d, %v", n, err)
	}
	if _, err := after1000.Parse(ctx, 999); !errors.Is(err, roman.ErrRange) {
		t.Fatalf("expected refine failure, got %v", err)
	}
	if _, err := after1000.Parse(ctx, "1066"); roman.KindOf(err) != roman.CodeInvalidType {
		t.Fatalf("expected base schema failure first, got %v", err)
	}
	if err := after1000.ValidateValue(ctx, 500); err == nil {
		t.Fatalf("expected ValidateValue to run the refinement")
	}
	if err := after1000.ValidateValue(ctx, 5000); roman.KindOf(err) != roman.CodeOutOfRange {
		t.Fatalf("expected base range failure, got %v", err)
	}
	if !roman.Is(ctx, after1000, 2000) || roman.Is(ctx, after1000, 10) {
		t.Fatalf("Is disagrees with Parse")
	}
	if _, ok := roman.SafeParse(ctx, roman.Refined(roman.NumeralSchema(), func(context.Context, string) error { return nil }), "xiv"); !ok {
		t.Fatalf("identity refinement rejected xiv")
	}
}
