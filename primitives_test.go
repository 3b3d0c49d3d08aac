package roman_test

import (
	"context"
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	jschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/roman"
)

func TestNumeralSchema_Parse(t *testing.T) {
	ctx := context.Background()
	s := roman.NumeralSchema()

	v, err := s.Parse(ctx, "mcmxciv")
	if err != nil || v != "MCMXCIV" {
		t.Fatalf("parse err=%v v=%q", err, v)
	}
	if _, err := s.Parse(ctx, 14); !errors.Is(err, roman.ErrType) {
		t.Fatalf("expected ErrType, got %v", err)
	}
	if _, err := s.Parse(ctx, "XIIX"); !errors.Is(err, roman.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if !roman.Is(ctx, s, "xiii") || roman.Is(ctx, s, "IIII") || roman.Is(ctx, s, nil) {
		t.Fatalf("unexpected Is results")
	}
	if v, ok := roman.SafeParse(ctx, s, "iv"); !ok || v != "IV" {
		t.Fatalf("SafeParse = %q, %v", v, ok)
	}
	if _, ok := roman.SafeParse(ctx, s, ""); ok {
		t.Fatalf("SafeParse accepted the empty numeral")
	}
}

func TestNumeralSchema_Phases(t *testing.T) {
	ctx := context.Background()
	s := roman.NumeralSchema()
	if err := s.TypeCheck(ctx, "IIII"); err != nil {
		t.Fatalf("TypeCheck must only check the type: %v", err)
	}
	if err := s.RuleCheck(ctx, "IIII"); !errors.Is(err, roman.ErrFormat) {
		t.Fatalf("RuleCheck must reject IIII: %v", err)
	}
	if err := s.Validate(ctx, []byte("IV")); !errors.Is(err, roman.ErrType) {
		t.Fatalf("Validate must reject []byte: %v", err)
	}
}

func TestIntegerSchema_Parse(t *testing.T) {
	ctx := context.Background()
	s := roman.IntegerSchema()

	v, err := s.Parse(ctx, json.Number("1994"))
	if err != nil || v != 1994 {
		t.Fatalf("parse err=%v v=%d", err, v)
	}
	if _, err := s.Parse(ctx, 4000); !errors.Is(err, roman.ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
	if _, err := s.Parse(ctx, 4.0); !errors.Is(err, roman.ErrType) {
		t.Fatalf("expected ErrType, got %v", err)
	}
	if v, err := s.Parse(ctx, time.December); err != nil || v != 12 {
		t.Fatalf("named integer: err=%v v=%d", err, v)
	}
	if err := s.TypeCheck(ctx, time.Month(0)); err != nil {
		t.Fatalf("TypeCheck must accept named integers: %v", err)
	}
	if err := s.TypeCheck(ctx, 0); err != nil {
		t.Fatalf("TypeCheck must accept any integer: %v", err)
	}
	if err := s.RuleCheck(ctx, 0); !errors.Is(err, roman.ErrRange) {
		t.Fatalf("RuleCheck must reject 0: %v", err)
	}
	if err := s.ValidateValue(ctx, -1); !errors.Is(err, roman.ErrRange) {
		t.Fatalf("ValidateValue must reject -1: %v", err)
	}
}

func TestSchemas_JSONSchema(t *testing.T) {
	ns, err := roman.NumeralSchema().JSONSchema()
	if err != nil {
		t.Fatalf("numeral json schema err: %v", err)
	}
	if ns.Type != "string" || ns.Pattern != roman.Pattern || *ns.MinLength != 1 || *ns.MaxLength != roman.MaxLen {
		t.Fatalf("unexpected numeral schema: %+v", ns)
	}
	is, err := roman.IntegerSchema().JSONSchema()
	if err != nil {
		t.Fatalf("integer json schema err: %v", err)
	}
	if is.Type != "integer" || *is.Minimum != 1 || *is.Maximum != 3999 {
		t.Fatalf("unexpected integer schema: %+v", is)
	}
	out, err := json.Marshal(is)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(out) != `{"description":"integer representable as a Roman numeral","type":"integer","examples":[14,1994],"minimum":1,"maximum":3999}` {
		t.Fatalf("unexpected json: %s", out)
	}
}

func TestNumeralSchema_CompilesWithJSONSchemaValidator(t *testing.T) {
	ns, err := roman.NumeralSchema().JSONSchema()
	if err != nil {
		t.Fatalf("numeral json schema err: %v", err)
	}
	data, err := json.Marshal(ns)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	sch, err := jschema.CompileString("mem:numeral.json", string(data))
	if err != nil {
		t.Fatalf("compile err: %v", err)
	}
	for _, v := range []string{"xiv", "MCMXCIV", "MMMCMXCIX", "iI"} {
		if err := sch.Validate(v); err != nil {
			t.Fatalf("schema rejected %q: %v", v, err)
		}
	}
	for _, v := range []string{"IIII", "", "VV", "XIIX", "MMMMCMXCIX"} {
		if err := sch.Validate(v); err == nil {
			t.Fatalf("schema accepted %q", v)
		}
	}
}
