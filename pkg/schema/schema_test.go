package schema

import (
	"errors"
	"testing"
)

func TestStringSchema_EnforcesLengthBounds(t *testing.T) {
	s := &StringSchema{MinLength: 2, MaxLength: 4}

	if _, err := s.Validate("a"); err == nil {
		t.Fatal("expected a too-short string to be rejected")
	}
	if _, err := s.Validate("abcde"); err == nil {
		t.Fatal("expected a too-long string to be rejected")
	}
	v, err := s.Validate("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "abc" {
		t.Fatalf("expected 'abc', got %v", v)
	}
}

func TestStringSchema_RejectsNonString(t *testing.T) {
	s := String()
	if _, err := s.Validate(42); err == nil {
		t.Fatal("expected a non-string value to be rejected")
	}
}

func TestNumberSchema_CoercesAndEnforcesBounds(t *testing.T) {
	s := &NumberSchema{Min: 0, Max: 10}

	v, err := s.Validate(int32(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != float64(5) {
		t.Fatalf("expected the int32 to be coerced to float64(5), got %v (%T)", v, v)
	}

	if _, err := s.Validate(-1); err == nil {
		t.Fatal("expected a below-minimum number to be rejected")
	}
	if _, err := s.Validate(11); err == nil {
		t.Fatal("expected an above-maximum number to be rejected")
	}
}

func TestNumberSchema_PositiveNegativeInteger(t *testing.T) {
	if _, err := (&NumberSchema{Positive: true}).Validate(-1); err == nil {
		t.Fatal("expected a non-positive number to be rejected when Positive is set")
	}
	if _, err := (&NumberSchema{Negative: true}).Validate(1); err == nil {
		t.Fatal("expected a non-negative number to be rejected when Negative is set")
	}
	if _, err := (&NumberSchema{Integer: true}).Validate(1.5); err == nil {
		t.Fatal("expected a non-integer number to be rejected when Integer is set")
	}
}

func TestBooleanSchema(t *testing.T) {
	if _, err := Boolean().Validate("true"); err == nil {
		t.Fatal("expected a non-bool value to be rejected")
	}
	v, err := Boolean().Validate(true)
	if err != nil || v != true {
		t.Fatalf("expected true, nil, got %v, %v", v, err)
	}
}

func TestArraySchema_ValidatesLengthAndItems(t *testing.T) {
	s := &ArraySchema{ItemSchema: String(), MinItems: 1, MaxItems: 2}

	if _, err := s.Validate([]any{}); err == nil {
		t.Fatal("expected an empty array to violate MinItems")
	}

	v, err := s.Validate([]any{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.([]any)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected validated array: %v", got)
	}
}

func TestArraySchema_ItemErrorReportsPath(t *testing.T) {
	s := Array(String())
	_, err := s.Validate([]any{"ok", 42})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a *ValidationError, got %v", err)
	}
	if len(ve.Path) != 1 || ve.Path[0] != "[1]" {
		t.Fatalf("expected the path to point at index 1, got %v", ve.Path)
	}
}

func TestObjectSchema_RequiredMapProperty(t *testing.T) {
	s := &ObjectSchema{Required: []string{"id"}}
	if _, err := s.Validate(map[string]any{"name": "a"}); err == nil {
		t.Fatal("expected a missing required property to be rejected")
	}

	v, err := s.Validate(map[string]any{"id": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(map[string]any)["id"] != "x" {
		t.Fatalf("expected id to round-trip, got %v", v)
	}
}

func TestObjectSchema_NestedPropertyValidation(t *testing.T) {
	s := Object(map[string]Schema{"age": &NumberSchema{Min: 0}})
	_, err := s.Validate(map[string]any{"age": -5})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a *ValidationError, got %v", err)
	}
	if len(ve.Path) != 1 || ve.Path[0] != "age" {
		t.Fatalf("expected the path to point at 'age', got %v", ve.Path)
	}
}

func TestCustomSchema_AcceptsAnything(t *testing.T) {
	c := Custom[int]()
	v, err := c.Validate("whatever")
	if err != nil || v != "whatever" {
		t.Fatalf("expected CustomSchema to accept any value unchanged, got %v, %v", v, err)
	}
}

func TestValidationError_ErrorMessageIncludesPath(t *testing.T) {
	e := &ValidationError{Message: "bad", Path: []string{"a", "[0]"}}
	if e.Error() != "bad at path [a [0]]" {
		t.Fatalf("unexpected error message: %q", e.Error())
	}
}

func TestAsEnhancer_RejectsInvalidValue(t *testing.T) {
	enh := AsEnhancer(&StringSchema{MinLength: 1})
	if _, err := enh("", "old", "name"); err == nil {
		t.Fatal("expected an empty string to be rejected by the enhancer")
	}
}

func TestAsEnhancer_AcceptsValidValue(t *testing.T) {
	enh := AsEnhancer(&StringSchema{MinLength: 1})
	v, err := enh("ok", "old", "name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ok" {
		t.Fatalf("expected 'ok', got %v", v)
	}
}
