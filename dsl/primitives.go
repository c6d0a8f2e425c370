package dsl

import (
	"context"

	goshape "github.com/reoring/goshape"
	js "github.com/reoring/goshape/jsonschema"
)

// String returns a new string schema.
func String() *StringSchema { return &StringSchema{} }

// Number returns a new number schema. Values decode as float64.
func Number() *NumberSchema { return &NumberSchema{} }

// Bool returns a new boolean schema.
func Bool() *BoolSchema { return &BoolSchema{} }

// StringSchema matches JSON strings.
type StringSchema struct {
	node
	check func(string) bool
}

// Refine attaches a validator: a predicate plus the display label embedded
// into the notation. Calling Refine again replaces the prior validator.
func (s *StringSchema) Refine(label string, fn func(string) bool) *StringSchema {
	s.label, s.check = label, fn
	return s
}

// Optional marks the schema as skippable when absent as an object field.
func (s *StringSchema) Optional() *StringSchema { s.optional = true; return s }

func (s *StringSchema) Kind() goshape.Kind { return goshape.KindString }

func (s *StringSchema) Stringify() string { return hinted("string", s.label, s.optional) }

func (s *StringSchema) Parse(ctx context.Context, data []byte, opts ...goshape.ParseOpt) (any, error) {
	return goshape.ParseFrom(ctx, s, goshape.JSONBytes(data), opts...)
}

func (s *StringSchema) ParseValue(ctx context.Context, v any) (any, error) {
	sv, ok := v.(string)
	if !ok {
		return nil, typeMismatch(goshape.KindString, v)
	}
	if s.check != nil && !s.check(sv) {
		return nil, validationFailed(s.label, sv)
	}
	return sv, nil
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Description: s.label}, nil
}

// NumberSchema matches JSON numbers.
type NumberSchema struct {
	node
	check func(float64) bool
}

// Refine attaches a validator; see StringSchema.Refine.
func (s *NumberSchema) Refine(label string, fn func(float64) bool) *NumberSchema {
	s.label, s.check = label, fn
	return s
}

// Optional marks the schema as skippable when absent as an object field.
func (s *NumberSchema) Optional() *NumberSchema { s.optional = true; return s }

func (s *NumberSchema) Kind() goshape.Kind { return goshape.KindNumber }

func (s *NumberSchema) Stringify() string { return hinted("number", s.label, s.optional) }

func (s *NumberSchema) Parse(ctx context.Context, data []byte, opts ...goshape.ParseOpt) (any, error) {
	return goshape.ParseFrom(ctx, s, goshape.JSONBytes(data), opts...)
}

func (s *NumberSchema) ParseValue(ctx context.Context, v any) (any, error) {
	nv, ok := v.(float64)
	if !ok {
		return nil, typeMismatch(goshape.KindNumber, v)
	}
	if s.check != nil && !s.check(nv) {
		return nil, validationFailed(s.label, nv)
	}
	return nv, nil
}

func (s *NumberSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "number", Description: s.label}, nil
}

// BoolSchema matches JSON booleans.
type BoolSchema struct {
	node
	check func(bool) bool
}

// Refine attaches a validator; see StringSchema.Refine.
func (s *BoolSchema) Refine(label string, fn func(bool) bool) *BoolSchema {
	s.label, s.check = label, fn
	return s
}

// Optional marks the schema as skippable when absent as an object field.
func (s *BoolSchema) Optional() *BoolSchema { s.optional = true; return s }

func (s *BoolSchema) Kind() goshape.Kind { return goshape.KindBoolean }

func (s *BoolSchema) Stringify() string { return hinted("boolean", s.label, s.optional) }

func (s *BoolSchema) Parse(ctx context.Context, data []byte, opts ...goshape.ParseOpt) (any, error) {
	return goshape.ParseFrom(ctx, s, goshape.JSONBytes(data), opts...)
}

func (s *BoolSchema) ParseValue(ctx context.Context, v any) (any, error) {
	bv, ok := v.(bool)
	if !ok {
		return nil, typeMismatch(goshape.KindBoolean, v)
	}
	if s.check != nil && !s.check(bv) {
		return nil, validationFailed(s.label, bv)
	}
	return bv, nil
}

func (s *BoolSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "boolean", Description: s.label}, nil
}
