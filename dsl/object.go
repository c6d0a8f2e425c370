package dsl

import (
	"context"
	"strings"

	goshape "github.com/reoring/goshape"
	js "github.com/reoring/goshape/jsonschema"
)

type field struct {
	name   string
	schema goshape.Schema
}

// Object returns an empty object schema; chain Field to declare properties.
func Object() *ObjectSchema {
	return &ObjectSchema{index: map[string]int{}}
}

// ObjectSchema matches JSON objects against an ordered field mapping.
type ObjectSchema struct {
	node
	fields []field
	index  map[string]int
	check  func(map[string]any) bool
}

// Field declares a property. Declaration order is preserved in the notation
// and drives fail-fast error ordering. Redeclaring a name replaces the schema
// in place, keeping the original position.
func (o *ObjectSchema) Field(name string, s goshape.Schema) *ObjectSchema {
	if i, ok := o.index[name]; ok {
		o.fields[i].schema = s
		return o
	}
	o.index[name] = len(o.fields)
	o.fields = append(o.fields, field{name: name, schema: s})
	return o
}

// Refine attaches an object-level validator over the assembled result map.
// Skipped optional fields are not materialized, so the predicate sees only
// the fields that were present or required.
func (o *ObjectSchema) Refine(label string, fn func(map[string]any) bool) *ObjectSchema {
	o.label, o.check = label, fn
	return o
}

// Optional marks the schema as skippable when absent as an object field.
func (o *ObjectSchema) Optional() *ObjectSchema { o.optional = true; return o }

func (o *ObjectSchema) Kind() goshape.Kind { return goshape.KindObject }

func (o *ObjectSchema) Stringify() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, f := range o.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteString(": ")
		b.WriteString(f.schema.Stringify())
	}
	b.WriteString(" }")
	return hinted(b.String(), o.label, o.optional)
}

func (o *ObjectSchema) Parse(ctx context.Context, data []byte, opts ...goshape.ParseOpt) (any, error) {
	return goshape.ParseFrom(ctx, o, goshape.JSONBytes(data), opts...)
}

func (o *ObjectSchema) ParseValue(ctx context.Context, v any) (any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		// arrays and null report their own actual kind via kindOf
		return nil, typeMismatch(goshape.KindObject, v)
	}
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		val, exists := src[f.name]
		if !exists {
			if f.schema.IsOptional() {
				// skipped entirely: not materialized, validator never runs
				continue
			}
			return nil, requiredIssue(f.name)
		}
		pv, err := f.schema.ParseValue(ctx, val)
		if err != nil {
			// fail-fast: the first offending field aborts the parse
			return nil, rebase("/"+f.name, err)
		}
		out[f.name] = pv
	}
	// unknown input keys are dropped: never copied, never an error
	if o.check != nil && !o.check(out) {
		return nil, validationFailed(o.label, out)
	}
	return out, nil
}

func (o *ObjectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	required := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		fs, err := f.schema.JSONSchema()
		if err != nil {
			return nil, err
		}
		props[f.name] = fs
		if !f.schema.IsOptional() {
			required = append(required, f.name)
		}
	}
	return &js.Schema{Type: "object", Properties: props, Required: required, Description: o.label}, nil
}
