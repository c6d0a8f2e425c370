package dsl

import (
	"context"
	"strconv"

	goshape "github.com/reoring/goshape"
	js "github.com/reoring/goshape/jsonschema"
)

// Array returns an array schema with the given item schema. The item schema
// is fixed at construction and applies to every element; an Optional flag on
// the item schema has no effect here, elements are always required.
func Array(item goshape.Schema) *ArraySchema { return &ArraySchema{item: item} }

// ArraySchema matches JSON arrays whose elements all satisfy the item schema.
type ArraySchema struct {
	node
	item  goshape.Schema
	check func([]any) bool
}

// Refine attaches an array-level validator over the fully assembled slice.
func (a *ArraySchema) Refine(label string, fn func([]any) bool) *ArraySchema {
	a.label, a.check = label, fn
	return a
}

// Optional marks the schema as skippable when absent as an object field.
func (a *ArraySchema) Optional() *ArraySchema { a.optional = true; return a }

func (a *ArraySchema) Kind() goshape.Kind { return goshape.KindArray }

func (a *ArraySchema) Stringify() string {
	return hinted("["+a.item.Stringify()+"]", a.label, a.optional)
}

func (a *ArraySchema) Parse(ctx context.Context, data []byte, opts ...goshape.ParseOpt) (any, error) {
	return goshape.ParseFrom(ctx, a, goshape.JSONBytes(data), opts...)
}

func (a *ArraySchema) ParseValue(ctx context.Context, v any) (any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, typeMismatch(goshape.KindArray, v)
	}
	out := make([]any, 0, len(src))
	for i := range src {
		ev, err := a.item.ParseValue(ctx, src[i])
		if err != nil {
			// fail-fast: the first offending element aborts the parse
			return nil, rebase("/"+strconv.Itoa(i), err)
		}
		out = append(out, ev)
	}
	if a.check != nil && !a.check(out) {
		return nil, validationFailed(a.label, out)
	}
	return out, nil
}

func (a *ArraySchema) JSONSchema() (*js.Schema, error) {
	is, err := a.item.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: is, Description: a.label}, nil
}
