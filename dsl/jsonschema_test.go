package dsl_test

import (
	"reflect"
	"testing"

	g "github.com/reoring/goshape/dsl"
)

func TestJSONSchema_Projection(t *testing.T) {
	s := g.Object().
		Field("name", g.String().Refine("non-empty", func(v string) bool { return v != "" })).
		Field("age", g.Number().Optional()).
		Field("tags", g.Array(g.String()))

	js, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if js.Type != "object" {
		t.Fatalf("unexpected type: %q", js.Type)
	}
	if !reflect.DeepEqual(js.Required, []string{"name", "tags"}) {
		t.Fatalf("unexpected required: %#v", js.Required)
	}
	name := js.Properties["name"]
	if name == nil || name.Type != "string" || name.Description != "non-empty" {
		t.Fatalf("unexpected name projection: %#v", name)
	}
	tags := js.Properties["tags"]
	if tags == nil || tags.Type != "array" || tags.Items == nil || tags.Items.Type != "string" {
		t.Fatalf("unexpected tags projection: %#v", tags)
	}
}
