package goshape

import (
	"context"

	js "github.com/reoring/goshape/jsonschema"
)

// Kind tags the closed set of schema kinds. The set is fixed: unions,
// recursive schemas, and cross-field validation are out of scope.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindArray
	KindObject
)

// String returns the notation keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Schema is the contract shared by every schema node. Nodes are pure
// descriptors: immutable once construction (including the Refine/Optional
// mutators) is done, and safe to share across concurrent Parse calls.
type Schema interface {
	// Stringify renders the schema into the compact notation embedded into
	// prompts. Output is deterministic; object fields appear in declaration
	// order.
	Stringify() string

	// Parse validates a JSON document against the schema and returns the
	// typed value (string, float64, bool, []any, or map[string]any). On
	// failure it returns Issues; no partial result accompanies an error.
	Parse(ctx context.Context, data []byte, opts ...ParseOpt) (any, error)

	// ParseValue validates an already-decoded generic JSON value. It is the
	// recursion point used by composite schemas.
	ParseValue(ctx context.Context, v any) (any, error)

	// Kind reports the schema kind tag.
	Kind() Kind

	// IsOptional reports whether the node may be absent when it is the value
	// of an object field. The flag has no parse-time effect at the top level
	// or as an array item schema.
	IsOptional() bool

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}
