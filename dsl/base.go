package dsl

import (
	"fmt"
	"strings"

	j "github.com/goccy/go-json"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
)

// node carries the contract every schema kind shares: the optional flag and
// the display label of an attached validator. The predicate itself lives on
// the concrete schema so it keeps its natural argument type.
type node struct {
	label    string
	optional bool
}

// IsOptional reports whether the node may be absent as an object field value.
func (n *node) IsOptional() bool { return n.optional }

// hinted appends the shared hint comment to a base type rendering. One
// routine serves every kind so the output is character-identical for a leaf,
// an array, and an object.
func hinted(base, label string, optional bool) string {
	if label == "" && !optional {
		return base
	}
	parts := make([]string, 0, 2)
	if label != "" {
		parts = append(parts, label)
	}
	if optional {
		parts = append(parts, "optional")
	}
	return base + " /* " + strings.Join(parts, ", ") + " */"
}

// kindOf names the runtime kind of a decoded JSON value for error messages.
// null is reported as its own kind.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func typeMismatch(want goshape.Kind, got any) goshape.Issues {
	g := kindOf(got)
	data := map[string]string{"expected": want.String(), "got": g}
	return goshape.Issues{goshape.Issue{
		Path:    "/",
		Code:    goshape.CodeInvalidType,
		Message: i18n.T(goshape.CodeInvalidType, data),
		Params:  map[string]any{"expected": want.String(), "got": g},
	}}
}

// validationFailed reports a validator rejection. Primitive values are
// serialized into the message; composites are named by kind to keep messages
// bounded.
func validationFailed(label string, v any) goshape.Issues {
	msg := i18n.T(goshape.CodeValidationFailed, nil)
	switch v.(type) {
	case []any:
		msg = "array " + msg
	case map[string]any:
		msg = "object " + msg
	default:
		if b, err := j.Marshal(v); err == nil {
			msg = msg + ": " + string(b)
		}
	}
	return goshape.Issues{goshape.Issue{
		Path:    "/",
		Code:    goshape.CodeValidationFailed,
		Message: msg,
		Rule:    label,
	}}
}

func requiredIssue(key string) goshape.Issues {
	return goshape.Issues{goshape.Issue{
		Path:    "/" + key,
		Code:    goshape.CodeRequired,
		Message: i18n.T(goshape.CodeRequired, nil),
		Hint:    "required property missing",
		Params:  map[string]any{"key": key},
	}}
}

// rebase prefixes child issue paths with the positional context (array index
// or field key) of the enclosing schema.
func rebase(base string, err error) goshape.Issues {
	iss, ok := goshape.AsIssues(err)
	if !ok {
		return goshape.Issues{goshape.Issue{Path: base, Code: goshape.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(goshape.Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
