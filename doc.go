package goshape

// Package goshape provides:
//
// - Declarative JSON shape schemas (string/number/boolean/array/object) built bottom-up via dsl/
// - A compact textual notation (Stringify) suited for embedding into LLM prompts
// - Validating parse of JSON documents against a schema (Parse/ParseFrom)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the DSL under dsl/, reusable validators under rules/, and the CLI under cmd/goshape.
// - The notation shown to a model and the checks enforced at parse time come from the same
//   schema tree, so the two can never drift apart.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := g.Object().
//	    Field("name", g.String()).
//	    Field("age", g.Number().Optional())
//	fragment := s.Stringify() // "{ name: string, age: number /* optional */ }"
//	v, err := goshape.ParseFrom(ctx, s, goshape.JSONBytes(reply))
