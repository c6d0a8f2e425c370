// Package dsl provides the schema construction DSL for goshape.
//
// Overview
//   - Leaves: String()/Number()/Bool() describe JSON primitives.
//   - Composites: Array(item) wraps exactly one item schema; Object() collects
//     an ordered field mapping via Field(name, schema).
//   - Mutators: Refine(label, fn) attaches a validator (predicate plus the
//     display text embedded into the notation); Optional() marks a node as
//     skippable when it is the value of an object field. Both return the same
//     node so construction chains; calling either again replaces the prior value.
//   - Notation: Stringify() renders the compact textual form, e.g.
//     "{ name: string, age: number /* optional */ }". The hint comment is one
//     shared routine, so a leaf, array, and object render identically.
//
// Entry points
//   - String()/Number()/Bool(): primitive schemas.
//   - Array(item): array schema over a single item schema.
//   - Object().Field("a", ...).Field("b", ...): object schema; declaration
//     order is significant both in the notation and in fail-fast error order.
//
// Parse semantics
//   - Fail-fast: the first structural or validation failure aborts the parse
//     and is rebased with positional context ("/items/2/price") on the way up.
//   - Optional fields are skipped only when their key is absent; a null value
//     is present and fails the type check like any other mismatch.
//   - Unknown input keys are silently dropped.
//
// File layout (roles)
//   - base.go: shared node contract, hint rendering, issue constructors, path rebasing.
//   - primitives.go: StringSchema/NumberSchema/BoolSchema.
//   - array.go: ArraySchema (per-index recursion).
//   - object.go: ObjectSchema (ordered fields, optional-skip, unknown-drop).
package dsl
