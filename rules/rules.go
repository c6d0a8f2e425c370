// Package rules provides reusable named validators for goshape schemas.
//
// Every helper returns a (label, predicate) pair so it splats directly into a
// Refine call:
//
//	g.String().Refine(rules.NonEmpty())
//	g.Number().Refine(rules.Min(0))
//
// The label is the display text embedded into the notation; it is authored
// together with the predicate so the two cannot diverge.
package rules

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ---- string rules ----

// NonEmpty rejects the empty string.
func NonEmpty() (string, func(string) bool) {
	return "non-empty", func(s string) bool { return s != "" }
}

// MinLen requires at least n characters (by rune count).
func MinLen(n int) (string, func(string) bool) {
	return "length >= " + strconv.Itoa(n), func(s string) bool { return len([]rune(s)) >= n }
}

// MaxLen allows at most n characters (by rune count).
func MaxLen(n int) (string, func(string) bool) {
	return "length <= " + strconv.Itoa(n), func(s string) bool { return len([]rune(s)) <= n }
}

// Pattern requires the string to match the anchored-as-given expression.
// The expression is compiled eagerly; an invalid pattern panics, mirroring
// regexp.MustCompile.
func Pattern(expr string) (string, func(string) bool) {
	re := regexp.MustCompile(expr)
	return "matches /" + expr + "/", re.MatchString
}

// OneOf restricts the string to a fixed set of values.
func OneOf(vals ...string) (string, func(string) bool) {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return "one of '" + strings.Join(vals, "', '") + "'", func(s string) bool {
		_, ok := set[s]
		return ok
	}
}

// Contains requires the string to contain the substring.
func Contains(sub string) (string, func(string) bool) {
	return "contains '" + sub + "'", func(s string) bool { return strings.Contains(s, sub) }
}

// ---- number rules ----

// Positive requires n > 0.
func Positive() (string, func(float64) bool) {
	return "n > 0", func(n float64) bool { return n > 0 }
}

// NonNegative requires n >= 0.
func NonNegative() (string, func(float64) bool) {
	return "n >= 0", func(n float64) bool { return n >= 0 }
}

// Min requires n >= bound (inclusive).
func Min(bound float64) (string, func(float64) bool) {
	return "n >= " + formatFloat(bound), func(n float64) bool { return n >= bound }
}

// Max requires n <= bound (inclusive).
func Max(bound float64) (string, func(float64) bool) {
	return "n <= " + formatFloat(bound), func(n float64) bool { return n <= bound }
}

// Integer rejects numbers with a fractional part.
func Integer() (string, func(float64) bool) {
	return "whole number", func(n float64) bool { return math.Trunc(n) == n && !math.IsInf(n, 0) }
}

// ---- array rules ----

// MinItems requires at least n elements.
func MinItems(n int) (string, func([]any) bool) {
	return "at least " + strconv.Itoa(n) + " items", func(a []any) bool { return len(a) >= n }
}

// MaxItems allows at most n elements.
func MaxItems(n int) (string, func([]any) bool) {
	return "at most " + strconv.Itoa(n) + " items", func(a []any) bool { return len(a) <= n }
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
