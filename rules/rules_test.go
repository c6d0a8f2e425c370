package rules_test

import (
	"testing"

	"github.com/reoring/goshape/rules"
)

func TestStringRules(t *testing.T) {
	label, check := rules.NonEmpty()
	if label != "non-empty" || !check("x") || check("") {
		t.Fatalf("NonEmpty misbehaves: label=%q", label)
	}

	label, check = rules.MinLen(2)
	if label != "length >= 2" || !check("ab") || check("a") {
		t.Fatalf("MinLen misbehaves: label=%q", label)
	}
	// rune count, not byte count
	_, check = rules.MaxLen(2)
	if !check("日本") || check("abc") {
		t.Fatalf("MaxLen must count runes")
	}

	label, check = rules.Pattern(`^[a-z]+$`)
	if label != "matches /^[a-z]+$/" || !check("abc") || check("a1") {
		t.Fatalf("Pattern misbehaves: label=%q", label)
	}

	label, check = rules.OneOf("red", "green")
	if label != "one of 'red', 'green'" || !check("red") || check("blue") {
		t.Fatalf("OneOf misbehaves: label=%q", label)
	}

	_, check = rules.Contains("@")
	if !check("a@b") || check("ab") {
		t.Fatalf("Contains misbehaves")
	}
}

func TestNumberRules(t *testing.T) {
	label, check := rules.Positive()
	if label != "n > 0" || !check(1) || check(0) {
		t.Fatalf("Positive misbehaves: label=%q", label)
	}

	_, check = rules.NonNegative()
	if !check(0) || check(-0.5) {
		t.Fatalf("NonNegative misbehaves")
	}

	label, check = rules.Min(0.5)
	if label != "n >= 0.5" || !check(0.5) || check(0.4) {
		t.Fatalf("Min misbehaves: label=%q", label)
	}

	_, check = rules.Max(10)
	if !check(10) || check(10.1) {
		t.Fatalf("Max misbehaves")
	}

	_, check = rules.Integer()
	if !check(3) || !check(-2) || check(3.5) {
		t.Fatalf("Integer misbehaves")
	}
}

func TestArrayRules(t *testing.T) {
	label, check := rules.MinItems(1)
	if label != "at least 1 items" || !check([]any{1}) || check(nil) {
		t.Fatalf("MinItems misbehaves: label=%q", label)
	}

	_, check = rules.MaxItems(2)
	if !check([]any{1, 2}) || check([]any{1, 2, 3}) {
		t.Fatalf("MaxItems misbehaves")
	}
}
