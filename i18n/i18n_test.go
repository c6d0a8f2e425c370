package i18n_test

import (
	"testing"

	"github.com/reoring/goshape/i18n"
)

func TestDefaultMessages(t *testing.T) {
	if got := i18n.T("required", nil); got != "required property missing" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := i18n.T("invalid_type", map[string]string{"expected": "number", "got": "string"}); got != "expected number, got string" {
		t.Fatalf("unexpected message: %q", got)
	}
	// unknown codes fall back to the code itself
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	if got := i18n.T("required", nil); got != "必須プロパティが不足しています" {
		t.Fatalf("unexpected ja message: %q", got)
	}
	// unsupported languages fall back to en
	i18n.SetLanguage("fr")
	if got := i18n.T("required", nil); got != "required property missing" {
		t.Fatalf("unexpected fallback message: %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "<" + code + ">" }

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)

	if got := i18n.T("required", nil); got != "<required>" {
		t.Fatalf("unexpected custom message: %q", got)
	}
}
