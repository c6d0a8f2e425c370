package engine_test

import (
	"errors"
	"testing"

	eng "github.com/reoring/goshape/internal/engine"
	stdjson "github.com/reoring/goshape/source/json"
)

func decode(t *testing.T, js string, opt eng.EnforceOptions) (any, error) {
	t.Helper()
	src := eng.WrapWithEnforcement(stdjson.NewBytes([]byte(js)), opt)
	return eng.DecodeAnyFromSource(src)
}

func TestDecodeAnyFromSource_NumbersAreFloat64(t *testing.T) {
	v, err := decode(t, `{"n": 42, "f": 1.5}`, eng.EnforceOptions{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	if m["n"] != float64(42) || m["f"] != float64(1.5) {
		t.Fatalf("unexpected values: %#v", m)
	}
}

func TestDecodeAnyFromSource_TrailingData(t *testing.T) {
	_, err := decode(t, `{} []`, eng.EnforceOptions{})
	if !errors.Is(err, eng.ErrTrailingData) {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestEnforcement_DuplicateKeyPath(t *testing.T) {
	_, err := decode(t, `{"outer": {"k": 1, "k": 2}}`, eng.EnforceOptions{RejectDuplicates: true})
	var ie eng.IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != "duplicate_key" || ie.Path != "/outer/k" {
		t.Fatalf("unexpected issue: %#v", ie.SimpleIssue)
	}
}

func TestEnforcement_MaxDepth(t *testing.T) {
	if _, err := decode(t, `{"a": [1]}`, eng.EnforceOptions{MaxDepth: 2}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := decode(t, `{"a": [[1]]}`, eng.EnforceOptions{MaxDepth: 2})
	var ie eng.IssueError
	if !errors.As(err, &ie) || ie.Code != "parse_error" {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestEnforcement_MaxBytes(t *testing.T) {
	js := `{"a": "0123456789"}`
	if _, err := decode(t, js, eng.EnforceOptions{MaxBytes: 1024}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := decode(t, js, eng.EnforceOptions{MaxBytes: 8})
	var ie eng.IssueError
	if !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestEscapedPointerTokens(t *testing.T) {
	_, err := decode(t, `{"a/b": 1, "a/b": 2}`, eng.EnforceOptions{RejectDuplicates: true})
	var ie eng.IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Path != "/a~1b" {
		t.Fatalf("expected escaped pointer, got %q", ie.Path)
	}
}
