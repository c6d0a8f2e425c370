package goshape_test

import (
	"fmt"
	"strings"
	"testing"

	goshape "github.com/reoring/goshape"
)

func TestIssues_Error_Rendering(t *testing.T) {
	iss := goshape.Issues{
		{Path: "/items/2", Code: goshape.CodeInvalidType, Message: "expected number, got string"},
	}
	got := iss.Error()
	want := "invalid_type at /items/2: expected number, got string"
	if got != want {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestIssues_Error_TruncatesLongLists(t *testing.T) {
	var iss goshape.Issues
	for i := 0; i < 5; i++ {
		iss = goshape.AppendIssues(iss, goshape.Issue{Path: fmt.Sprintf("/%d", i), Code: goshape.CodeRequired, Message: "required property missing"})
	}
	got := iss.Error()
	if !strings.Contains(got, "(total 5)") {
		t.Fatalf("expected total marker, got %q", got)
	}
	if strings.Count(got, "required at") != 3 {
		t.Fatalf("expected three rendered entries, got %q", got)
	}
}

func TestAsIssues(t *testing.T) {
	iss := goshape.Issues{{Path: "/", Code: goshape.CodeInvalidJSON, Message: "invalid JSON"}}

	got, ok := goshape.AsIssues(error(iss))
	if !ok || len(got) != 1 || got[0].Code != goshape.CodeInvalidJSON {
		t.Fatalf("expected issues back, got %v ok=%v", got, ok)
	}

	// wrapped errors unwrap too
	wrapped := fmt.Errorf("parse reply: %w", error(iss))
	if _, ok := goshape.AsIssues(wrapped); !ok {
		t.Fatalf("expected AsIssues to unwrap")
	}

	if _, ok := goshape.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}
