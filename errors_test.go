package numeral_test

import (
	"fmt"
	"strings"
	"testing"

	numeral "github.com/reoring/numeral"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := numeral.Issues{
		{Code: numeral.CodeNoMatch, Message: "a"},
		{Code: numeral.CodeOverflow, Message: "b"},
		{Code: numeral.CodeInvalidConfig, Message: "c"},
		{Code: numeral.CodeNotRepresentable, Message: "d"},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "no_match: a") {
		t.Fatalf("missing first issue: %q", msg)
	}
	if !strings.Contains(msg, "total 4") {
		t.Fatalf("missing overflow count: %q", msg)
	}
	if strings.Contains(msg, "not_representable") {
		t.Fatalf("summary should stop at three issues: %q", msg)
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	_, _, err := mustFloatT(t).Read("x")
	wrapped := fmt.Errorf("template field price: %w", err)

	iss, ok := numeral.AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Code != numeral.CodeNoMatch {
		t.Fatalf("unexpected extraction: %v ok=%v", iss, ok)
	}
	if !numeral.IsNoMatch(wrapped) {
		t.Fatalf("predicate must see through wrapping")
	}
	if numeral.IsNoMatch(nil) {
		t.Fatalf("nil is not a no_match")
	}
}

func TestAppendIssues(t *testing.T) {
	var iss numeral.Issues
	iss = numeral.AppendIssues(iss, numeral.Issue{Code: numeral.CodeNoMatch})
	iss = numeral.AppendIssues(iss, numeral.Issue{Code: numeral.CodeOverflow})
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(iss))
	}
}
