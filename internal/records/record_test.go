package records_test

import (
	"strings"
	"testing"

	"trackdesk/internal/records"
)

func TestJoinListDropsEmptyEntries(t *testing.T) {
	got := records.JoinList([]string{" rock ", "", "  ", "jazz"})
	if got != "rock,jazz" {
		t.Fatalf("JoinList = %q, want %q", got, "rock,jazz")
	}
}

func TestSplitListRoundTrip(t *testing.T) {
	joined := records.JoinList([]string{"a1", "b2", "c3"})
	parts := records.SplitList(joined)
	if len(parts) != 3 || parts[0] != "a1" || parts[2] != "c3" {
		t.Fatalf("SplitList(%q) = %v", joined, parts)
	}
}

func TestSplitListEmpty(t *testing.T) {
	if parts := records.SplitList("  "); parts != nil {
		t.Fatalf("SplitList of blank = %v, want nil", parts)
	}
	if parts := records.SplitList(", ,"); parts != nil {
		t.Fatalf("SplitList of separators = %v, want nil", parts)
	}
}

func TestBoolTokens(t *testing.T) {
	if records.BoolToken(true) != "TRUE" || records.BoolToken(false) != "FALSE" {
		t.Fatal("canonical bool tokens changed")
	}
	if !records.IsTrue(" true ") {
		t.Fatal("IsTrue should accept case and whitespace variants")
	}
	if records.IsTrue("yes") {
		t.Fatal("IsTrue must only accept the canonical token")
	}
}

func TestNewIDShape(t *testing.T) {
	id := records.NewID()
	if id == "" {
		t.Fatal("empty id")
	}
	if strings.Contains(id, "-") {
		t.Fatalf("id %q should be a single uuid segment", id)
	}
	if id == records.NewID() {
		t.Fatalf("consecutive ids collided: %s", id)
	}
}

func TestRecordValuesFollowsHeaderOrder(t *testing.T) {
	rec := records.Record{"b": "2", "a": "1"}
	values := rec.Values([]string{"a", "b", "c"})
	if values[0] != "1" || values[1] != "2" || values[2] != "" {
		t.Fatalf("Values = %v", values)
	}
}

func TestRecordClone(t *testing.T) {
	rec := records.Record{"a": "1"}
	clone := rec.Clone()
	clone["a"] = "2"
	if rec["a"] != "1" {
		t.Fatal("clone aliases the original")
	}
}
