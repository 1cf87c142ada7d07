package preg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchLeftmost(t *testing.T) {
	m, err := MatchWithOffsets("/X/", "aXbXc", 0)
	if err != nil {
		t.Fatalf("MatchWithOffsets error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match, got nil")
	}
	if m.Group(0) != "X" || m.Offset(0) != 1 {
		t.Errorf("got %q at %d, want %q at 1", m.Group(0), m.Offset(0), "X")
	}
}

func TestMatchAtOffset(t *testing.T) {
	m, err := MatchWithOffsets("/X/", "aXbXc", 2)
	if err != nil {
		t.Fatalf("MatchWithOffsets error: %v", err)
	}
	if m == nil || m.Offset(0) != 3 {
		t.Fatalf("match at offset 2 = %v, want offset 3", m)
	}
}

func TestMatchNoMatch(t *testing.T) {
	m, err := Match(`/\d+/`, "no digits here", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil result for no match, got %v", m.Groups())
	}
}

func TestMatchGroups(t *testing.T) {
	m, err := Match(`/(\w+)@(\w+)\.(\w+)/`, "mail user@example.com today", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	want := []string{"user@example.com", "user", "example", "com"}
	if diff := cmp.Diff(want, m.Groups()); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
}

// A group that did not participate is an empty string with offset -1.
func TestMatchOptionalGroup(t *testing.T) {
	m, err := MatchWithOffsets("/(a)(b)?/", "a", 0)
	if err != nil {
		t.Fatalf("MatchWithOffsets error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if m.Group(2) != "" {
		t.Errorf("Group(2) = %q, want empty", m.Group(2))
	}
	if m.Offset(2) != -1 {
		t.Errorf("Offset(2) = %d, want -1", m.Offset(2))
	}
	if got := len(m.Offsets()); got != m.Len() {
		t.Errorf("len(Offsets()) = %d, want %d", got, m.Len())
	}
}

func TestMatchNamedGroup(t *testing.T) {
	m, err := Match(`/(?<year>\d{4})-(?<month>\d{2})/`, "due 2026-08", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	year, ok := m.NamedGroup("year")
	if !ok || year != "2026" {
		t.Errorf(`NamedGroup("year") = %q, %v, want "2026", true`, year, ok)
	}
	if _, ok := m.NamedGroup("day"); ok {
		t.Error(`NamedGroup("day") reported a group that does not exist`)
	}
}

func TestMatchAll(t *testing.T) {
	ms, err := MatchAll("/X/", "aXbXc", 0)
	if err != nil {
		t.Fatalf("MatchAll error: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("MatchAll found %d matches, want 2", len(ms))
	}
}

func TestMatchAllWithOffsets(t *testing.T) {
	ms, err := MatchAllWithOffsets("/X/", "aXbXc", 0)
	if err != nil {
		t.Fatalf("MatchAllWithOffsets error: %v", err)
	}
	var offsets []int
	for _, m := range ms {
		offsets = append(offsets, m.Offset(0))
	}
	if diff := cmp.Diff([]int{1, 3}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

// No match is an empty sequence, never nil.
func TestMatchAllEmpty(t *testing.T) {
	ms, err := MatchAll(`/\d/`, "abc", 0)
	if err != nil {
		t.Fatalf("MatchAll error: %v", err)
	}
	if ms == nil {
		t.Fatal("MatchAll returned nil, want empty slice")
	}
	if len(ms) != 0 {
		t.Errorf("MatchAll found %d matches, want 0", len(ms))
	}
}

func TestMatchAllNonOverlapping(t *testing.T) {
	ms, err := MatchAll("/aa/", "aaaa", 0)
	if err != nil {
		t.Fatalf("MatchAll error: %v", err)
	}
	if len(ms) != 2 {
		t.Errorf("MatchAll(/aa/, aaaa) found %d matches, want 2", len(ms))
	}
}

// Offsets are rune offsets, matching the engine's native addressing.
func TestMatchRuneOffsets(t *testing.T) {
	m, err := MatchWithOffsets("/X/u", "äöX", 0)
	if err != nil {
		t.Fatalf("MatchWithOffsets error: %v", err)
	}
	if m == nil || m.Offset(0) != 2 {
		t.Fatalf("match = %v, want rune offset 2", m)
	}
}

// A nonzero offset into a multibyte subject counts runes, not bytes.
func TestMatchMultibyteOffset(t *testing.T) {
	m, err := Match("/X/", "äX", 1)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil || m.Group(0) != "X" {
		t.Fatalf("match = %v, want X at rune offset 1", m)
	}

	mo, err := MatchWithOffsets("/./", "ééX", 2)
	if err != nil {
		t.Fatalf("MatchWithOffsets error: %v", err)
	}
	if mo == nil || mo.Group(0) != "X" || mo.Offset(0) != 2 {
		t.Fatalf("match = %v, want X at rune offset 2", mo)
	}
}

func TestMatchAllMultibyteOffset(t *testing.T) {
	ms, err := MatchAllWithOffsets("/o/", "höhö oo", 3)
	if err != nil {
		t.Fatalf("MatchAllWithOffsets error: %v", err)
	}
	var offsets []int
	for _, m := range ms {
		offsets = append(offsets, m.Offset(0))
	}
	if diff := cmp.Diff([]int{5, 6}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

// The r flag scans right to left, so the rightmost match wins.
func TestMatchRightToLeft(t *testing.T) {
	m, err := MatchWithOffsets("/a/r", "aba", 0)
	if err != nil {
		t.Fatalf("MatchWithOffsets error: %v", err)
	}
	if m == nil || m.Offset(0) != 2 {
		t.Fatalf("match = %v, want offset 2", m)
	}
}

// offset bounds a right-to-left search window on the left.
func TestMatchRightToLeftOffsetWindow(t *testing.T) {
	m, err := MatchWithOffsets("/a/r", "abb", 1)
	if err != nil {
		t.Fatalf("MatchWithOffsets error: %v", err)
	}
	if m != nil {
		t.Errorf("match = %v, want nil: the only match starts before the offset", m)
	}
}

// Right-to-left enumeration is returned in ascending subject order.
func TestMatchAllRightToLeft(t *testing.T) {
	ms, err := MatchAllWithOffsets("/a./r", "axay", 0)
	if err != nil {
		t.Fatalf("MatchAllWithOffsets error: %v", err)
	}
	var offsets []int
	for _, m := range ms {
		offsets = append(offsets, m.Offset(0))
	}
	if diff := cmp.Diff([]int{0, 2}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestTest(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		want    bool
	}{
		{`/\d+/`, "age 42", true},
		{`/\d+/`, "none", false},
		{"/ab/i", "drAB", true},
	}

	for _, tt := range tests {
		got, err := Test(tt.pattern, tt.subject)
		if err != nil {
			t.Fatalf("Test(%q, %q) error: %v", tt.pattern, tt.subject, err)
		}
		if got != tt.want {
			t.Errorf("Test(%q, %q) = %v, want %v", tt.pattern, tt.subject, got, tt.want)
		}
	}
}

func TestCaseInsensitiveFlag(t *testing.T) {
	m, err := Match("/hello/i", "say HELLO", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m == nil || m.Group(0) != "HELLO" {
		t.Errorf("match = %v, want HELLO", m)
	}
}
