package preg

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// MatchResult holds the ordered group strings of a single successful
// match attempt. Index 0 is the whole-pattern match; indices >= 1 are
// the capture groups in declaration order. A group that did not
// participate in the match is present as an empty string.
//
// A MatchResult is immutable after construction.
type MatchResult struct {
	groups []string
	names  []string // engine group names, index-aligned with groups
}

// Len returns the number of groups, including group 0.
func (r *MatchResult) Len() int { return len(r.groups) }

// Group returns the text of group i, or "" if i is out of range or the
// group did not participate in the match.
func (r *MatchResult) Group(i int) string {
	if i < 0 || i >= len(r.groups) {
		return ""
	}
	return r.groups[i]
}

// Groups returns a copy of all group strings, group 0 first.
func (r *MatchResult) Groups() []string {
	out := make([]string, len(r.groups))
	copy(out, r.groups)
	return out
}

// NamedGroup returns the text of the named capture group and whether a
// group with that name exists in the pattern.
func (r *MatchResult) NamedGroup(name string) (string, bool) {
	for i, n := range r.names {
		if n == name {
			return r.groups[i], true
		}
	}
	return "", false
}

// String returns the whole-pattern match (group 0).
func (r *MatchResult) String() string { return r.Group(0) }

// MatchResultWithOffsets extends MatchResult with the starting rune
// offset of every group in the subject. The offset slice is
// index-aligned with the group slice; -1 marks a group that did not
// participate in the match.
type MatchResultWithOffsets struct {
	MatchResult
	offsets []int
}

// Offset returns the starting rune offset of group i in the subject,
// or -1 if i is out of range or the group did not participate.
func (r *MatchResultWithOffsets) Offset(i int) int {
	if i < 0 || i >= len(r.offsets) {
		return -1
	}
	return r.offsets[i]
}

// Offsets returns a copy of all group offsets, index-aligned with
// Groups.
func (r *MatchResultWithOffsets) Offsets() []int {
	out := make([]int, len(r.offsets))
	copy(out, r.offsets)
	return out
}

func newMatchResult(m *regexp2.Match) *MatchResult {
	gs := m.Groups()
	r := &MatchResult{
		groups: make([]string, len(gs)),
		names:  make([]string, len(gs)),
	}
	for i := range gs {
		g := &gs[i]
		r.names[i] = g.Name
		if len(g.Captures) > 0 {
			r.groups[i] = g.String()
		}
	}
	return r
}

func newMatchResultWithOffsets(m *regexp2.Match) *MatchResultWithOffsets {
	gs := m.Groups()
	r := &MatchResultWithOffsets{
		MatchResult: *newMatchResult(m),
		offsets:     make([]int, len(gs)),
	}
	for i := range gs {
		if len(gs[i].Captures) > 0 {
			r.offsets[i] = gs[i].Index
		} else {
			r.offsets[i] = -1
		}
	}
	return r
}

// Match returns the first match of pattern in subject starting at or
// after the given rune offset, or nil if there is none. A nil result
// with a nil error means "no match"; a non-nil error means the pattern
// was malformed or the engine failed.
//
// For a right-to-left pattern (flag r) the scan starts at the
// subject's end, so the rightmost match at or after offset wins.
//
// Example:
//
//	m, err := preg.Match(`/\d+/`, "age: 42", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Group(0)) // "42"
func Match(pattern, subject string, offset int) (*MatchResult, error) {
	m, err := firstMatch(pattern, subject, offset)
	if err != nil || m == nil {
		return nil, err
	}
	return newMatchResult(m), nil
}

// MatchWithOffsets is Match with per-group starting offsets captured
// alongside the group text. Offsets are absolute rune positions in
// subject; -1 marks a non-participating group.
func MatchWithOffsets(pattern, subject string, offset int) (*MatchResultWithOffsets, error) {
	m, err := firstMatch(pattern, subject, offset)
	if err != nil || m == nil {
		return nil, err
	}
	return newMatchResultWithOffsets(m), nil
}

// MatchAll returns every non-overlapping match of pattern in subject,
// scanning from the given rune offset. The result is in ascending
// subject order even for a right-to-left pattern, and is empty, never
// nil, when there is no match.
func MatchAll(pattern, subject string, offset int) ([]*MatchResult, error) {
	ms, err := allMatches(pattern, subject, offset, -1)
	if err != nil {
		return nil, err
	}
	out := make([]*MatchResult, len(ms))
	for i, m := range ms {
		out[i] = newMatchResult(m)
	}
	return out, nil
}

// MatchAllWithOffsets is MatchAll with per-group starting offsets.
func MatchAllWithOffsets(pattern, subject string, offset int) ([]*MatchResultWithOffsets, error) {
	ms, err := allMatches(pattern, subject, offset, -1)
	if err != nil {
		return nil, err
	}
	out := make([]*MatchResultWithOffsets, len(ms))
	for i, m := range ms {
		out[i] = newMatchResultWithOffsets(m)
	}
	return out, nil
}

// Test reports whether pattern matches subject at all. It is the
// boolean shorthand for Match(pattern, subject, 0) != nil.
func Test(pattern, subject string) (bool, error) {
	c, err := compilePattern(pattern)
	if err != nil {
		return false, err
	}
	if err := checkSubject(c, subject); err != nil {
		return false, err
	}
	ok, merr := c.re.MatchString(subject)
	if merr != nil {
		return false, matchError(merr)
	}
	return ok, nil
}

// checkSubject applies the facade-level subject validation implied by
// the pattern's flags.
func checkSubject(c *compiled, subject string) error {
	if c.strict && !utf8.ValidString(subject) {
		return &Error{Code: CodeBadUTF8, Message: ErrorString(CodeBadUTF8)}
	}
	return nil
}

// checkOffset validates a starting rune offset against the subject's
// length in runes.
func checkOffset(runeLen, offset int) error {
	if offset < 0 || offset > runeLen {
		return &Error{Code: CodeBadUTF8Offset, Message: ErrorString(CodeBadUTF8Offset)}
	}
	return nil
}

// firstMatch finds the first match at or after the given rune offset.
// The subject is handed to the engine as a rune slice so that offset
// and the reported group positions share the same addressing. A
// right-to-left pattern is scanned from the subject's end; offset is
// then the left edge of the search window.
func firstMatch(pattern, subject string, offset int) (*regexp2.Match, error) {
	c, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	if err := checkSubject(c, subject); err != nil {
		return nil, err
	}
	runes := []rune(subject)
	if err := checkOffset(len(runes), offset); err != nil {
		return nil, err
	}
	start := offset
	if c.re.RightToLeft() {
		start = len(runes)
	}
	m, merr := c.re.FindRunesMatchStartingAt(runes, start)
	if merr != nil {
		return nil, matchError(merr)
	}
	if m != nil && m.Index < offset {
		// Right-to-left scan ran past the window's left edge.
		return nil, nil
	}
	return m, nil
}

func allMatches(pattern, subject string, offset, limit int) ([]*regexp2.Match, error) {
	c, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return allCompiledMatches(c, subject, offset, limit)
}

// allCompiledMatches enumerates non-overlapping matches in ascending
// subject order. A right-to-left pattern is scanned from the subject's
// end and the collected matches reversed, so callers always receive
// them left to right. A positive limit caps the number of matches
// returned; limit < 0 means unbounded. The engine advances past empty
// matches itself, so the enumeration always terminates.
func allCompiledMatches(c *compiled, subject string, offset, limit int) ([]*regexp2.Match, error) {
	if err := checkSubject(c, subject); err != nil {
		return nil, err
	}
	runes := []rune(subject)
	if err := checkOffset(len(runes), offset); err != nil {
		return nil, err
	}

	rtl := c.re.RightToLeft()
	start := offset
	if rtl {
		start = len(runes)
	}

	var out []*regexp2.Match
	prev := -1
	m, merr := c.re.FindRunesMatchStartingAt(runes, start)
	for merr == nil && m != nil {
		if rtl {
			// The scan moves strictly leftward. A match left of the
			// window edge, or one that failed to advance, ends it.
			if m.Index < offset || (prev >= 0 && m.Index >= prev) {
				break
			}
			prev = m.Index
		}
		out = append(out, m)
		if limit > 0 && len(out) >= limit {
			break
		}
		m, merr = c.re.FindNextMatch(m)
	}
	if merr != nil {
		return nil, matchError(merr)
	}
	if rtl {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}
