package preg

import "github.com/dlclark/regexp2"

// Segment is one piece of a WithOffsets split: the segment text paired
// with its starting rune offset in the original subject.
type Segment struct {
	Text   string
	Offset int
}

// Split slices subject around each match of pattern and returns the
// segments between the matches, including the text before the first
// and after the last. A positive limit caps the number of returned
// segments, with the unsplit remainder as the last one; limit <= 0
// means unbounded.
//
// Example:
//
//	parts, err := preg.Split(`/[\s,]+/`, "a, b  c", -1)
//	// parts == []string{"a", "b", "c"}
func Split(pattern, subject string, limit int) ([]string, error) {
	segs, err := splitSegments(pattern, subject, limit, true, false)
	if err != nil {
		return nil, err
	}
	return segmentTexts(segs), nil
}

// SplitWithOffsets is Split with each segment paired with its starting
// rune offset in subject.
func SplitWithOffsets(pattern, subject string, limit int) ([]Segment, error) {
	return splitSegments(pattern, subject, limit, true, false)
}

// SplitFiltered is Split with empty segments omitted from the result.
func SplitFiltered(pattern, subject string, limit int) ([]string, error) {
	segs, err := splitSegments(pattern, subject, limit, false, false)
	if err != nil {
		return nil, err
	}
	return segmentTexts(segs), nil
}

// SplitFilteredWithOffsets combines SplitFiltered and
// SplitWithOffsets.
func SplitFilteredWithOffsets(pattern, subject string, limit int) ([]Segment, error) {
	return splitSegments(pattern, subject, limit, false, false)
}

// SplitInclusive is Split with the delimiter retained: the text
// matched by the pattern's first capture group is interleaved between
// the segments. When the pattern has no capture group the whole
// matched text is interleaved instead, so concatenating the result
// always reproduces the subject.
func SplitInclusive(pattern, subject string, limit int) ([]string, error) {
	segs, err := splitSegments(pattern, subject, limit, true, true)
	if err != nil {
		return nil, err
	}
	return segmentTexts(segs), nil
}

// SplitInclusiveWithOffsets combines SplitInclusive and
// SplitWithOffsets.
func SplitInclusiveWithOffsets(pattern, subject string, limit int) ([]Segment, error) {
	return splitSegments(pattern, subject, limit, true, true)
}

func segmentTexts(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text
	}
	return out
}

func splitSegments(pattern, subject string, limit int, keepEmpty, inclusive bool) ([]Segment, error) {
	matches, err := allMatches(pattern, subject, 0, -1)
	if err != nil {
		return nil, err
	}

	runes := []rune(subject)
	segs := []Segment{}
	last := 0
	nsplits := 0

	for _, m := range matches {
		if limit > 0 && nsplits >= limit-1 {
			break
		}
		text := string(runes[last:m.Index])
		if keepEmpty || text != "" {
			segs = append(segs, Segment{Text: text, Offset: last})
		}
		if inclusive {
			d := delimSegment(m)
			if keepEmpty || d.Text != "" {
				segs = append(segs, d)
			}
		}
		last = m.Index + m.Length
		nsplits++
	}

	rest := string(runes[last:])
	if keepEmpty || rest != "" {
		segs = append(segs, Segment{Text: rest, Offset: last})
	}
	return segs, nil
}

// delimSegment extracts the delimiter text interleaved by the
// inclusive split forms: the first capture group when the pattern has
// one, the whole match otherwise.
func delimSegment(m *regexp2.Match) Segment {
	if m.GroupCount() > 1 {
		g := m.GroupByNumber(1)
		if g == nil || len(g.Captures) == 0 {
			return Segment{Text: "", Offset: m.Index}
		}
		return Segment{Text: g.String(), Offset: g.Index}
	}
	return Segment{Text: m.String(), Offset: m.Index}
}
