package preg

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Replacement is the sealed set of replacement forms accepted by the
// Replace family. The concrete types are Template, Literal, Callback,
// and Templates; nothing outside this package can implement it.
//
// Template and Templates expand the backreference syntaxes \n, $n and
// ${n} against each match. Literal and Callback output is substituted
// verbatim, with no expansion applied.
type Replacement interface {
	replacement()
}

// Template is a replacement string with backreference expansion:
// \1, $1 and ${1} all insert the text of group 1, and \0/$0/${0} the
// whole match. A reference to a group the pattern does not define, or
// one that did not participate in the match, expands to nothing.
type Template string

// Literal is a replacement string substituted verbatim; no
// backreference syntax is recognized.
type Literal string

// Callback is invoked once per match with that match's captured groups
// and its return value is substituted verbatim. Using this type forces
// callback interpretation; there is no runtime ambiguity with string
// replacements.
type Callback func(*MatchResult) string

// Templates is a positional sequence of Template strings for the
// broadcast forms of Replace. Entry i pairs with pattern/subject i;
// missing trailing entries behave as empty-string templates, never as
// an error.
type Templates []string

func (Template) replacement()  {}
func (Literal) replacement()   {}
func (Callback) replacement()  {}
func (Templates) replacement() {}

// resolveReplacement selects the replacement for broadcast position i.
func resolveReplacement(repl Replacement, i int) Replacement {
	ts, ok := repl.(Templates)
	if !ok {
		return repl
	}
	if i < len(ts) {
		return Template(ts[i])
	}
	return Template("")
}

// Replace returns subject with up to limit non-overlapping matches of
// pattern replaced. limit < 0 means unbounded. A subject with no match
// is returned unchanged.
//
// Example:
//
//	out, err := preg.Replace(`/(\w+)@(\w+)/`, "user@example", preg.Template("$2.$1"), -1)
//	// out == "example.user"
func Replace(pattern, subject string, repl Replacement, limit int) (string, error) {
	out, _, err := ReplaceCount(pattern, subject, repl, limit)
	return out, err
}

// ReplaceCount is Replace paired with the number of substitutions
// performed.
func ReplaceCount(pattern, subject string, repl Replacement, limit int) (string, int, error) {
	c, err := compilePattern(pattern)
	if err != nil {
		return "", 0, err
	}
	return replaceCompiled(c, subject, resolveReplacement(repl, 0), limit)
}

// ReplaceEach applies a sequence of patterns to a single subject, left
// to right; each successive replace operates on the output of the
// previous one, so the sequence behaves like OR-ed alternatives. A
// Templates replacement pairs with the pattern sequence by position.
func ReplaceEach(patterns []string, subject string, repl Replacement, limit int) (string, error) {
	out, _, err := ReplaceEachCount(patterns, subject, repl, limit)
	return out, err
}

// ReplaceEachCount is ReplaceEach paired with the total number of
// substitutions across all patterns.
func ReplaceEachCount(patterns []string, subject string, repl Replacement, limit int) (string, int, error) {
	total := 0
	for i, pattern := range patterns {
		c, err := compilePattern(pattern)
		if err != nil {
			return "", 0, err
		}
		out, n, err := replaceCompiled(c, subject, resolveReplacement(repl, i), limit)
		if err != nil {
			return "", 0, err
		}
		subject, total = out, total+n
	}
	return subject, total, nil
}

// ReplaceSlice applies the replacement across a subject sequence and
// returns the replaced sequence in the same order and length. A single
// pattern broadcasts over every subject; a pattern sequence pairs with
// the subjects by position, and subjects beyond the pattern sequence
// pass through unchanged. A Templates replacement pairs by the same
// position. limit applies per subject.
func ReplaceSlice(patterns, subjects []string, repl Replacement, limit int) ([]string, error) {
	out, _, err := ReplaceSliceCount(patterns, subjects, repl, limit)
	return out, err
}

// ReplaceSliceCount is ReplaceSlice paired with the total number of
// substitutions across all subjects.
func ReplaceSliceCount(patterns, subjects []string, repl Replacement, limit int) ([]string, int, error) {
	out, _, total, err := broadcastReplace(patterns, subjects, repl, limit)
	return out, total, err
}

// ReplaceFiltered is ReplaceSlice, except that only the subjects where
// at least one substitution occurred are retained in the output. Order
// is preserved; positions collapse.
func ReplaceFiltered(patterns, subjects []string, repl Replacement, limit int) ([]string, error) {
	out, _, err := ReplaceFilteredCount(patterns, subjects, repl, limit)
	return out, err
}

// ReplaceFilteredCount is ReplaceFiltered paired with the total number
// of substitutions.
func ReplaceFilteredCount(patterns, subjects []string, repl Replacement, limit int) ([]string, int, error) {
	replaced, counts, total, err := broadcastReplace(patterns, subjects, repl, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]string, 0, len(replaced))
	for i, s := range replaced {
		if counts[i] > 0 {
			out = append(out, s)
		}
	}
	return out, total, nil
}

// broadcastReplace is the positional pairing core shared by the slice
// forms: subject i pairs with pattern i (or with the single pattern
// when only one is given) and with replacement position i.
func broadcastReplace(patterns, subjects []string, repl Replacement, limit int) ([]string, []int, int, error) {
	out := make([]string, len(subjects))
	counts := make([]int, len(subjects))
	total := 0

	for i, subject := range subjects {
		var pattern string
		switch {
		case len(patterns) == 1:
			pattern = patterns[0]
		case i < len(patterns):
			pattern = patterns[i]
		default:
			// Subject has no paired pattern; passes through.
			out[i] = subject
			continue
		}

		c, err := compilePattern(pattern)
		if err != nil {
			return nil, nil, 0, err
		}
		replaced, n, err := replaceCompiled(c, subject, resolveReplacement(repl, i), limit)
		if err != nil {
			return nil, nil, 0, err
		}
		out[i], counts[i] = replaced, n
		total += n
	}
	return out, counts, total, nil
}

// replaceCompiled performs the actual substitution for one pattern and
// one subject, building the output around the enumerated matches.
func replaceCompiled(c *compiled, subject string, repl Replacement, limit int) (string, int, error) {
	if limit == 0 {
		return subject, 0, nil
	}
	matches, err := allCompiledMatches(c, subject, 0, limit)
	if err != nil {
		return "", 0, err
	}
	if len(matches) == 0 {
		return subject, 0, nil
	}

	runes := []rune(subject)
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(string(runes[last:m.Index]))
		switch r := repl.(type) {
		case Template:
			expand(&b, string(r), m)
		case Literal:
			b.WriteString(string(r))
		case Callback:
			b.WriteString(r(newMatchResult(m)))
		}
		last = m.Index + m.Length
	}
	b.WriteString(string(runes[last:]))
	return b.String(), len(matches), nil
}

// expand appends template to b, substituting backreferences against m.
// Recognized forms: \N, $N (N up to two digits) and ${N...}. A
// backslash escapes a following backslash; any other lone '\' or '$'
// is emitted literally.
func expand(b *strings.Builder, template string, m *regexp2.Match) {
	for i := 0; i < len(template); {
		ch := template[i]
		if ch != '\\' && ch != '$' {
			b.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(template) {
			b.WriteByte(ch)
			i++
			continue
		}

		next := template[i+1]
		switch {
		case ch == '\\' && next == '\\':
			b.WriteByte('\\')
			i += 2
		case next >= '0' && next <= '9':
			n, w := refNumber(template[i+1:])
			b.WriteString(groupText(m, n))
			i += 1 + w
		case ch == '$' && next == '{':
			n, w, ok := bracedRef(template[i+2:])
			if !ok {
				b.WriteByte('$')
				i++
				break
			}
			b.WriteString(groupText(m, n))
			i += 2 + w + 1
		default:
			b.WriteByte(ch)
			i++
		}
	}
}

// refNumber reads a group number of up to two digits and returns it
// with the number of bytes consumed.
func refNumber(s string) (n, width int) {
	n = int(s[0] - '0')
	width = 1
	if len(s) > 1 && s[1] >= '0' && s[1] <= '9' {
		n = n*10 + int(s[1]-'0')
		width = 2
	}
	return n, width
}

// bracedRef reads the digits of a ${N} reference up to the closing
// brace. width is the number of digit bytes consumed.
func bracedRef(s string) (n, width int, ok bool) {
	for width < len(s) && s[width] >= '0' && s[width] <= '9' {
		n = n*10 + int(s[width]-'0')
		width++
	}
	if width == 0 || width >= len(s) || s[width] != '}' {
		return 0, 0, false
	}
	return n, width, true
}

func groupText(m *regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
