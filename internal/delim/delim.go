// Package delim parses delimited pattern strings of the form
// "/expr/flags" into their expression and flag parts.
//
// The delimiter is the first character of the pattern and may be any
// non-alphanumeric, non-backslash, non-whitespace character. The four
// bracket pairs (), {}, [] and <> delimit with their matching closer,
// found by counting nesting depth with backslash escapes honored.
// Flags follow the closing delimiter. For every other delimiter the
// closer is the last occurrence of the delimiter character, so
// trailing flags never need escaping.
package delim

import (
	"fmt"
	"strings"
	"unicode"
)

// Parsed is the decomposition of a delimited pattern.
type Parsed struct {
	Expr  string // the bare expression between the delimiters
	Flags string // the trailing modifier characters, may be empty
}

// closerFor maps an opening bracket delimiter to its closer. For every
// other delimiter the closer is the delimiter itself.
func closerFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '{':
		return '}'
	case '[':
		return ']'
	case '<':
		return '>'
	}
	return open
}

// Parse splits a delimited pattern into expression and flags. It
// validates only the delimiter structure; expression syntax and flag
// validity are the caller's concern.
func Parse(pattern string) (Parsed, error) {
	if pattern == "" {
		return Parsed{}, fmt.Errorf("Empty regular expression")
	}

	open := pattern[0]
	if open < 0x20 || open >= 0x80 ||
		unicode.IsLetter(rune(open)) || unicode.IsDigit(rune(open)) ||
		unicode.IsSpace(rune(open)) || open == '\\' {
		return Parsed{}, fmt.Errorf("Delimiter must not be alphanumeric, backslash, or NUL")
	}

	closer := closerFor(open)
	if closer != open {
		// Bracket delimiters nest: the closer is the one that brings
		// the depth back to zero, skipping escaped characters.
		depth := 0
		for i := 1; i < len(pattern); i++ {
			switch pattern[i] {
			case '\\':
				i++
			case open:
				depth++
			case closer:
				if depth == 0 {
					return Parsed{
						Expr:  pattern[1:i],
						Flags: pattern[i+1:],
					}, nil
				}
				depth--
			}
		}
		return Parsed{}, fmt.Errorf("No ending matching delimiter '%c' found", closer)
	}

	end := strings.LastIndexByte(pattern[1:], closer)
	if end < 0 {
		return Parsed{}, fmt.Errorf("No ending delimiter '%c' found", closer)
	}
	end++ // index into pattern, past the opener

	return Parsed{
		Expr:  pattern[1:end],
		Flags: pattern[end+1:],
	}, nil
}
