package preg

import "strings"

// DefaultDelimiter is the delimiter character used by Create.
const DefaultDelimiter = "/"

// Create builds a delimited pattern from a bare expression and a flag
// string, using the default "/" delimiter. Literal, unescaped
// occurrences of the delimiter inside expr are escaped, so the caller
// never needs to pre-escape:
//
//	preg.Create("a/b", "i") // `/a\/b/i`
//
// Already escaped delimiters are left alone.
func Create(expr, flags string) string {
	var b strings.Builder
	b.Grow(len(expr) + len(flags) + 2)
	b.WriteString(DefaultDelimiter)

	escaped := false
	for _, r := range expr {
		if r == '/' && !escaped {
			b.WriteByte('\\')
		}
		if r == '\\' {
			escaped = !escaped
		} else {
			escaped = false
		}
		b.WriteRune(r)
	}

	b.WriteString(DefaultDelimiter)
	b.WriteString(flags)
	return b.String()
}

// CreateDelimited builds a delimited pattern with an explicit delimiter
// pair. The expression is concatenated verbatim as start+expr+end+flags;
// no escaping is performed, so expr must already be safe for the chosen
// delimiters. An empty end delimiter means end equals start.
//
//	preg.CreateDelimited(`\d+`, "m", "{", "}") // `{\d+}m`
func CreateDelimited(expr, flags, start, end string) string {
	if end == "" {
		end = start
	}
	return start + expr + end + flags
}
