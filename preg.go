// Package preg is a thin, ergonomic facade over a PCRE-compatible
// regular-expression engine, modeled on the preg_* family of functions.
//
// Patterns are delimited strings in the familiar form "/expr/flags":
//
//	m, err := preg.Match(`/(\w+)@(\w+)/i`, "mail User@Example today", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Group(1)) // "User"
//
// preg performs no matching of its own. Every evaluation is delegated to
// the regexp2 engine; this package only normalizes delimiter handling,
// translates engine failures into typed errors, and offers ergonomic
// match, replace, split, and filter operations, including the
// scalar-vs-sequence broadcast semantics of Replace.
//
// A "no match" outcome is never an error. Single-match operations return
// a nil result, enumerating operations return an empty slice, and a
// non-nil error always means the pattern was malformed or the engine
// failed. Callers distinguish the two by outcome shape, never by
// inspecting ambient error state.
//
// All offsets produced and consumed by this package are rune offsets
// into the subject, matching the engine's native addressing.
//
// Every function is stateless and safe for concurrent use. The only
// shared state is the compiled-pattern cache, which is internally
// synchronized.
package preg

// quoteSpecial is the set of characters escaped by Quote. It mirrors the
// metacharacter set of preg_quote.
const quoteSpecial = ".\\+*?[^]$(){}=!<>|:-#"

// Quote returns a string with every regular-expression metacharacter in
// s escaped with a backslash. The result matches s literally when used
// inside a pattern.
//
// Example:
//
//	preg.Quote("1+1=2") // `1\+1\=2`
func Quote(s string) string {
	return QuoteDelimited(s, "")
}

// QuoteDelimited is Quote with an additional delimiter character to
// escape. Use it when the quoted text will be embedded in a pattern
// built with a custom delimiter:
//
//	preg.QuoteDelimited("40% off", "%") // `40\% off`
//
// Only the first character of delim is considered; an empty delim
// escapes metacharacters only.
func QuoteDelimited(s, delim string) string {
	var d byte
	if delim != "" {
		d = delim[0]
	}

	// Count first so the common no-escape case allocates nothing.
	n := 0
	for i := 0; i < len(s); i++ {
		if isQuoteSpecial(s[i], d) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isQuoteSpecial(s[i], d) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func isQuoteSpecial(c, delim byte) bool {
	if c != 0 && c == delim {
		return true
	}
	for i := 0; i < len(quoteSpecial); i++ {
		if c == quoteSpecial[i] {
			return true
		}
	}
	return false
}
