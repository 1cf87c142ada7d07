package preg

import (
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/coregx/preg/internal/delim"
)

// MatchTimeout bounds the time the engine may spend on a single match
// attempt. Exceeding it surfaces as a CodeBacktrackLimit error, the
// engine's equivalent of a backtracking budget. The zero value means
// unbounded.
//
// The timeout is captured when a pattern is first compiled; call
// ResetCache to apply a new value to patterns compiled earlier.
var MatchTimeout time.Duration

// compiled pairs an engine pattern with the facade-level options parsed
// from its flag string.
type compiled struct {
	re     *regexp2.Regexp
	strict bool // "u" flag: validate subject UTF-8
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*compiled)
)

// ResetCache empties the compiled-pattern cache.
func ResetCache() {
	cacheMu.Lock()
	cache = make(map[string]*compiled)
	cacheMu.Unlock()
}

// compilePattern parses a delimited pattern and compiles it with the
// engine, consulting the cache first. Compiled patterns are safe for
// concurrent use, so cache entries are shared freely.
func compilePattern(pattern string) (*compiled, error) {
	cacheMu.RLock()
	c := cache[pattern]
	cacheMu.RUnlock()
	if c != nil {
		return c, nil
	}

	p, err := delim.Parse(pattern)
	if err != nil {
		return nil, &Error{Code: CodeBadPattern, Message: err.Error()}
	}

	opts, strict, ferr := parseFlags(p.Flags)
	if ferr != nil {
		return nil, ferr
	}

	re, err := regexp2.Compile(p.Expr, opts)
	if err != nil {
		return nil, &Error{
			Code:    CodeBadPattern,
			Message: "Compilation failed: " + err.Error(),
			Err:     err,
		}
	}
	if MatchTimeout > 0 {
		re.MatchTimeout = MatchTimeout
	}

	c = &compiled{re: re, strict: strict}
	cacheMu.Lock()
	cache[pattern] = c
	cacheMu.Unlock()
	return c, nil
}

// parseFlags maps the trailing modifier characters of a delimited
// pattern onto engine options.
//
//	i  case-insensitive
//	m  multiline: ^ and $ match at line boundaries
//	s  dot matches newline
//	x  ignore pattern whitespace, allow # comments
//	n  explicit capture: plain (...) groups do not capture
//	r  right-to-left matching
//	u  strict UTF-8: reject invalid subjects (the engine always
//	   addresses text as code points, so this affects validation only)
func parseFlags(flags string) (regexp2.RegexOptions, bool, *Error) {
	opts := regexp2.None
	strict := false
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		case 'n':
			opts |= regexp2.ExplicitCapture
		case 'r':
			opts |= regexp2.RightToLeft
		case 'u':
			strict = true
		default:
			return 0, false, newError(CodeBadPattern, "Unknown modifier '%c'", f)
		}
	}
	return opts, strict, nil
}

// matchTimeoutPrefix is the fixed prefix of the error the engine
// returns when a match attempt exceeds its MatchTimeout. The engine
// exposes no typed error for this, only the message.
const matchTimeoutPrefix = "match timeout after"

// matchError translates an engine failure reported during matching.
// Exceeding the match timeout means the backtracking budget was
// exhausted; anything else is an internal engine error and the
// engine's detail is kept in the message.
func matchError(err error) *Error {
	if strings.HasPrefix(err.Error(), matchTimeoutPrefix) {
		return &Error{
			Code:    CodeBacktrackLimit,
			Message: ErrorString(CodeBacktrackLimit),
			Err:     err,
		}
	}
	return &Error{
		Code:    CodeInternal,
		Message: ErrorString(CodeInternal) + ": " + err.Error(),
		Err:     err,
	}
}
