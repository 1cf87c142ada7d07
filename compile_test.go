package preg

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// Cache hits must be transparent: the same pattern behaves identically
// before and after caching, and after a reset.
func TestPatternCacheTransparent(t *testing.T) {
	const pattern = `/cache-\d+/`

	for i := 0; i < 3; i++ {
		ok, err := Test(pattern, "cache-42")
		if err != nil {
			t.Fatalf("Test error on call %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("Test = false on call %d", i)
		}
		if i == 1 {
			ResetCache()
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	patterns := []string{`/\d+/`, "/[a-z]+/", "/(X)(Y)?/"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p := patterns[(i+j)%len(patterns)]
				if _, err := Match(p, "abc 123 XY", 0); err != nil {
					t.Errorf("Match(%q): %v", p, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

// Only the engine's own timeout message maps to the backtracking
// budget error; every other engine failure is internal and keeps the
// engine's detail in the message.
func TestMatchErrorClassification(t *testing.T) {
	timeout := errors.New("match timeout after 10ms on input `aaab`")
	if got := matchError(timeout); got.Code != CodeBacktrackLimit {
		t.Errorf("timeout error classified as %v, want CodeBacktrackLimit", got.Code)
	}

	other := errors.New("unexpected bytecode at pc 7, timeout disabled")
	got := matchError(other)
	if got.Code != CodeInternal {
		t.Errorf("engine error classified as %v, want CodeInternal", got.Code)
	}
	if !strings.Contains(got.Message, "unexpected bytecode at pc 7") {
		t.Errorf("message %q dropped the engine detail", got.Message)
	}
	if !errors.Is(got, other) {
		t.Error("engine error not wrapped")
	}
}

// Exceeding the backtracking budget surfaces as CodeBacktrackLimit.
func TestMatchTimeoutMapsToBacktrackLimit(t *testing.T) {
	defer func() {
		MatchTimeout = 0
		ResetCache()
	}()
	ResetCache()
	MatchTimeout = 10 * time.Millisecond

	subject := strings.Repeat("a", 30) + "b"
	_, err := Test("/(a|aa)+$/", subject)
	if err == nil {
		t.Skip("engine finished inside the timeout")
	}

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not *preg.Error", err)
	}
	if perr.Code != CodeBacktrackLimit {
		t.Errorf("code = %v, want CodeBacktrackLimit", perr.Code)
	}
	if perr.Unwrap() == nil {
		t.Error("timeout failure carries no wrapped engine error")
	}
}
