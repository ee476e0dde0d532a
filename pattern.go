package isoval

import (
	"regexp"
	"sync"
)

// Compiled patterns are cached process-wide, keyed by pattern text. The cache
// holds no document state; it only grows while new catalog patterns are first
// seen and is read-only afterwards.
var (
	patternMu    sync.RWMutex
	patternCache = map[string]*regexp.Regexp{}
)

// compiledPattern returns the compiled, anchored form of pattern. Schema
// patterns constrain the whole value, so the text is wrapped in \A(?:...)\z
// before compiling. Pattern texts are catalog constants; an invalid one is a
// programming error and panics at first use.
func compiledPattern(pattern string) *regexp.Regexp {
	patternMu.RLock()
	re := patternCache[pattern]
	patternMu.RUnlock()
	if re != nil {
		return re
	}
	re = regexp.MustCompile(`\A(?:` + pattern + `)\z`)
	patternMu.Lock()
	patternCache[pattern] = re
	patternMu.Unlock()
	return re
}
