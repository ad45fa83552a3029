// Package spell provides spelling oracles: a pool of aspell pipe sessions, a
// plain word-list dictionary and an LRU verdict cache in front of either.
//
// Every oracle is case-sensitive. Callers run their own case fallback.
package spell

import "context"

// Checker reports whether word is spelled correctly in language lang.
type Checker interface {
	Check(ctx context.Context, word, lang string) (bool, error)
}
