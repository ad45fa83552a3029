package spell

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

type cacheKey struct {
	lang string
	word string
}

// Cached memoizes verdicts of another Checker. Verdicts never change within
// a run, so a cached answer equals a fresh one.
type Cached struct {
	log   *slog.Logger
	next  Checker
	cache *lru.Cache[cacheKey, bool]
}

// NewCached wraps next with an LRU cache of size entries.
func NewCached(logger *slog.Logger, next Checker, size int) (*Cached, error) {
	cache, err := lru.New[cacheKey, bool](size)
	if err != nil {
		return nil, fmt.Errorf("spell cache: %w", err)
	}
	return &Cached{
		log:   logger.With("component", "spell_cache"),
		next:  next,
		cache: cache,
	}, nil
}

// Check returns the cached verdict or asks the wrapped oracle.
func (c *Cached) Check(ctx context.Context, word, lang string) (bool, error) {
	key := cacheKey{lang: lang, word: word}
	if ok, hit := c.cache.Get(key); hit {
		return ok, nil
	}
	ok, err := c.next.Check(ctx, word, lang)
	if err != nil {
		return false, err
	}
	c.cache.Add(key, ok)
	return ok, nil
}

// Warm checks words concurrently with at most workers oracle calls in
// flight. The first error cancels the rest.
func (c *Cached) Warm(ctx context.Context, words []string, lang string, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, word := range words {
		if c.cache.Contains(cacheKey{lang: lang, word: word}) {
			continue
		}
		g.Go(func() error {
			if _, err := c.Check(gctx, word, lang); err != nil {
				return fmt.Errorf("check %q: %w", word, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	c.log.DebugContext(ctx, "spell cache warmed",
		slog.String("lang", lang),
		slog.Int("words", len(words)),
		slog.Int("cached", c.cache.Len()),
	)
	return nil
}

// Len returns the number of cached verdicts.
func (c *Cached) Len() int { return c.cache.Len() }
