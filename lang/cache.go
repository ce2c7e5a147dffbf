package lang

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/wbd/log"
)

// Cache memoizes parsed snippets keyed by the xxh3 hash of their source.
// Parsed trees are immutable, so one Cache may back any number of
// interpreters. A Cache is safe for concurrent use. The zero Cache is empty
// and ready to use.
type Cache struct {
	entries sync.Map // string -> *cacheEntry
}

type cacheEntry struct {
	once   sync.Once
	source string
	node   any // *Expr or *Definition
	err    error
}

// NewCache returns an empty Cache.
func NewCache() *Cache { return new(Cache) }

// Expr returns the expression parsed from code, parsing it on first use.
func (c *Cache) Expr(
	ctx context.Context,
	code Code,
	logger log.Logger,
) (*Expr, error) {
	return load(ctx, c, SnippetExpr, code, logger, ParseExpr)
}

// Definition returns the definition parsed from code, parsing it on first
// use.
func (c *Cache) Definition(
	ctx context.Context,
	code Code,
	logger log.Logger,
) (*Definition, error) {
	return load(ctx, c, SnippetDefinition, code, logger, ParseDefinition)
}

// Len returns the number of cached snippets.
func (c *Cache) Len() int {
	n := 0

	c.entries.Range(func(any, any) bool {
		n++

		return true
	})

	return n
}

// Clear removes all cached snippets.
func (c *Cache) Clear() { c.entries.Clear() }

// load parses code at most once per key. Failed parses are evicted so the
// error is not retained. A hash collision with a different source bypasses
// the cache.
func load[T any](
	ctx context.Context,
	c *Cache,
	kind SnippetKind,
	code Code,
	logger log.Logger,
	parse func(string) (T, error),
) (T, error) {
	source := string(code)
	hash := xxh3.HashString(source)
	key := kind.String() + ":" + strconv.FormatUint(hash, 36)

	value, hit := c.entries.LoadOrStore(key, &cacheEntry{source: source})
	entry := value.(*cacheEntry)

	logger.TraceContext(ctx, "cache lookup",
		slog.String("kind", kind.String()),
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit))

	if entry.source != source {
		logger.TraceContext(ctx, "cache bypass",
			slog.String("source_hash", strconv.FormatUint(hash, 16)))

		return parse(source)
	}

	entry.once.Do(func() {
		entry.node, entry.err = parse(source)
	})

	if entry.err != nil {
		c.entries.CompareAndDelete(key, entry)

		var zero T

		return zero, entry.err
	}

	return entry.node.(T), nil
}
