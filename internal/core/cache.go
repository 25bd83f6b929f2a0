package core

import (
	"fmt"

	"github.com/Yiling-J/theine-go"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"oasref/internal/types"
)

// resultCacheSize bounds the number of memoized resolution outcomes
// held per engine.
const resultCacheSize = 1024

// resultCache memoizes complete resolution outcomes keyed by
// (target, maxDepth, includeCircular). Entries are immutable once
// written; concurrent computations for the same key produce equal
// values, so last-write-wins on insert is acceptable.
type resultCache struct {
	entries *theine.Cache[string, *types.ResolveResult]
}

func newResultCache() (*resultCache, error) {
	entries, err := theine.NewBuilder[string, *types.ResolveResult](resultCacheSize).Build()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to build result cache").
			WithCause(err)
	}
	return &resultCache{entries: entries}, nil
}

func cacheKey(target string, opts types.ResolveOptions) string {
	return fmt.Sprintf("%s|%d|%t", target, opts.MaxDepth, opts.IncludeCircular)
}

func (c *resultCache) get(target string, opts types.ResolveOptions) (*types.ResolveResult, bool) {
	return c.entries.Get(cacheKey(target, opts))
}

func (c *resultCache) put(target string, opts types.ResolveOptions, result *types.ResolveResult) {
	c.entries.Set(cacheKey(target, opts), result, 1)
}

func (c *resultCache) close() {
	c.entries.Close()
}
