package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"oasref/internal/shared"
	"oasref/internal/types"
)

// Engine resolves schema references against one immutable document.
// Construct a new engine when the document is reloaded; the result
// cache is scoped to the engine and dies with it. All methods are safe
// for concurrent use: traversal state lives in per-call resolveState
// values and the cache is the only shared mutable structure.
type Engine struct {
	doc   *types.Document
	index types.SchemaIndex

	mu    sync.RWMutex
	cache *resultCache
}

func NewEngine(doc *types.Document) (*Engine, error) {
	if doc == nil || doc.Root == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("engine requires a loaded document")
	}
	cache, err := newResultCache()
	if err != nil {
		return nil, err
	}
	return &Engine{
		doc:   doc,
		index: NewLocator().Locate(doc.Root),
		cache: cache,
	}, nil
}

// Index returns a copy of the name -> pointer schema index.
func (e *Engine) Index() types.SchemaIndex {
	out := make(types.SchemaIndex, len(e.index))
	for name, pointer := range e.index {
		out[name] = pointer
	}
	return out
}

// ResolveByName expands the named schema. An unknown name is a failure
// result, not an error: callers always receive a structured result.
func (e *Engine) ResolveByName(ctx context.Context, name string, opts types.ResolveOptions) *types.ResolveResult {
	pointer, ok := e.index[name]
	if !ok {
		return &types.ResolveResult{Error: fmt.Sprintf("Schema %q not found", name)}
	}
	return e.resolveTarget(ctx, name, name, pointer, opts)
}

// ResolveByPointer expands the schema at pointer. The root identity
// reported in Dependencies[0] is the pointer's last decoded segment.
func (e *Engine) ResolveByPointer(ctx context.Context, pointer string, opts types.ResolveOptions) *types.ResolveResult {
	return e.resolveTarget(ctx, pointer, SegmentName(pointer), pointer, opts)
}

// ClearCache drops every memoized resolution result. Called on
// explicit reset; document reload should discard the engine instead.
func (e *Engine) ClearCache() error {
	replacement, err := newResultCache()
	if err != nil {
		return err
	}
	e.mu.Lock()
	old := e.cache
	e.cache = replacement
	e.mu.Unlock()
	old.close()
	return nil
}

// resolveTarget wraps the expansion in the cache lookup. cacheTarget is
// the caller-supplied identity (name or pointer) so that name-based and
// pointer-based requests memoize independently.
func (e *Engine) resolveTarget(ctx context.Context, cacheTarget, rootName, pointer string, opts types.ResolveOptions) *types.ResolveResult {
	if opts.MaxDepth < 0 {
		opts.MaxDepth = 0
	}

	e.mu.RLock()
	cache := e.cache
	e.mu.RUnlock()

	if cached, ok := cache.get(cacheTarget, opts); ok {
		log.Ctx(ctx).Debug().Str("target", cacheTarget).Msg("resolution cache hit")
		return cached
	}
	result := e.compute(ctx, rootName, pointer, opts)
	cache.put(cacheTarget, opts, result)
	return result
}

func (e *Engine) compute(ctx context.Context, rootName, pointer string, opts types.ResolveOptions) *types.ResolveResult {
	rootNode, err := ResolvePointer(e.doc.Root, pointer)
	if err != nil {
		return &types.ResolveResult{Error: errorMessage(err)}
	}
	if rootNode.IsPlaceholder() {
		message, _ := rootNode.ScalarString(types.ErrorKey)
		return &types.ResolveResult{Error: message}
	}

	st := &resolveState{deps: []string{rootName}}
	expanded, err := e.expandNode(rootNode, 0, opts, st)
	if err != nil {
		return &types.ResolveResult{Error: errorMessage(err)}
	}

	result := &types.ResolveResult{
		Success:      true,
		Schema:       expanded,
		Dependencies: shared.DedupeStrings(st.deps),
	}
	if opts.IncludeCircular {
		result.CircularReferences = shared.DedupeStrings(st.circular)
	}
	log.Ctx(ctx).Debug().
		Str("schema", rootName).
		Int("dependencies", len(result.Dependencies)).
		Int("cycles", len(st.circular)).
		Msg("schema resolved")
	return result
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
