package core

import (
	"strings"

	"oasref/internal/shared"
	"oasref/internal/types"
)

// Schema shape keys the expander recognizes. Anything else passes
// through unchanged.
const (
	typeKey       = "type"
	propertiesKey = "properties"
	itemsKey      = "items"

	typeObject = "object"
	typeArray  = "array"
)

const arrowSeparator = " -> "

// resolveState carries the traversal state of one top-level resolution.
// It is allocated fresh per call and never stored on the engine, so
// concurrent resolutions against the same document cannot interfere.
type resolveState struct {
	// path holds the reference names currently being expanded on the
	// active branch; membership means a cycle.
	path []string

	// deps accumulates every reference name encountered, duplicates
	// included. Deduplication happens once, at final output.
	deps []string

	// circular collects one chain description per detected cycle.
	circular []string
}

// expandNode recursively inlines references in node. depth counts
// reference hops only; descending into properties or items never
// increments it. The only error it can return is a pointer format
// error from a malformed reference inside the document.
func (e *Engine) expandNode(node *types.Node, depth int, opts types.ResolveOptions, st *resolveState) (*types.Node, error) {
	if node == nil {
		return nil, nil
	}
	if pointer, ok := node.Ref(); ok {
		return e.expandReference(node, pointer, depth, opts, st)
	}
	if !node.IsMapping() {
		return node, nil
	}
	typeTag, _ := node.ScalarString(typeKey)
	if typeTag == typeObject {
		if properties, ok := node.Get(propertiesKey); ok && properties.IsMapping() {
			return e.expandChildren(node, propertiesKey, properties, depth, opts, st)
		}
	}
	if typeTag == typeArray {
		if items, ok := node.Get(itemsKey); ok {
			return e.expandItems(node, items, depth, opts, st)
		}
	}
	return node, nil
}

func (e *Engine) expandReference(node *types.Node, pointer string, depth int, opts types.ResolveOptions, st *resolveState) (*types.Node, error) {
	refName := SegmentName(pointer)
	st.deps = append(st.deps, refName)

	if depth >= opts.MaxDepth {
		return node, nil
	}
	if shared.ContainsString(st.path, refName) {
		chain := make([]string, 0, len(st.path)+1)
		chain = append(chain, st.path...)
		chain = append(chain, refName)
		st.circular = append(st.circular, strings.Join(chain, arrowSeparator))
		return node, nil
	}

	target, err := ResolvePointer(e.doc.Root, pointer)
	if err != nil {
		return nil, err
	}
	st.path = append(st.path, refName)
	expanded, err := e.expandNode(target, depth+1, opts, st)
	st.path = st.path[:len(st.path)-1]
	if err != nil {
		return nil, err
	}
	return expanded, nil
}

// expandChildren returns a copy of node with the mapping under
// collectionKey replaced by its member-wise expansion. All other keys
// carry over untouched.
func (e *Engine) expandChildren(node *types.Node, collectionKey string, collection *types.Node, depth int, opts types.ResolveOptions, st *resolveState) (*types.Node, error) {
	expandedCollection := types.NewMapping()
	for _, name := range collection.Keys() {
		child, _ := collection.Get(name)
		expanded, err := e.expandNode(child, depth, opts, st)
		if err != nil {
			return nil, err
		}
		expandedCollection.Set(name, expanded)
	}
	out := types.NewMapping()
	for _, key := range node.Keys() {
		if key == collectionKey {
			out.Set(key, expandedCollection)
			continue
		}
		child, _ := node.Get(key)
		out.Set(key, child)
	}
	return out, nil
}

func (e *Engine) expandItems(node *types.Node, items *types.Node, depth int, opts types.ResolveOptions, st *resolveState) (*types.Node, error) {
	expandedItems, err := e.expandNode(items, depth, opts, st)
	if err != nil {
		return nil, err
	}
	out := types.NewMapping()
	for _, key := range node.Keys() {
		if key == itemsKey {
			out.Set(key, expandedItems)
			continue
		}
		child, _ := node.Get(key)
		out.Set(key, child)
	}
	return out, nil
}
