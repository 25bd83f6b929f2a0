package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"oasref/internal/types"
)

// Dependencies computes the transitive closure of schema names
// reachable from name, excluding name itself, in first-encountered
// order. Unlike resolution it is depth-unbounded and tracks a visited
// set, so shared subtrees are walked once and cycles terminate without
// diagnostics: it reports reachability, not cycles.
func (e *Engine) Dependencies(ctx context.Context, name string) ([]string, error) {
	pointer, ok := e.index[name]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("schema %q not found", name))
	}
	root, err := ResolvePointer(e.doc.Root, pointer)
	if err != nil {
		return nil, err
	}

	visited := map[string]struct{}{name: {}}
	var order []string
	if err := e.collectDependencies(root, visited, &order); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Str("schema", name).
		Int("dependencies", len(order)).
		Msg("dependency closure computed")
	return order, nil
}

func (e *Engine) collectDependencies(node *types.Node, visited map[string]struct{}, order *[]string) error {
	if node == nil || node.IsPlaceholder() {
		return nil
	}
	if pointer, ok := node.Ref(); ok {
		refName := SegmentName(pointer)
		if _, seen := visited[refName]; seen {
			return nil
		}
		visited[refName] = struct{}{}
		*order = append(*order, refName)
		target, err := ResolvePointer(e.doc.Root, pointer)
		if err != nil {
			return err
		}
		return e.collectDependencies(target, visited, order)
	}
	typeTag, _ := node.ScalarString(typeKey)
	switch typeTag {
	case typeObject:
		properties, ok := node.Get(propertiesKey)
		if !ok || !properties.IsMapping() {
			return nil
		}
		for _, key := range properties.Keys() {
			child, _ := properties.Get(key)
			if err := e.collectDependencies(child, visited, order); err != nil {
				return err
			}
		}
	case typeArray:
		if items, ok := node.Get(itemsKey); ok {
			return e.collectDependencies(items, visited, order)
		}
	}
	return nil
}
