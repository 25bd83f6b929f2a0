package adapters

import (
	"oasref/internal/core"
	"oasref/internal/ports"
	"oasref/internal/types"
)

// httpMethods are the operation keys counted under each path item.
var httpMethods = map[string]struct{}{
	"get": {}, "put": {}, "post": {}, "delete": {},
	"options": {}, "head": {}, "patch": {}, "trace": {},
}

// StatsAdapter computes document statistics by direct traversal. It
// never follows references, so counts reflect the document as written.
type StatsAdapter struct{}

func NewStatsAdapter() StatsAdapter {
	return StatsAdapter{}
}

func (StatsAdapter) Stats(doc types.Document, index types.SchemaIndex) (types.DocumentStats, error) {
	stats := types.DocumentStats{
		Schemas:            len(index),
		OperationsByMethod: map[string]int{},
	}

	if paths, ok := doc.Root.Get("paths"); ok {
		stats.Endpoints = paths.Len()
		for _, endpoint := range paths.Keys() {
			item, _ := paths.Get(endpoint)
			for _, key := range item.Keys() {
				if _, ok := httpMethods[key]; !ok {
					continue
				}
				stats.Operations++
				stats.OperationsByMethod[key]++
			}
		}
	}

	for _, pointer := range index {
		schema, err := core.ResolvePointer(doc.Root, pointer)
		if err != nil {
			return types.DocumentStats{}, err
		}
		stats.Properties += countProperties(schema)
	}
	stats.References = countReferences(doc.Root)

	if len(stats.OperationsByMethod) == 0 {
		stats.OperationsByMethod = nil
	}
	return stats, nil
}

func countProperties(node *types.Node) int {
	if node == nil || !node.IsMapping() {
		return 0
	}
	count := 0
	if properties, ok := node.Get("properties"); ok && properties.IsMapping() {
		count += properties.Len()
		for _, key := range properties.Keys() {
			child, _ := properties.Get(key)
			count += countProperties(child)
		}
	}
	if items, ok := node.Get("items"); ok {
		count += countProperties(items)
	}
	return count
}

func countReferences(node *types.Node) int {
	if node == nil {
		return 0
	}
	count := 0
	if _, ok := node.Ref(); ok {
		count++
	}
	for _, key := range node.Keys() {
		child, _ := node.Get(key)
		count += countReferences(child)
	}
	for _, item := range node.Items {
		count += countReferences(item)
	}
	return count
}

var _ ports.DocumentStatsPort = StatsAdapter{}
