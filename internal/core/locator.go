package core

import (
	"strings"

	"oasref/internal/types"
)

// schemaContainers lists the known named-schema container roots in
// precedence order: the current dialect first, then the legacy one.
// On a name collision across containers the first container wins.
var schemaContainers = []string{
	"components/schemas",
	"definitions",
}

type Locator struct{}

func NewLocator() Locator {
	return Locator{}
}

// Locate scans every known schema container and builds the
// name -> pointer index. It is pure with respect to the document and
// safe to call repeatedly; callers may cache the result.
func (Locator) Locate(root *types.Node) types.SchemaIndex {
	index := types.SchemaIndex{}
	for _, container := range schemaContainers {
		node := containerNode(root, container)
		for _, name := range node.Keys() {
			if _, ok := index[name]; ok {
				continue
			}
			index[name] = pointerPrefix + container + "/" + EncodeSegment(name)
		}
	}
	return index
}

func containerNode(root *types.Node, container string) *types.Node {
	current := root
	for _, segment := range strings.Split(container, "/") {
		child, ok := current.Get(segment)
		if !ok {
			return nil
		}
		current = child
	}
	return current
}
