package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"oasref/internal/types"
)

// pointerPrefix is the accepted root marker for document pointers.
const pointerPrefix = "#/"

// EncodeSegment escapes a raw name for use as a pointer segment.
// Tildes must be escaped before slashes; the reverse order would
// corrupt already-escaped tildes.
func EncodeSegment(raw string) string {
	escaped := strings.ReplaceAll(raw, "~", "~0")
	return strings.ReplaceAll(escaped, "/", "~1")
}

// DecodeSegment reverses EncodeSegment.
func DecodeSegment(token string) string {
	decoded := strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(decoded, "~0", "~")
}

// SegmentName returns the schema name a pointer targets: its last
// segment, decoded.
func SegmentName(pointer string) string {
	trimmed := strings.TrimPrefix(pointer, "#")
	segments := strings.Split(trimmed, "/")
	return DecodeSegment(segments[len(segments)-1])
}

// ResolvePointer walks the document tree along pointer. A pointer not
// starting with "#/" is a format error. A pointer whose path cannot be
// followed is not an error: a placeholder node is returned so the
// caller's traversal can continue around it.
func ResolvePointer(root *types.Node, pointer string) (*types.Node, error) {
	if !strings.HasPrefix(pointer, pointerPrefix) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid pointer format: %s", pointer))
	}
	current := root
	for _, token := range strings.Split(strings.TrimPrefix(pointer, pointerPrefix), "/") {
		child, ok := current.Get(DecodeSegment(token))
		if !ok {
			return NewPlaceholder(pointer), nil
		}
		current = child
	}
	return current, nil
}

// NewPlaceholder builds the unresolved-reference placeholder for a
// pointer whose target does not exist in the document.
func NewPlaceholder(pointer string) *types.Node {
	node := types.NewMapping()
	node.Set(types.PlaceholderRefKey, types.NewScalar(pointer))
	node.Set(types.UnresolvedKey, types.NewScalar(true))
	node.Set(types.ErrorKey, types.NewScalar("Reference not found: "+pointer))
	return node
}
