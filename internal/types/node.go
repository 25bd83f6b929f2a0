package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NodeKind discriminates the variants of a document tree node.
type NodeKind uint8

const (
	KindScalar NodeKind = iota
	KindSequence
	KindMapping
)

// Reserved mapping keys. A mapping carrying RefKey is a reference
// node. A reference whose target pointer cannot be found is replaced
// by a placeholder: a mapping holding the original pointer under
// PlaceholderRefKey plus UnresolvedKey and ErrorKey, deliberately not
// a reference node so traversals never chase it again.
const (
	RefKey            = "$ref"
	PlaceholderRefKey = "reference"
	UnresolvedKey     = "unresolved"
	ErrorKey          = "error"
)

// Node is one node of a parsed document tree. Exactly one payload is
// populated, selected by Kind. Mappings remember key insertion order so
// that serialized output stays stable across runs.
type Node struct {
	Kind  NodeKind
	Value any     // scalar payload: string, int, float64, bool, or nil
	Items []*Node // sequence payload

	keys     []string
	children map[string]*Node
}

// NewScalar wraps a scalar value.
func NewScalar(value any) *Node {
	return &Node{Kind: KindScalar, Value: value}
}

// NewSequence wraps an ordered list of nodes.
func NewSequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{Kind: KindMapping, children: map[string]*Node{}}
}

// Set inserts or replaces a child under key. First insertion fixes the
// key's position in iteration order.
func (n *Node) Set(key string, child *Node) *Node {
	if n.children == nil {
		n.children = map[string]*Node{}
	}
	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
	return n
}

// Get returns the child under key, or (nil, false) when the node is not
// a mapping or the key is absent.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

// Keys returns the mapping keys in insertion order. The returned slice
// is shared; callers must not mutate it.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	return n.keys
}

// Len returns the child count of a mapping or sequence.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindMapping:
		return len(n.keys)
	case KindSequence:
		return len(n.Items)
	default:
		return 0
	}
}

// IsMapping reports whether the node is a mapping.
func (n *Node) IsMapping() bool { return n != nil && n.Kind == KindMapping }

// Ref returns the reference pointer when the node is a reference
// mapping (a mapping with a scalar string under RefKey).
func (n *Node) Ref() (string, bool) {
	child, ok := n.Get(RefKey)
	if !ok || child == nil || child.Kind != KindScalar {
		return "", false
	}
	pointer, ok := child.Value.(string)
	return pointer, ok
}

// IsPlaceholder reports whether the node is an unresolved-reference
// placeholder produced during pointer resolution.
func (n *Node) IsPlaceholder() bool {
	if _, ok := n.ScalarString(PlaceholderRefKey); !ok {
		return false
	}
	child, ok := n.Get(UnresolvedKey)
	if !ok || child == nil {
		return false
	}
	flagged, ok := child.Value.(bool)
	return ok && flagged
}

// ScalarString returns the string payload of a scalar child.
func (n *Node) ScalarString(key string) (string, bool) {
	child, ok := n.Get(key)
	if !ok || child == nil || child.Kind != KindScalar {
		return "", false
	}
	value, ok := child.Value.(string)
	return value, ok
}

// MarshalJSON serializes the node as plain data, keeping mapping keys
// in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindScalar:
		return json.Marshal(n.Value)
	case KindSequence:
		if n.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(n.Items)
	case KindMapping:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodedKey, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			encodedChild, err := json.Marshal(n.children[key])
			if err != nil {
				return nil, err
			}
			buf.Write(encodedChild)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown node kind %d", n.Kind)
	}
}

// MarshalYAML serializes the node as plain data, keeping mapping keys
// in insertion order.
func (n *Node) MarshalYAML() (any, error) {
	switch n.Kind {
	case KindScalar:
		return n.Value, nil
	case KindSequence:
		out := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			value, err := item.MarshalYAML()
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range n.keys {
			keyNode := &yaml.Node{}
			if err := keyNode.Encode(key); err != nil {
				return nil, err
			}
			value, err := n.children[key].MarshalYAML()
			if err != nil {
				return nil, err
			}
			valueNode, ok := value.(*yaml.Node)
			if !ok {
				valueNode = &yaml.Node{}
				if err := valueNode.Encode(value); err != nil {
					return nil, err
				}
			}
			out.Content = append(out.Content, keyNode, valueNode)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown node kind %d", n.Kind)
	}
}
