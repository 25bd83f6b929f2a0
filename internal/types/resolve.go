package types

// DefaultMaxDepth is the reference-hop bound applied when the caller
// does not provide one. Structural nesting (properties, items) does
// not count against it.
const DefaultMaxDepth = 10

// ResolveOptions tune one resolution call.
type ResolveOptions struct {
	// MaxDepth bounds how many reference hops may be followed along a
	// single branch. Must be >= 0; references at the bound are left
	// unexpanded.
	MaxDepth int

	// IncludeCircular controls whether detected cycles are surfaced in
	// ResolveResult.CircularReferences. Detection itself always runs;
	// cycles always stop recursion regardless of this flag.
	IncludeCircular bool
}

// DefaultResolveOptions returns the documented defaults.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{MaxDepth: DefaultMaxDepth, IncludeCircular: true}
}

// ResolveResult is the outcome of expanding one schema. It is immutable
// once produced; cached instances are shared between callers.
type ResolveResult struct {
	Success bool `json:"success" yaml:"success"`

	// Schema is the expanded subtree. Nil when Success is false.
	Schema *Node `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Dependencies lists every schema name encountered during
	// expansion, deduplicated, in first-encountered order. When
	// Success is true the first entry is the requested root.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	// CircularReferences holds one human-readable chain per detected
	// cycle, e.g. "A -> B -> A".
	CircularReferences []string `json:"circularReferences,omitempty" yaml:"circularReferences,omitempty"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
