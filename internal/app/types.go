package app

import "oasref/internal/types"

type ResolveRequest struct {
	SpecPath string

	// Exactly one of Name and Pointer must be set.
	Name    string
	Pointer string

	// MaxDepth and IncludeCircular fall back to the engine defaults
	// (types.DefaultResolveOptions) when nil. An explicit zero depth
	// leaves every reference unexpanded.
	MaxDepth        *int
	IncludeCircular *bool
}

type ResolveResult struct {
	// Target echoes the requested name or pointer.
	Target string
	Result *types.ResolveResult
}

type SchemasRequest struct {
	SpecPath string
}

type SchemasResult struct {
	Index types.SchemaIndex
}

type DependenciesRequest struct {
	SpecPath string
	Name     string
}

type DependenciesResult struct {
	Name         string
	Dependencies []string
}

type StatsRequest struct {
	SpecPath string
}

type StatsResult struct {
	Stats types.DocumentStats
}

type SearchRequest struct {
	SpecPath string
	Query    string
}

type SearchResult struct {
	Matches []types.SearchMatch
}
