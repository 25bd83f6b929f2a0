package adapters

import (
	"sort"
	"strings"

	"oasref/internal/core"
	"oasref/internal/ports"
	"oasref/internal/types"
)

// Match ranks, best first.
const (
	rankExactName       = 0
	rankNamePrefix      = 1
	rankNameSubstring   = 2
	rankDescriptionText = 3
)

// SearchAdapter matches schema names and descriptions against a
// literal, case-insensitive query. Results are ordered by rank, then
// name, so output is stable for a given document.
type SearchAdapter struct{}

func NewSearchAdapter() SearchAdapter {
	return SearchAdapter{}
}

func (SearchAdapter) Search(doc types.Document, index types.SchemaIndex, query string) []types.SearchMatch {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var matches []types.SearchMatch
	for name, pointer := range index {
		rank, ok := rankFor(doc, name, pointer, needle)
		if !ok {
			continue
		}
		matches = append(matches, types.SearchMatch{
			Name:    name,
			Pointer: pointer,
			Rank:    rank,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Rank != matches[j].Rank {
			return matches[i].Rank < matches[j].Rank
		}
		return matches[i].Name < matches[j].Name
	})
	return matches
}

func rankFor(doc types.Document, name, pointer, needle string) (int, bool) {
	lowered := strings.ToLower(name)
	switch {
	case lowered == needle:
		return rankExactName, true
	case strings.HasPrefix(lowered, needle):
		return rankNamePrefix, true
	case strings.Contains(lowered, needle):
		return rankNameSubstring, true
	}

	schema, err := core.ResolvePointer(doc.Root, pointer)
	if err != nil || schema.IsPlaceholder() {
		return 0, false
	}
	if description, ok := schema.ScalarString("description"); ok {
		if strings.Contains(strings.ToLower(description), needle) {
			return rankDescriptionText, true
		}
	}
	return 0, false
}

var _ ports.SchemaSearchPort = SearchAdapter{}
