package ports

import (
	"oasref/internal/types"
)

// SchemaSearchPort matches schemas by name or description text.
// Queries are literal, case-insensitive; ranking is deterministic so
// output order is stable across runs.
type SchemaSearchPort interface {
	Search(doc types.Document, index types.SchemaIndex, query string) []types.SearchMatch
}
