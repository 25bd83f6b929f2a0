package ports

import (
	"oasref/internal/types"
)

// DocumentStatsPort computes summary statistics over a loaded
// document. Purely informational; resolution never depends on it.
type DocumentStatsPort interface {
	Stats(doc types.Document, index types.SchemaIndex) (types.DocumentStats, error)
}
