package ports

import (
	"context"

	"oasref/internal/types"
)

// DocumentSourcePort loads and minimally validates specification
// documents. The engine itself only ever sees already-parsed,
// already-validated trees; everything about storage and format lives
// behind this port.
type DocumentSourcePort interface {
	// Load reads the document at path, parses it into the node tree,
	// detects its dialect, and validates the minimal document shape
	// (a paths section must be present).
	Load(ctx context.Context, path string) (types.Document, error)
}
