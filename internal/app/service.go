package app

import (
	"oasref/internal/adapters"
	"oasref/internal/ports"
)

// Service wires the resolution engine to its collaborator ports. One
// engine is constructed per loaded document inside each operation;
// nothing document-scoped survives between calls.
type Service struct {
	Documents ports.DocumentSourcePort
	Stats     ports.DocumentStatsPort
	Search    ports.SchemaSearchPort
}

func NewService() Service {
	return Service{
		Documents: adapters.NewDocumentFileAdapter(),
		Stats:     adapters.NewStatsAdapter(),
		Search:    adapters.NewSearchAdapter(),
	}
}
