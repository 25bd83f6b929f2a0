package types

// Dialect identifies which document dialect a loaded specification
// uses. It decides which schema container the locator prefers; both
// containers are always scanned.
type Dialect string

const (
	DialectOpenAPI3 Dialect = "openapi3"
	DialectSwagger2 Dialect = "swagger2"
)

// Document is an immutable, already-parsed specification document.
// The engine never mutates Root; a new engine is constructed per
// loaded document and discarded on reload.
type Document struct {
	// Root is the document tree.
	Root *Node

	// Source is the path the document was loaded from, for logs.
	Source string

	// Dialect is detected from the openapi/swagger version field.
	Dialect Dialect

	// Version is the raw version string the dialect was detected from,
	// e.g. "3.0.3" or "2.0".
	Version string
}

// SchemaIndex maps schema names to document pointers, e.g.
// "User" -> "#/components/schemas/User". Built by the locator; callers
// may cache it alongside the document.
type SchemaIndex map[string]string
