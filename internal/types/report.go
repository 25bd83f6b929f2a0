package types

// DocumentStats summarizes a loaded document for inspection commands.
type DocumentStats struct {
	// Endpoints is the number of path templates under paths.
	Endpoints int `json:"endpoints" yaml:"endpoints"`

	// Operations is the total number of HTTP operations across all
	// endpoints.
	Operations int `json:"operations" yaml:"operations"`

	// OperationsByMethod breaks Operations down per lowercase HTTP
	// method name.
	OperationsByMethod map[string]int `json:"operationsByMethod,omitempty" yaml:"operationsByMethod,omitempty"`

	// Schemas is the number of named schemas the locator indexes.
	Schemas int `json:"schemas" yaml:"schemas"`

	// Properties is the total property count across all named schemas,
	// counted recursively.
	Properties int `json:"properties" yaml:"properties"`

	// References is the number of reference nodes in the whole
	// document.
	References int `json:"references" yaml:"references"`
}

// SearchMatch is one ranked hit from a schema search.
type SearchMatch struct {
	Name    string `json:"name" yaml:"name"`
	Pointer string `json:"pointer" yaml:"pointer"`

	// Rank orders matches: 0 exact name, 1 name prefix, 2 name
	// substring, 3 description substring.
	Rank int `json:"rank" yaml:"rank"`
}
