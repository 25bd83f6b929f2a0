package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/Masterminds/semver"
	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"oasref/internal/ports"
	"oasref/internal/types"
)

// DocumentFileAdapter implements DocumentSourcePort for YAML and JSON
// specification files on the local filesystem. JSON needs no separate
// path: the YAML parser accepts it.
type DocumentFileAdapter struct{}

func NewDocumentFileAdapter() DocumentFileAdapter {
	return DocumentFileAdapter{}
}

// Load reads, parses, and minimally validates the document at path.
// The returned tree preserves mapping key order from the source file.
func (a DocumentFileAdapter) Load(ctx context.Context, path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("spec file not found: " + path).
			WithCause(err)
	}

	var parsed yaml.Node
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse spec file: " + path).
			WithCause(err)
	}

	root, err := convertNode(&parsed, map[*yaml.Node]bool{})
	if err != nil {
		return types.Document{}, err
	}
	if !root.IsMapping() {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec document root must be a mapping")
	}

	dialect, version, err := detectDialect(root)
	if err != nil {
		return types.Document{}, err
	}
	assert.NotEmpty(ctx, string(dialect), "document dialect must be detected")
	assert.NotEmpty(ctx, version, "document version must be detected")

	if paths, ok := root.Get("paths"); !ok || !paths.IsMapping() {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec document has no paths section")
	}
	if !hasSchemaContainer(root) {
		log.Ctx(ctx).Warn().
			Str("path", path).
			Msg("spec document declares no named schemas")
	}

	log.Ctx(ctx).Debug().
		Str("path", path).
		Str("dialect", string(dialect)).
		Str("version", version).
		Msg("spec document loaded")

	return types.Document{
		Root:    root,
		Source:  path,
		Dialect: dialect,
		Version: version,
	}, nil
}

// convertNode translates a parsed yaml tree into the typed node tree.
// active tracks the nodes on the current conversion branch: the yaml
// parser accepts an alias nested inside its own anchor, which would
// otherwise recurse forever.
func convertNode(n *yaml.Node, active map[*yaml.Node]bool) (*types.Node, error) {
	if active[n] {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec document contains a recursive alias")
	}
	active[n] = true
	defer delete(active, n)

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return types.NewMapping(), nil
		}
		return convertNode(n.Content[0], active)
	case yaml.MappingNode:
		out := types.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("mapping keys must be strings").
					WithCause(err)
			}
			child, err := convertNode(n.Content[i+1], active)
			if err != nil {
				return nil, err
			}
			out.Set(key, child)
		}
		return out, nil
	case yaml.SequenceNode:
		items := make([]*types.Node, 0, len(n.Content))
		for _, item := range n.Content {
			child, err := convertNode(item, active)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return types.NewSequence(items...), nil
	case yaml.AliasNode:
		return convertNode(n.Alias, active)
	default:
		var value any
		if err := n.Decode(&value); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to decode scalar value").
				WithCause(err)
		}
		return types.NewScalar(value), nil
	}
}

// detectDialect reads the document's version declaration. OpenAPI 3.x
// uses the openapi field, Swagger 2.0 the swagger field; both are
// parsed leniently ("2.0" is accepted alongside full triplets).
func detectDialect(root *types.Node) (types.Dialect, string, error) {
	if version, ok := root.ScalarString("openapi"); ok {
		parsed, err := semver.NewVersion(version)
		if err != nil {
			return "", "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unrecognized openapi version %q", version)).
				WithCause(err)
		}
		if parsed.Major() < 3 {
			return "", "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("openapi version %q is not a 3.x release", version))
		}
		return types.DialectOpenAPI3, version, nil
	}
	if version, ok := root.ScalarString("swagger"); ok {
		parsed, err := semver.NewVersion(version)
		if err != nil || parsed.Major() != 2 {
			return "", "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unrecognized swagger version %q", version))
		}
		return types.DialectSwagger2, version, nil
	}
	return "", "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("spec document declares no openapi or swagger version")
}

func hasSchemaContainer(root *types.Node) bool {
	if components, ok := root.Get("components"); ok {
		if schemas, ok := components.Get("schemas"); ok && schemas.Len() > 0 {
			return true
		}
	}
	if definitions, ok := root.Get("definitions"); ok && definitions.Len() > 0 {
		return true
	}
	return false
}

var _ ports.DocumentSourcePort = DocumentFileAdapter{}
