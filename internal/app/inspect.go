package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"oasref/internal/core"
)

func (s Service) Schemas(ctx context.Context, req SchemasRequest) (SchemasResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return SchemasResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec file path is required")
	}
	engine, err := s.loadEngine(ctx, specPath)
	if err != nil {
		return SchemasResult{}, err
	}
	return SchemasResult{Index: engine.Index()}, nil
}

func (s Service) Dependencies(ctx context.Context, req DependenciesRequest) (DependenciesResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	name := strings.TrimSpace(req.Name)
	if specPath == "" || name == "" {
		return DependenciesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec file path and schema name are required")
	}
	engine, err := s.loadEngine(ctx, specPath)
	if err != nil {
		return DependenciesResult{}, err
	}
	deps, err := engine.Dependencies(ctx, name)
	if err != nil {
		return DependenciesResult{}, err
	}
	return DependenciesResult{Name: name, Dependencies: deps}, nil
}

func (s Service) DocumentStats(ctx context.Context, req StatsRequest) (StatsResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return StatsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec file path is required")
	}
	doc, err := s.Documents.Load(ctx, specPath)
	if err != nil {
		return StatsResult{}, err
	}
	index := core.NewLocator().Locate(doc.Root)
	stats, err := s.Stats.Stats(doc, index)
	if err != nil {
		return StatsResult{}, err
	}
	return StatsResult{Stats: stats}, nil
}

func (s Service) SearchSchemas(ctx context.Context, req SearchRequest) (SearchResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	query := strings.TrimSpace(req.Query)
	if specPath == "" || query == "" {
		return SearchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec file path and query are required")
	}
	doc, err := s.Documents.Load(ctx, specPath)
	if err != nil {
		return SearchResult{}, err
	}
	index := core.NewLocator().Locate(doc.Root)
	return SearchResult{Matches: s.Search.Search(doc, index, query)}, nil
}
