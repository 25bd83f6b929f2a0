package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"oasref/internal/core"
	"oasref/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec file path is required")
	}
	name := strings.TrimSpace(req.Name)
	pointer := strings.TrimSpace(req.Pointer)
	if name == "" && pointer == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("a schema name or pointer is required")
	}
	if name != "" && pointer != "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("provide a schema name or a pointer, not both")
	}

	engine, err := s.loadEngine(ctx, specPath)
	if err != nil {
		return ResolveResult{}, err
	}

	opts := types.DefaultResolveOptions()
	if req.MaxDepth != nil {
		opts.MaxDepth = *req.MaxDepth
	}
	if req.IncludeCircular != nil {
		opts.IncludeCircular = *req.IncludeCircular
	}
	if pointer != "" {
		return ResolveResult{Target: pointer, Result: engine.ResolveByPointer(ctx, pointer, opts)}, nil
	}
	return ResolveResult{Target: name, Result: engine.ResolveByName(ctx, name, opts)}, nil
}

func (s Service) loadEngine(ctx context.Context, specPath string) (*core.Engine, error) {
	doc, err := s.Documents.Load(ctx, specPath)
	if err != nil {
		return nil, err
	}
	return core.NewEngine(&doc)
}
