// Package app implements the application layer for gate.
package app

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/gate/internal/engine/policy"
	"go.trai.ch/gate/internal/engine/selection"
	"go.trai.ch/zerr"
)

// App represents the main application logic: it owns the route table
// lifecycle and answers constraint queries through the cache.
type App struct {
	loader    ports.RouteLoader
	source    ports.DescriptorSource
	cache     *selection.Cache
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(loader ports.RouteLoader, source ports.DescriptorSource, cache *selection.Cache, telemetry ports.Telemetry) *App {
	return &App{
		loader:    loader,
		source:    source,
		cache:     cache,
		telemetry: telemetry,
	}
}

// LoadRoutes loads the route table from the given path and publishes it.
func (a *App) LoadRoutes(path string) error {
	if err := a.loader.Load(path); err != nil {
		return zerr.Wrap(err, "failed to load route table")
	}
	return nil
}

// ReloadRoutes republishes the route table, invalidating every cached
// constraint entry through the version bump.
func (a *App) ReloadRoutes() error {
	if err := a.loader.Reload(); err != nil {
		return zerr.Wrap(err, "failed to reload route table")
	}
	return nil
}

// ResolveResult is the outcome of resolving one action for one request.
type ResolveResult struct {
	Action      *domain.ActionDescriptor
	Constraints []domain.Constraint

	// Matched reports whether every applicable constraint accepted the
	// request. True when no constraints apply.
	Matched bool
}

// Resolve returns the constraints that apply to the named action and
// whether the given request satisfies them. Form-limit policies attached
// to the action are applied to the request first, closest instance wins.
func (a *App) Resolve(_ context.Context, actionName string, req *domain.RequestContext) (*ResolveResult, error) {
	action, err := a.findAction(actionName)
	if err != nil {
		return nil, err
	}

	applyFormLimits(req, action)

	constraints := a.cache.GetConstraints(req, action)

	matched := true
	for _, c := range constraints {
		if !c.Accept(req) {
			matched = false
			break
		}
	}

	return &ResolveResult{
		Action:      action,
		Constraints: constraints,
		Matched:     matched,
	}, nil
}

// RouteInfo is one row of the route-table listing.
type RouteInfo struct {
	ID          string
	Name        string
	Constraints int
}

// Routes lists the current snapshot for inspection, together with its
// version.
func (a *App) Routes() ([]RouteInfo, int) {
	collection := a.source.Current()

	infos := make([]RouteInfo, 0, len(collection.Items))
	for _, action := range collection.Items {
		infos = append(infos, RouteInfo{
			ID:          action.ID,
			Name:        action.Name.String(),
			Constraints: len(action.ConstraintMetadata),
		})
	}
	return infos, collection.Version
}

// Warm precomputes the constraint entries for every action in the current
// snapshot. Lookups run concurrently; parallelism <= 0 means one worker
// per CPU.
func (a *App) Warm(ctx context.Context, parallelism int) error {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	collection := a.source.Current()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, action := range collection.Items {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			_, vertex := a.telemetry.Record(ctx, action.Name.String())
			if len(action.ConstraintMetadata) == 0 {
				// Nothing to resolve for this action.
				vertex.Cached()
				vertex.Complete(nil)
				return nil
			}

			req := &domain.RequestContext{Method: "GET", ContentLength: -1}
			a.cache.GetConstraints(req, action)
			vertex.Complete(nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "cache warm-up failed")
	}
	return nil
}

// findAction locates an action by name or ID in the current snapshot.
func (a *App) findAction(name string) (*domain.ActionDescriptor, error) {
	collection := a.source.Current()
	for _, action := range collection.Items {
		if action.Name.String() == name || action.ID == name {
			return action, nil
		}
	}
	return nil, zerr.With(domain.ErrActionNotFound, "action", name)
}

// applyFormLimits runs the action's stacked form-limit policies against
// the request.
func applyFormLimits(req *domain.RequestContext, action *domain.ActionDescriptor) {
	if len(action.FormLimits) == 0 {
		return
	}

	filters := make([]policy.Filter, len(action.FormLimits))
	for i, limits := range action.FormLimits {
		filters[i] = policy.NewFormLimitsFilter(limits)
	}
	policy.Apply(req, filters)
}
