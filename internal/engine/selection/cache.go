// Package selection implements the versioned action-constraint cache used
// by the dispatch stage to decide which constraints apply to an action.
package selection

import (
	"cmp"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

// Cache memoizes, per action descriptor, the constraints produced by the
// provider pipeline. The whole cache is invalidated when the descriptor
// collection's version changes; no per-action diffing is attempted.
type Cache struct {
	source    ports.DescriptorSource
	providers []ports.ConstraintProvider
	log       ports.Logger

	// current is the live generation. It is replaced wholesale, never
	// mutated, so readers either see the old cache or the fully built
	// new one.
	current atomic.Pointer[innerCache]
}

// innerCache is one cache generation, valid for exactly one collection
// version.
type innerCache struct {
	version int
	entries sync.Map // *domain.ActionDescriptor -> *cacheEntry
}

// cacheEntry is a sum type: exactly one of resolved and templates is
// non-nil.
//
// resolved holds a fully cached constraint list for actions whose items
// all came out reusable. templates holds the item list for actions with at
// least one non-reusable item; those recompute on every lookup.
type cacheEntry struct {
	resolved  []domain.Constraint
	templates []domain.ConstraintItem
}

// NewCache creates a Cache over the given descriptor source and providers.
// Providers are sorted ascending by Order once, here; the sort is stable so
// equal orders keep their registration sequence.
func NewCache(source ports.DescriptorSource, providers []ports.ConstraintProvider, log ports.Logger) *Cache {
	sorted := slices.Clone(providers)
	slices.SortStableFunc(sorted, func(a, b ports.ConstraintProvider) int {
		return cmp.Compare(a.Order(), b.Order())
	})

	return &Cache{
		source:    source,
		providers: sorted,
		log:       log,
	}
}

// GetConstraints returns the ordered constraints that apply to action for
// the given request, or nil when none apply. Nil is the explicit
// "no constraints" sentinel: callers skip constraint evaluation entirely
// instead of scanning an empty list.
//
// Safe for concurrent use.
func (c *Cache) GetConstraints(req *domain.RequestContext, action *domain.ActionDescriptor) []domain.Constraint {
	cache := c.currentCache()

	if v, ok := cache.entries.Load(action); ok {
		return c.constraintsFromEntry(v.(*cacheEntry), req, action)
	}

	if len(action.ConstraintMetadata) == 0 {
		// Nothing to resolve and nothing worth caching.
		return nil
	}

	recordMiss()

	items := make([]*domain.ConstraintItem, len(action.ConstraintMetadata))
	for i, m := range action.ConstraintMetadata {
		items[i] = &domain.ConstraintItem{Metadata: m}
	}
	c.runPipeline(req, action, items)

	constraints := extractConstraints(items)

	allReusable := true
	for _, item := range items {
		if !item.IsReusable {
			allReusable = false
			break
		}
	}

	var entry *cacheEntry
	if allReusable {
		entry = &cacheEntry{resolved: constraints}
	} else {
		// Non-reusable results are reset to unresolved so the stored
		// templates never leak a per-request constraint.
		templates := make([]domain.ConstraintItem, len(items))
		for i, item := range items {
			if item.IsReusable {
				templates[i] = *item
			} else {
				templates[i] = domain.ConstraintItem{Metadata: item.Metadata}
			}
		}
		entry = &cacheEntry{templates: templates}
	}

	// First writer wins; a concurrent computation of the same entry is
	// discarded, not merged. Our own result is returned either way.
	cache.entries.LoadOrStore(action, entry)

	return constraints
}

// constraintsFromEntry serves a cache hit.
func (c *Cache) constraintsFromEntry(entry *cacheEntry, req *domain.RequestContext, action *domain.ActionDescriptor) []domain.Constraint {
	if entry.resolved != nil {
		recordHit()
		return entry.resolved
	}

	// Template hit: reusable items are cloned as-is, non-reusable ones
	// restart from their metadata. The improved result is intentionally
	// not stored back, even when every item happens to resolve reusably
	// this time.
	recordTemplateRecompute()

	items := make([]*domain.ConstraintItem, len(entry.templates))
	for i := range entry.templates {
		if entry.templates[i].IsReusable {
			clone := entry.templates[i]
			items[i] = &clone
		} else {
			items[i] = &domain.ConstraintItem{Metadata: entry.templates[i].Metadata}
		}
	}
	c.runPipeline(req, action, items)

	return extractConstraints(items)
}

// currentCache returns the generation matching the live collection version,
// building and publishing a fresh one when the version moved. Publication
// is a single pointer CAS; losers adopt the winner's generation.
func (c *Cache) currentCache() *innerCache {
	live := c.source.Current().Version

	for {
		cur := c.current.Load()
		if cur != nil && cur.version == live {
			return cur
		}

		fresh := &innerCache{version: live}
		if c.current.CompareAndSwap(cur, fresh) {
			recordRebuild()
			if c.log != nil {
				c.log.Info("constraint cache rebuilt for version " + strconv.Itoa(live))
			}
			return fresh
		}
	}
}

// extractConstraints collects the resolved constraints in metadata order,
// dropping items that stayed unresolved. Returns nil when nothing resolved.
func extractConstraints(items []*domain.ConstraintItem) []domain.Constraint {
	count := 0
	for _, item := range items {
		if item.Constraint != nil {
			count++
		}
	}
	if count == 0 {
		return nil
	}

	constraints := make([]domain.Constraint, 0, count)
	for _, item := range items {
		if item.Constraint != nil {
			constraints = append(constraints, item.Constraint)
		}
	}
	return constraints
}
