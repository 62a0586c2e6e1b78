package selection

import (
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

var _ ports.ConstraintProvider = (*DefaultProvider)(nil)

// DefaultProvider resolves the two built-in metadata shapes: entries that
// are themselves constraints (always reusable) and entries that are
// constraint factories (reusable per the factory's flag). It runs at Order
// zero so custom providers can schedule around it.
type DefaultProvider struct{}

// NewDefaultProvider creates a DefaultProvider.
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

// Order returns the pipeline sort key.
func (p *DefaultProvider) Order() int { return 0 }

// OnProvidersExecuting resolves every still-unresolved item it recognizes.
func (p *DefaultProvider) OnProvidersExecuting(ctx *domain.ConstraintProviderContext) {
	for _, item := range ctx.Results {
		if item.Constraint != nil {
			continue
		}

		switch m := item.Metadata.(type) {
		case domain.Constraint:
			item.Constraint = m
			item.IsReusable = true
		case domain.ConstraintFactory:
			item.Constraint = m.CreateConstraint(ctx.Request)
			item.IsReusable = m.Reusable()
		}
	}
}

// OnProvidersExecuted does nothing; the default provider has no
// post-processing phase.
func (p *DefaultProvider) OnProvidersExecuted(_ *domain.ConstraintProviderContext) {}
