package selection

import (
	"go.trai.ch/gate/internal/core/domain"
)

// runPipeline executes the two-phase provider protocol over the working
// item list: every provider's executing callback in ascending Order, then
// every provider's executed callback in descending Order. The order
// contract is strictly sequential even though lookups for different
// actions run concurrently.
func (c *Cache) runPipeline(req *domain.RequestContext, action *domain.ActionDescriptor, items []*domain.ConstraintItem) {
	pctx := &domain.ConstraintProviderContext{
		Request: req,
		Action:  action,
		Results: items,
	}

	for _, p := range c.providers {
		p.OnProvidersExecuting(pctx)
	}
	for i := len(c.providers) - 1; i >= 0; i-- {
		c.providers[i].OnProvidersExecuted(pctx)
	}
}
