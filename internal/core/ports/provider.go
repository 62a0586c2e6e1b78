package ports

import "go.trai.ch/gate/internal/core/domain"

// ConstraintProvider populates or filters constraint items for an action.
//
// Providers run as a two-phase pipeline: OnProvidersExecuting in ascending
// Order, then OnProvidersExecuted over the same providers in descending
// Order, so a provider can post-process decisions made by providers that
// ran after it in the first phase.
//
//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type ConstraintProvider interface {
	// Order is the ascending sort key for the first phase.
	Order() int

	// OnProvidersExecuting may inspect or populate any item in ctx.Results.
	OnProvidersExecuting(ctx *domain.ConstraintProviderContext)

	// OnProvidersExecuted runs after every provider's executing phase.
	OnProvidersExecuted(ctx *domain.ConstraintProviderContext)
}
