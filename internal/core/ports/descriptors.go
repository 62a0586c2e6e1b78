package ports

import "go.trai.ch/gate/internal/core/domain"

// DescriptorSource publishes immutable action-descriptor snapshots.
//
//go:generate mockgen -source=descriptors.go -destination=mocks/mock_descriptors.go -package=mocks
type DescriptorSource interface {
	// Current returns the live snapshot. The returned collection is
	// immutable; a route-table change publishes a new collection with a
	// strictly greater Version.
	Current() *domain.ActionDescriptorCollection
}
