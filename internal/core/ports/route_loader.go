package ports

// RouteLoader loads and republishes the route table backing a
// DescriptorSource.
//
//go:generate mockgen -source=route_loader.go -destination=mocks/mock_route_loader.go -package=mocks
type RouteLoader interface {
	// Load reads the route table at path and publishes a new snapshot.
	Load(path string) error

	// Reload re-reads the last loaded route table, bumping the version.
	Reload() error
}
