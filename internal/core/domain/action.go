package domain

// ActionDescriptor describes one dispatchable action. Descriptors are
// immutable once published and are compared by pointer identity: two
// snapshots of the same logical action are distinct descriptors.
type ActionDescriptor struct {
	// ID is a stable content-derived identifier for the action definition.
	ID string

	// Name is the human-readable action name, e.g. "users.show".
	// It uses InternedString because the same names recur across snapshots.
	Name InternedString

	// RouteValues holds the static route data attached to the action.
	RouteValues map[string]string

	// ConstraintMetadata holds the raw, unresolved constraint metadata
	// entries in declaration order. Entries are opaque to the descriptor;
	// providers decide what each entry means.
	ConstraintMetadata []any

	// FormLimits is the stack of form-limit policies attached to the
	// action, outermost scope first. Only the last entry is authoritative;
	// the closest-wins resolution lives in the policy engine.
	FormLimits []FormLimits
}

// ActionDescriptorCollection is an immutable snapshot of all published
// actions together with the version it was built at.
type ActionDescriptorCollection struct {
	Items []*ActionDescriptor

	// Version increases strictly monotonically every time the route table
	// changes. Consumers use it for generational cache invalidation.
	Version int
}
