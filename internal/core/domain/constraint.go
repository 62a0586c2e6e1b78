package domain

// Constraint narrows whether an action applies to a given request.
type Constraint interface {
	// Accept reports whether the request satisfies the constraint.
	Accept(req *RequestContext) bool
}

// ConstraintFactory produces constraints whose construction may depend on
// per-request state. Metadata entries implement this when the resolved
// constraint cannot be shared across requests.
type ConstraintFactory interface {
	// Reusable reports whether constraints created by this factory may be
	// cached and shared across requests.
	Reusable() bool

	// CreateConstraint builds a constraint for the given request.
	CreateConstraint(req *RequestContext) Constraint
}

// ConstraintItem pairs one raw metadata entry with its resolved constraint,
// if any. Items flow through the provider pipeline, which may populate
// Constraint and IsReusable in place.
type ConstraintItem struct {
	// Metadata is the raw entry the item was built from. Never nil.
	Metadata any

	// Constraint is the resolved constraint, or nil while unresolved.
	Constraint Constraint

	// IsReusable marks the resolved constraint as safe to cache across
	// requests. Non-reusable items are rebuilt on every lookup.
	IsReusable bool
}

// ConstraintProviderContext is the working state handed to each provider in
// the pipeline. Providers inspect and mutate Results in place.
type ConstraintProviderContext struct {
	Request *RequestContext
	Action  *ActionDescriptor
	Results []*ConstraintItem
}
