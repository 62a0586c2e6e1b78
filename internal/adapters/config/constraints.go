package config

import (
	"slices"
	"strings"

	"go.trai.ch/gate/internal/core/domain"
)

var (
	_ domain.Constraint        = (*MethodConstraint)(nil)
	_ domain.Constraint        = (*HeaderConstraint)(nil)
	_ domain.ConstraintFactory = (*PerRequestFactory)(nil)
)

// MethodConstraint restricts the request methods an action accepts.
// It implements domain.Constraint directly, so the default provider
// resolves it as reusable.
type MethodConstraint struct {
	Methods []string
}

// Accept reports whether the request method is one of the allowed methods.
func (c *MethodConstraint) Accept(req *domain.RequestContext) bool {
	return slices.ContainsFunc(c.Methods, func(m string) bool {
		return strings.EqualFold(m, req.Method)
	})
}

// HeaderConstraint requires a header to carry an exact value. An empty
// Value only requires the header to be present.
type HeaderConstraint struct {
	Name  string
	Value string
}

// Accept reports whether the request carries the required header.
func (c *HeaderConstraint) Accept(req *domain.RequestContext) bool {
	got := req.Header(c.Name)
	if got == "" {
		return false
	}
	return c.Value == "" || got == c.Value
}

// PerRequestFactory wraps a constraint builder whose product must not be
// shared across requests. The default provider invokes Build on every
// lookup and never caches the result.
type PerRequestFactory struct {
	Build func(req *domain.RequestContext) domain.Constraint
}

// Reusable always reports false.
func (f *PerRequestFactory) Reusable() bool { return false }

// CreateConstraint builds a fresh constraint for the given request.
func (f *PerRequestFactory) CreateConstraint(req *domain.RequestContext) domain.Constraint {
	return f.Build(req)
}
