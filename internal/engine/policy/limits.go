// Package policy implements the closest-wins resolution for stacked
// same-capability request policies.
package policy

import (
	"go.trai.ch/gate/internal/core/domain"
)

// Filter marks a value that participates in an action's ordered filter
// list. The list is ordered by registration: outermost scope first,
// closest scope last.
type Filter interface{}

// FormLimitsFilter applies form-size limits to a request. When several
// instances are stacked on one action via nested scopes, only the
// last-registered instance is authoritative; the earlier ones are inert.
// Limits are overridden, never merged.
type FormLimitsFilter struct {
	Limits domain.FormLimits
}

// NewFormLimitsFilter creates a filter carrying the given limits.
func NewFormLimitsFilter(limits domain.FormLimits) *FormLimitsFilter {
	return &FormLimitsFilter{Limits: limits}
}

// OnRequest stamps the receiver's limits onto the request if and only if
// the receiver is the closest FormLimitsFilter in filters.
func (f *FormLimitsFilter) OnRequest(req *domain.RequestContext, filters []Filter) {
	if !f.isClosest(filters) {
		return
	}

	limits := f.Limits
	req.FormLimits = &limits
}

// Apply runs every form-limits filter in the list against the request.
// Only the closest instance takes effect; the earlier ones return without
// touching the request.
func Apply(req *domain.RequestContext, filters []Filter) {
	for _, f := range filters {
		if fl, ok := f.(*FormLimitsFilter); ok {
			fl.OnRequest(req, filters)
		}
	}
}

// isClosest scans filters from the end and reports whether the first
// FormLimitsFilter found is the receiver.
//
// The receiver must be in the list: OnRequest is only ever called with the
// filter list the receiver was registered into, so not finding it is a
// programming error, not a runtime condition.
func (f *FormLimitsFilter) isClosest(filters []Filter) bool {
	for i := len(filters) - 1; i >= 0; i-- {
		if other, ok := filters[i].(*FormLimitsFilter); ok {
			return other == f
		}
	}

	panic("policy: executing FormLimitsFilter is not in the filter list")
}
