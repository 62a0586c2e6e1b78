package domain

// RequestContext is an immutable-by-convention snapshot of the request data
// that constraints and providers may inspect. Only FormLimits is written
// after construction, by the closest form-limits filter.
type RequestContext struct {
	// Method is the request method, e.g. "GET".
	Method string

	// Headers holds request headers with canonical keys.
	Headers map[string]string

	// RouteValues holds the route data extracted for this request.
	RouteValues map[string]string

	// ContentLength is the declared body size in bytes, or -1 if unknown.
	ContentLength int64

	// FormLimits is the effective form parsing limit for the request.
	// Nil until a form-limits filter claims the request.
	FormLimits *FormLimits
}

// Header returns the value for the given header key, or "" when absent.
func (r *RequestContext) Header(key string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers[key]
}

// FormLimits bounds form parsing for a single request.
type FormLimits struct {
	// MaxRequestBodySize caps the request body in bytes. Zero means the
	// process default applies.
	MaxRequestBodySize int64

	// MaxValueCount caps the number of form entries parsed.
	MaxValueCount int
}
