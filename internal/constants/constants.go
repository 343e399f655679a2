package constants

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// SearchPageSize is fixed for the project developer search endpoint.
	SearchPageSize = 10
)

// Context keys
const (
	ContextKeyRequestID = "request_id"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
)
