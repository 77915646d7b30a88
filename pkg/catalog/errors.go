package catalog

import "errors"

var (
	// ErrProductNotFound is returned when the catalog has no product with the given ID
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstream is returned when the catalog responds with an unexpected status
	ErrUpstream = errors.New("catalog service error")

	// ErrNetworkError is returned when there's a network communication error
	ErrNetworkError = errors.New("network error")
)
