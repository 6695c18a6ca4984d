// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrProviderUnreachable indicates that no response was received from the provider.
	ErrProviderUnreachable = errors.New("provider unreachable")
)
