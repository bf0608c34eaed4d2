package secrets

import "errors"

var (
	// ErrSecretUnavailable is returned when the secret resource cannot be read.
	ErrSecretUnavailable = errors.New("secret unavailable")

	// ErrEmptySecret is returned when the secret resource is readable but
	// contains only whitespace. An empty key would sign tokens anyone could
	// forge, so it is treated the same as an unavailable one.
	ErrEmptySecret = errors.New("secret is empty")
)
