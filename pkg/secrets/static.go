package secrets

import "strings"

// StaticSource holds a fixed secret. Useful in tests and in deployments
// that inject the secret directly instead of provisioning a file.
type StaticSource string

// Load returns the secret with surrounding whitespace trimmed, or
// ErrEmptySecret when nothing remains.
func (s StaticSource) Load() (string, error) {
	secret := strings.TrimSpace(string(s))
	if secret == "" {
		return "", ErrEmptySecret
	}
	return secret, nil
}
