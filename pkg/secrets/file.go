package secrets

import (
	"errors"
	"os"
	"strings"
)

// FileSource reads the shared secret from a local file on every call,
// matching deployments where the surrounding environment provisions the
// secret on disk. The file is never written by this service, so concurrent
// reads need no coordination.
type FileSource struct {
	path string
}

// NewFileSource returns a source reading from path.
func NewFileSource(path string) FileSource {
	return FileSource{path: path}
}

// Load reads the whole file and trims surrounding whitespace. An unreadable
// file yields ErrSecretUnavailable joined with the underlying error;
// whitespace-only content yields ErrEmptySecret. Both are fatal for the
// request, with no retry and no default.
func (s FileSource) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", errors.Join(ErrSecretUnavailable, err)
	}
	secret := strings.TrimSpace(string(raw))
	if secret == "" {
		return "", ErrEmptySecret
	}
	return secret, nil
}
