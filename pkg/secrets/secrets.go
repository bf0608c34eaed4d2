package secrets

// Source supplies the shared secret used for token derivation. Load is
// called once per request, so implementations must be safe for concurrent
// use and should not cache to the point of hiding rotation by the
// surrounding environment.
type Source interface {
	Load() (string, error)
}
