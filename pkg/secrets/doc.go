// Package secrets loads the shared signing secret from its provisioned
// location.
//
// The secret is an opaque string prepared by the surrounding environment;
// rotation and storage management are out of scope. Sources are read-only
// and fail fast: a request with no usable secret gets no token.
package secrets
