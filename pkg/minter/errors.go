package minter

import "errors"

// ErrSaltGeneration is returned when the randomness source fails. No token
// is ever derived from a partial or missing salt.
var ErrSaltGeneration = errors.New("salt generation failed")
