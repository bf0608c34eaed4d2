package claims

import "errors"

// ErrMissingClaim is returned when a required identity header is absent from
// the request. Requests without the full claim triple never reached the SSO
// layer and must not receive a redirect.
var ErrMissingClaim = errors.New("required identity claim missing")
