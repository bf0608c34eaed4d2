// Package claims extracts the identity attributes a Shibboleth-protected
// front end injects into each request as typed, validated claim sets.
//
// The upstream SSO layer authenticates the user and exposes the SAML
// attributes as HTTP headers. This package trusts those headers as already
// verified and only enforces their presence; there is no signature checking
// here.
//
// # Usage
//
//	cs, err := claims.FromRequest(r)
//	if errors.Is(err, claims.ErrMissingClaim) {
//		// respond 400: the request did not pass through the SSO layer
//	}
package claims
