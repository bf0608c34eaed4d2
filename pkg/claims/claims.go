package claims

import (
	"fmt"
	"net/http"
)

// Header names under which the Shibboleth front end exposes SAML attributes.
// These are the HTTP-header equivalents of the CGI variables HTTP_EPPN,
// HTTP_DISPLAYNAME and HTTP_AFFILIATION.
const (
	HeaderEPPN        = "Eppn"
	HeaderDisplayName = "Displayname"
	HeaderAffiliation = "Affiliation"
)

// ClaimSet is the typed record of identity attributes asserted by the
// upstream identity provider, plus the caller-supplied continuation target.
type ClaimSet struct {
	// EPPN is the eduPersonPrincipalName, an opaque identity string.
	EPPN string
	// DisplayName is the human-readable name of the principal.
	DisplayName string
	// Affiliation is the principal's role or organization string.
	Affiliation string
	// URL is the caller-supplied continuation query string. Optional.
	URL string
}

// FromRequest extracts the claim set from a request that already passed
// through the SSO layer. The three identity headers are required; the
// continuation target is the request's raw query string and may be empty.
// FromRequest has no side effects.
func FromRequest(r *http.Request) (ClaimSet, error) {
	cs := ClaimSet{
		EPPN:        r.Header.Get(HeaderEPPN),
		DisplayName: r.Header.Get(HeaderDisplayName),
		Affiliation: r.Header.Get(HeaderAffiliation),
		URL:         r.URL.RawQuery,
	}
	if err := cs.Validate(); err != nil {
		return ClaimSet{}, err
	}
	return cs, nil
}

// Validate checks that all required claims are present. The returned error
// wraps ErrMissingClaim and names the first absent claim.
func (c ClaimSet) Validate() error {
	switch {
	case c.EPPN == "":
		return fmt.Errorf("%w: eppn", ErrMissingClaim)
	case c.DisplayName == "":
		return fmt.Errorf("%w: displayName", ErrMissingClaim)
	case c.Affiliation == "":
		return fmt.Errorf("%w: affiliation", ErrMissingClaim)
	}
	return nil
}
