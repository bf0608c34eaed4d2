package minter

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/isle-stat/ssobridge/pkg/claims"
)

// canonicalSuffix namespaces the digest so the shared secret cannot be
// replayed against unrelated uses of the same key. Not secret, but fixed:
// the downstream verifier appends the identical literal.
const canonicalSuffix = "ISLE ROCKS!"

// fieldSeparator joins the canonical fields.
const fieldSeparator = " :: "

// canonicalString serializes the digest input in the fixed order the
// downstream verifier recomputes: time, salt, secret, eppn, displayName,
// affiliation, then the literal suffix. The digest is taken over the UTF-8
// bytes of this string; changing the order, separator or suffix on one side
// only breaks verification.
func canonicalString(timestamp, salt, secret string, cs claims.ClaimSet) string {
	return strings.Join([]string{
		timestamp,
		salt,
		secret,
		cs.EPPN,
		cs.DisplayName,
		cs.Affiliation,
		canonicalSuffix,
	}, fieldSeparator)
}

// deriveToken hashes the canonical string into the lowercase-hex token.
func deriveToken(timestamp, salt, secret string, cs claims.ClaimSet) string {
	sum := sha256.Sum256([]byte(canonicalString(timestamp, salt, secret, cs)))
	return hex.EncodeToString(sum[:])
}
