package minter

import (
	"crypto/subtle"

	"github.com/isle-stat/ssobridge/pkg/claims"
)

// Verify recomputes the digest from the transmitted fields and the shared
// secret and compares it to token in constant time. It exists so the minting
// side and any verifier share a single canonical serialization; the deployed
// verifier lives in the receiving application.
func Verify(token, timestamp, salt, secret string, cs claims.ClaimSet) bool {
	expected := deriveToken(timestamp, salt, secret, cs)
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
