package minter

import "encoding/base64"

// Claim values travel as URL-safe base64 with padding retained, matching
// what the receiving application already decodes. Salt and token are hex
// and the timestamp is a plain decimal, so only claim strings need this.

// EncodeClaim encodes v so it can be embedded as a single query-string
// component without further escaping.
func EncodeClaim(v string) string {
	return base64.URLEncoding.EncodeToString([]byte(v))
}

// DecodeClaim reverses EncodeClaim, recovering the original bytes exactly.
func DecodeClaim(v string) (string, error) {
	b, err := base64.URLEncoding.DecodeString(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
