package minter

import "strings"

// RedirectURL appends the token and encoded claims to the base target URL.
// Parameters appear in the fixed order token, time, salt, eppn, name, affil,
// url. The order is part of the wire contract, which is why this is built
// explicitly rather than through a sorting query encoder.
func RedirectURL(base string, m Minted) string {
	pairs := [...][2]string{
		{"token", m.Token},
		{"time", m.Time},
		{"salt", m.Salt},
		{"eppn", EncodeClaim(m.EPPN)},
		{"name", EncodeClaim(m.DisplayName)},
		{"affil", EncodeClaim(m.Affiliation)},
		{"url", EncodeClaim(m.URL)},
	}

	var b strings.Builder
	b.WriteString(base)
	sep := byte('?')
	for _, p := range pairs {
		b.WriteByte(sep)
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(p[1])
		sep = '&'
	}
	return b.String()
}
