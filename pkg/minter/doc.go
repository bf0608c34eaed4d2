// Package minter derives the integrity token carried by the SSO redirect
// and assembles the redirect URL around it.
//
// A token is the lowercase-hex SHA-256 digest of a canonical string joining,
// in fixed order, the mint timestamp, a fresh random salt, the shared
// secret, the three identity claims and a fixed literal suffix. A party
// holding the same secret recomputes the digest from the transmitted fields
// and compares; the salt and timestamp make every token unique even for
// identical claims.
//
// The canonical field order, the " :: " separator, the literal suffix, the
// six-digit timestamp precision and the query parameter order of
// RedirectURL are all wire contract shared with the receiving application.
// None of them may change independently on either side.
//
// # Usage
//
//	m := minter.New(minter.Config{SaltLength: 4})
//	minted, err := m.Mint(cs, secret)
//	if err != nil {
//		return err
//	}
//	http.Redirect(w, r, minter.RedirectURL(target, minted), http.StatusFound)
package minter
