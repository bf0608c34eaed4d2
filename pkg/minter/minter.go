package minter

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/isle-stat/ssobridge/pkg/claims"
)

// DefaultSaltLength is the salt size in bytes expected by the deployed
// verifier. Short for a cryptographic nonce, but part of the existing wire
// contract; raise it only together with the downstream side.
const DefaultSaltLength = 4

// Config holds the tunable parts of token minting.
type Config struct {
	// SaltLength is the number of random bytes mixed into each token.
	SaltLength int `env:"MINTER_SALT_LENGTH" envDefault:"4"`
}

// Minted is a claim set bound to a timestamp and salt, carrying the derived
// integrity token. The secret participates in the derivation but is never
// stored here.
type Minted struct {
	claims.ClaimSet

	// Time is the mint wall-clock time as seconds since epoch with exactly
	// six fractional digits.
	Time string
	// Salt is the per-token random value, lowercase hex.
	Salt string
	// Token is the lowercase-hex SHA-256 digest over the canonical string.
	Token string
}

// Minter derives integrity tokens binding identity claims to a timestamp,
// a fresh salt and a shared secret. The zero value is not usable; construct
// with New. A Minter is safe for concurrent use.
type Minter struct {
	saltLen int
	now     func() time.Time
	rand    io.Reader
}

// Option configures a Minter.
type Option func(*Minter)

// WithClock overrides the wall-clock source. Intended for tests; production
// tokens must carry real time.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("WithClock: now cannot be nil")
	}
	return func(m *Minter) { m.now = now }
}

// WithRand overrides the salt randomness source. Intended for tests; any
// deterministic source in production breaks the non-replayability of tokens.
func WithRand(r io.Reader) Option {
	if r == nil {
		panic("WithRand: reader cannot be nil")
	}
	return func(m *Minter) { m.rand = r }
}

// New returns a Minter using the wall clock and crypto/rand. A non-positive
// salt length falls back to DefaultSaltLength.
func New(cfg Config, opts ...Option) *Minter {
	m := &Minter{
		saltLen: cfg.SaltLength,
		now:     time.Now,
		rand:    rand.Reader,
	}
	if m.saltLen <= 0 {
		m.saltLen = DefaultSaltLength
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mint binds the claim set to a fresh timestamp and salt and derives the
// token. Each call produces an independent salt and time, so two mints of
// the same claims never yield the same token.
func (m *Minter) Mint(cs claims.ClaimSet, secret string) (Minted, error) {
	if err := cs.Validate(); err != nil {
		return Minted{}, err
	}

	salt := make([]byte, m.saltLen)
	if _, err := io.ReadFull(m.rand, salt); err != nil {
		return Minted{}, errors.Join(ErrSaltGeneration, err)
	}

	minted := Minted{
		ClaimSet: cs,
		Time:     formatTimestamp(m.now()),
		Salt:     hex.EncodeToString(salt),
	}
	minted.Token = deriveToken(minted.Time, minted.Salt, secret, cs)
	return minted, nil
}

// formatTimestamp renders t as seconds since epoch with exactly six
// fractional digits, the fixed precision the verifier parses.
func formatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}
