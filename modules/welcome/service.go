package welcome

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/isle-stat/ssobridge/pkg/claims"
	"github.com/isle-stat/ssobridge/pkg/minter"
	"github.com/isle-stat/ssobridge/pkg/secrets"
)

// Service turns an SSO-authenticated request into a signed redirect to the
// configured target. Each request is handled independently: claims are
// extracted, the secret is read, a token is minted, and the redirect is
// issued, with no state surviving the request.
type Service struct {
	cfg    Config
	secret secrets.Source
	minter *minter.Minter
	log    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMinter overrides the token minter, usually to pin clock and salt in
// tests.
func WithMinter(m *minter.Minter) Option {
	if m == nil {
		panic("WithMinter: minter cannot be nil")
	}
	return func(s *Service) { s.minter = m }
}

// NewService wires the module. A nil source falls back to reading the
// configured secret file; a nil logger falls back to slog.Default.
func NewService(cfg Config, source secrets.Source, log *slog.Logger, opts ...Option) *Service {
	if source == nil {
		source = secrets.NewFileSource(cfg.SecretFile)
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		cfg:    cfg,
		secret: source,
		minter: minter.New(minter.Config{SaltLength: cfg.SaltLength}),
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// handleWelcome is the production path: extract claims, mint, redirect.
func (s *Service) handleWelcome(w http.ResponseWriter, r *http.Request) {
	m, err := s.mint(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	target := minter.RedirectURL(s.cfg.RedirectTarget, m)
	s.log.DebugContext(r.Context(), "issuing sso redirect",
		slog.String("eppn", m.EPPN),
		slog.String("salt", m.Salt),
		slog.String("token", m.Token))
	http.Redirect(w, r, target, http.StatusFound)
}

// mint runs the single-pass transform shared by the production and
// diagnostic paths. The secret is read fresh per request and goes out of
// scope as soon as the token is derived.
func (s *Service) mint(r *http.Request) (minter.Minted, error) {
	cs, err := claims.FromRequest(r)
	if err != nil {
		return minter.Minted{}, err
	}
	secret, err := s.secret.Load()
	if err != nil {
		return minter.Minted{}, err
	}
	return s.minter.Mint(cs, secret)
}

// fail maps request-local errors to status codes. Failure responses carry a
// generic message only: no secret, no partial token, no claim echo, and no
// redirect.
func (s *Service) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "token minting failed"
	if errors.Is(err, claims.ErrMissingClaim) {
		status = http.StatusBadRequest
		msg = "missing identity claim"
	}
	s.log.ErrorContext(r.Context(), "sso redirect failed",
		slog.Int("status", status),
		slog.Any("error", err))
	http.Error(w, msg, status)
}
