package welcome

// Config holds the welcome module settings. The defaults reproduce the
// original deployment: the secret file next to the working directory, the
// ISLE frontend as redirect target, 4-byte salts and diagnostics off.
type Config struct {
	// SecretFile is the path of the shared-secret file.
	SecretFile string `env:"WELCOME_SECRET_FILE" envDefault:"./adata"`

	// RedirectTarget is the base URL the token and claims are appended to.
	RedirectTarget string `env:"WELCOME_REDIRECT_TARGET" envDefault:"https://isle.stat.cmu.edu/#/shibboleth"`

	// SaltLength is the per-token salt size in bytes. The downstream
	// verifier expects 4; change only together with it.
	SaltLength int `env:"WELCOME_SALT_LENGTH" envDefault:"4"`

	// Diagnostic mounts the /diagnostic page. It renders decoded identity
	// values, so it must stay off in production.
	Diagnostic bool `env:"WELCOME_DIAGNOSTIC" envDefault:"false"`
}
