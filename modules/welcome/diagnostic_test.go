package welcome_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isle-stat/ssobridge/modules/welcome"
	"github.com/isle-stat/ssobridge/pkg/secrets"
)

func TestDiagnosticDisabledByDefault(t *testing.T) {
	t.Parallel()

	svc := welcome.NewService(testConfig(), secrets.StaticSource("s3cr3t"), discardLogger())

	w := httptest.NewRecorder()
	svc.Handle().ServeHTTP(w, ssoRequest("/diagnostic"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiagnosticPage(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Diagnostic = true
	svc := welcome.NewService(cfg, secrets.StaticSource("s3cr3t"), discardLogger(),
		welcome.WithMinter(pinnedMinter([]byte{0xde, 0xad, 0xbe, 0xef})))

	w := httptest.NewRecorder()
	svc.Handle().ServeHTTP(w, ssoRequest("/diagnostic?next=/lesson/3"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	// Decoded values, not the base64 forms.
	assert.Contains(t, body, "jdoe@example.edu")
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "staff")
	assert.Contains(t, body, "6d9194a91d877846804290157c458892a8ce6fdcd4f352f9105b1c5811e73e81")
	assert.Contains(t, body, testTarget)
	// No redirect is issued in diagnostic mode.
	assert.Empty(t, w.Header().Get("Location"))
}

func TestDiagnosticVerboseOnFailure(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Diagnostic = true
	cfg.SecretFile = t.TempDir() + "/missing"
	svc := welcome.NewService(cfg, nil, discardLogger())

	w := httptest.NewRecorder()
	svc.Handle().ServeHTTP(w, ssoRequest("/diagnostic"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "secret unavailable")
}
