package welcome

import (
	"html/template"
	"net/http"
	"os"

	"github.com/isle-stat/ssobridge/pkg/minter"
)

// diagnosticPage mirrors the intermediate values of a mint for manual
// verification against the downstream application. It renders decoded
// identity claims, which is why the whole mode is opt-in.
var diagnosticPage = template.Must(template.New("diagnostic").Parse(`<html>
  <body>
    <h1>SSO attributes for request {{.URL}}</h1>
    EPPN         {{.EPPN}}<br/>
    Display Name {{.DisplayName}}<br/>
    Affiliation  {{.Affiliation}}<br/>
    Redirect to: {{.Target}}<br/>
    Token        {{.Token}}<br/>
    Directory    {{.Dir}}<br/>
    Diagnostic completed!
  </body>
</html>
`))

type diagnosticData struct {
	URL         string
	EPPN        string
	DisplayName string
	Affiliation string
	Target      string
	Token       string
	Dir         string
}

// handleDiagnostic runs the same mint as the production path but renders
// the result as HTML instead of redirecting. Unlike the production path it
// may be verbose about failures.
func (s *Service) handleDiagnostic(w http.ResponseWriter, r *http.Request) {
	m, err := s.mint(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dir, _ := os.Getwd()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := diagnosticPage.Execute(w, diagnosticData{
		URL:         m.URL,
		EPPN:        m.EPPN,
		DisplayName: m.DisplayName,
		Affiliation: m.Affiliation,
		Target:      minter.RedirectURL(s.cfg.RedirectTarget, m),
		Token:       m.Token,
		Dir:         dir,
	}); err != nil {
		s.log.ErrorContext(r.Context(), "diagnostic render failed", "error", err)
	}
}
