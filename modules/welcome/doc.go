// Package welcome serves the SSO welcome endpoint: it accepts requests that
// already passed the Shibboleth layer and redirects them to the ISLE
// application with a signed claim set in the query string.
//
// The module has two routes. The production route mints a token and answers
// with an HTTP 302; it never emits a redirect on failure. The optional
// diagnostic route renders every intermediate value as HTML for operators
// and is only mounted when explicitly enabled.
package welcome
