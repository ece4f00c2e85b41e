package middlewares

import (
	"net/http"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

// SessionProvider is the per-browser-session contract: the validated access
// token and the admin flag, plus the transient OAuth state the local login
// flow needs between redirects.
type SessionProvider interface {
	SetAccessToken(ctx *AppContext, token string)
	GetAccessToken(ctx *AppContext) (token string, ok bool)
	SetIsAdmin(ctx *AppContext, isAdmin bool)
	IsAdmin(ctx *AppContext) bool
	SetRedirectAfterLogin(ctx *AppContext, redirectAfterLogin string)
	GetRedirectAfterLogin(ctx *AppContext) string
	SetOauthState(ctx *AppContext, state string)
	GetOauthState(ctx *AppContext) string
	ClearOauthState(ctx *AppContext)
	SetOauthNonce(ctx *AppContext, nonce string)
	GetOauthNonce(ctx *AppContext) string
	ClearOauthNonce(ctx *AppContext)
	SetOauthCodeVerifier(ctx *AppContext, verifier string)
	GetOauthCodeVerifier(ctx *AppContext) string
	ClearOauthCodeVerifier(ctx *AppContext)
	Logout(ctx *AppContext) error

	LoadAndSave(next http.Handler) http.Handler
}
