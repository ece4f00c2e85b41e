package middlewares

import (
	"net/http"
	"strings"

	"collection-console/internal/metrics"
	"collection-console/internal/tokens"
)

// PublicPaths bypass the auth gate entirely: health check, the login
// endpoints themselves, the unauthorised page, and static assets.
var PublicPaths = []string{
	"/assets/",
	"/unauthorised",
	"/api/health",
	"/auth/login",
	"/auth/callback",
	"/auth/logout",
}

const (
	LoginPath        = "/auth/login"
	UnauthorisedPath = "/unauthorised"
)

func IsPublicPath(path string) bool {
	for _, public := range PublicPaths {
		if strings.HasPrefix(path, public) {
			return true
		}
	}
	return false
}

// RequireAuth is the auth gate. Non-public paths need a valid, non-expired
// token from the trusted proxy header or the session; on success the token
// and the computed admin flag are written to the session before the request
// proceeds. A single decode failure is terminal for the request.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		token := r.Header.Get(appCtx.Config.Auth.TrustedProxyHeader)
		if token == "" {
			token, _ = appCtx.SessionManager.GetAccessToken(appCtx)
		}

		if token == "" {
			appCtx.Logger.Warn("no auth token found for protected path", "path", r.URL.Path)
			metrics.AuthRedirectsTotal.WithLabelValues("missing_token").Inc()
			appCtx.Redirect(LoginPath, http.StatusSeeOther)
			return
		}

		claims, err := tokens.ParseAccessToken(token)
		if err != nil {
			appCtx.Logger.Warn("rejected auth token", "path", r.URL.Path, "error", err)
			metrics.AuthRedirectsTotal.WithLabelValues("invalid_token").Inc()
			appCtx.Redirect(UnauthorisedPath, http.StatusSeeOther)
			return
		}

		appCtx.SessionManager.SetAccessToken(appCtx, token)
		appCtx.SessionManager.SetIsAdmin(appCtx, appCtx.Config.IsAdminUser(claims.Email))

		next.ServeHTTP(w, r)
	})
}

// CallerToken resolves the bearer token the proxy handlers forward to the
// backend, in the same order the gate uses: trusted header, then session.
func CallerToken(ctx *AppContext) string {
	if token := ctx.Request.Header.Get(ctx.Config.Auth.TrustedProxyHeader); token != "" {
		return token
	}

	token, _ := ctx.SessionManager.GetAccessToken(ctx)
	return token
}
