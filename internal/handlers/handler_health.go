package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
	"collection-console/internal/version"
)

// HealthHandler reports liveness plus the build sha, null when the binary
// was built without one.
func HealthHandler(ctx *middlewares.AppContext) {
	var sha any
	if commit := version.GetGitCommit(); commit != "" {
		sha = commit
	}

	ctx.WriteJSON(http.StatusOK, map[string]any{
		"status": "ok",
		"sha":    sha,
	})
}
