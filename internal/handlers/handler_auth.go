package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
)

// LoginHandler starts the local login flow. In production the load
// balancer authenticates upstream and this route only bounces home.
func LoginHandler(ctx *middlewares.AppContext) {
	if ctx.OIDCProvider == nil {
		ctx.Redirect("/", http.StatusSeeOther)
		return
	}

	if redirect := ctx.Request.URL.Query().Get("redirect"); redirect != "" {
		ctx.SessionManager.SetRedirectAfterLogin(ctx, redirect)
	}

	authURL, err := ctx.OIDCProvider.StartLogin(ctx)
	if err != nil {
		ctx.Logger.Error("failed to start login flow", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "failed to start login")
		return
	}

	ctx.Redirect(authURL, http.StatusSeeOther)
}

func CallbackHandler(ctx *middlewares.AppContext) {
	if ctx.OIDCProvider == nil {
		ctx.Redirect("/", http.StatusSeeOther)
		return
	}

	token, err := ctx.OIDCProvider.HandleCallback(ctx)
	if err != nil {
		ctx.Logger.Error("login callback failed", "error", err)
		ctx.Redirect(middlewares.UnauthorisedPath, http.StatusSeeOther)
		return
	}

	ctx.SessionManager.SetAccessToken(ctx, token)

	target := ctx.SessionManager.GetRedirectAfterLogin(ctx)
	if target == "" {
		target = "/"
	}
	ctx.Redirect(target, http.StatusSeeOther)
}

func LogoutHandler(ctx *middlewares.AppContext) {
	if err := ctx.SessionManager.Logout(ctx); err != nil {
		ctx.Logger.Error("failed to destroy session", "error", err)
	}

	ctx.Redirect("/", http.StatusSeeOther)
}
