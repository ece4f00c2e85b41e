package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
)

// RemoveUserHandler revokes a user's access to a collection.
func RemoveUserHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Warn("failed to parse remove-user form", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid form data")
		return
	}

	collectionID := ctx.Request.FormValue("collection")
	userID := ctx.Request.FormValue("user")
	email := ctx.Request.FormValue("emailAddress")
	token := middlewares.CallerToken(ctx)

	if err := ctx.Backend.RemoveUser(ctx, collectionID, userID, token); err != nil {
		ctx.Logger.Warn("remove user failed", "collection_id", collectionID, "user_id", userID, "error", err)
	}

	redirectWithNotification(ctx, "/collections/"+collectionID, userRemovedNotification(email), "sharing")
}
