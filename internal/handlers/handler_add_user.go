package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
)

// AddUserHandler grants or updates a user's role on a collection. The
// sharing form submits the same endpoint for both; a non-empty user field
// marks a role change for an existing member.
func AddUserHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Warn("failed to parse add-user form", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid form data")
		return
	}

	collectionID := ctx.Request.FormValue("collection")
	email := ctx.Request.FormValue("emailAddress")
	role := ctx.Request.FormValue("role")
	if role == "" {
		role = "member"
	}
	isUpdate := ctx.Request.FormValue("user") != ""
	token := middlewares.CallerToken(ctx)

	if err := ctx.Backend.AddUser(ctx, collectionID, email, role, token); err != nil {
		ctx.Logger.Warn("add user failed", "collection_id", collectionID, "email", email, "error", err)
	}

	notification := userAddedNotification(email, isUpdate)
	redirectWithNotification(ctx, "/collections/"+collectionID, notification, "sharing")
}
