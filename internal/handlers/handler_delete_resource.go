package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
)

// DeleteResourceHandler removes a resource and returns to the collection's
// resources page without a notification.
func DeleteResourceHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Warn("failed to parse delete-resource form", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid form data")
		return
	}

	collectionID := ctx.Request.FormValue("collection")
	resourceID := ctx.Request.FormValue("resource")
	token := middlewares.CallerToken(ctx)

	if err := ctx.Backend.DeleteResource(ctx, collectionID, resourceID, token); err != nil {
		ctx.Logger.Warn("resource delete failed", "collection_id", collectionID, "resource_id", resourceID, "error", err)
	}

	ctx.Redirect("/collections/"+collectionID+"/resources", http.StatusSeeOther)
}
