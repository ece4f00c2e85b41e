package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
)

// DeleteCollectionHandler removes a collection and sends the user back to
// the home page. The form carries the name separately so the notification
// can name the collection without another backend round trip.
func DeleteCollectionHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Warn("failed to parse delete-collection form", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid form data")
		return
	}

	collectionID := ctx.Request.FormValue("collectionId")
	collectionName := ctx.Request.FormValue("collectionName")
	token := middlewares.CallerToken(ctx)

	if err := ctx.Backend.DeleteCollection(ctx, collectionID, token); err != nil {
		ctx.Logger.Warn("collection delete failed", "collection_id", collectionID, "error", err)
	}

	redirectWithNotification(ctx, "/", collectionDeletedNotification(collectionName), "")
}
