package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
)

// UpdateCollectionHandler serves both the create and the edit form. An
// empty name is a silent no-op back to the referring page; a collection id
// in the form selects update over create.
func UpdateCollectionHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Warn("failed to parse collection form", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid form data")
		return
	}

	collectionID := ctx.Request.FormValue("collection")
	name := ctx.Request.FormValue("name")
	description := ctx.Request.FormValue("description")
	prompt := ctx.Request.FormValue("prompt")
	token := middlewares.CallerToken(ctx)

	if name == "" {
		target := "/"
		if collectionID != "" {
			target = "/collections/" + collectionID
		}
		ctx.Redirect(target, http.StatusSeeOther)
		return
	}

	if collectionID != "" {
		if err := ctx.Backend.UpdateCollection(ctx, collectionID, name, description, prompt, token); err != nil {
			ctx.Logger.Warn("collection update failed", "collection_id", collectionID, "error", err)
		}
		redirectWithNotification(ctx, "/collections/"+collectionID, "", "settings")
		return
	}

	collection, err := ctx.Backend.AddCollection(ctx, name, description, prompt, token)
	if err != nil {
		ctx.Logger.Warn("collection create failed", "name", name, "error", err)
		ctx.Redirect("/", http.StatusSeeOther)
		return
	}

	ctx.Redirect("/collections/"+collection.ID, http.StatusSeeOther)
}
