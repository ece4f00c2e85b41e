package handlers

import (
	"net/http"

	"collection-console/internal/middlewares"
	"collection-console/internal/widgets"
)

// AddURLsHandler registers the URLs pasted into the addUrls textarea, one
// per line. The refresh query parameter switches the notification wording
// for re-crawls of already-registered URLs.
func AddURLsHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Warn("failed to parse add-urls form", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid form data")
		return
	}

	collectionID := ctx.Request.FormValue("collection")
	urls := widgets.SplitURLLines(ctx.Request.FormValue("addUrls"))
	refresh := ctx.Request.URL.Query().Get("refresh") == "true"
	token := middlewares.CallerToken(ctx)

	if len(urls) > 0 {
		if err := ctx.Backend.AddURLs(ctx, collectionID, urls, token); err != nil {
			ctx.Logger.Warn("add urls failed", "collection_id", collectionID, "error", err)
		}
	}

	notification := urlsAddedNotification(len(urls), refresh)
	redirectWithNotification(ctx, "/collections/"+collectionID, notification, "")
}
