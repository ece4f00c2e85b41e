package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"collection-console/internal/middlewares"
)

type singleDocumentRequest struct {
	PageContent string `json:"page_content"`
}

// UpdateSingleDocumentHandler is the one JSON endpoint: the rich-text
// editor PUTs replacement page content for a single-document resource and
// renders the backend's response verbatim. Unlike the form handlers, a
// backend failure is surfaced to the caller.
func UpdateSingleDocumentHandler(ctx *middlewares.AppContext) {
	collectionID := chi.URLParam(ctx.Request, "collection")
	resourceID := chi.URLParam(ctx.Request, "resource")
	if collectionID == "" || resourceID == "" {
		ctx.SetJSONError(http.StatusBadRequest, "collection and resource ids are required")
		return
	}

	var body singleDocumentRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&body); err != nil || body.PageContent == "" {
		ctx.SetJSONError(http.StatusBadRequest, "page_content is required")
		return
	}

	token, _ := ctx.SessionManager.GetAccessToken(ctx)

	result, err := ctx.Backend.UpdateSingleDocument(ctx, collectionID, resourceID, body.PageContent, token)
	if err != nil {
		ctx.SetJSONError(http.StatusInternalServerError, err.Error())
		return
	}

	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(http.StatusOK)
	if _, err := ctx.Response.Write(result); err != nil {
		ctx.Logger.Error("failed to write response", "error", err)
	}
}
