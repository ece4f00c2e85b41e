package handlers

import (
	"html/template"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"collection-console/internal/middlewares"
	"collection-console/internal/models"
	"collection-console/internal/web"
)

const resourcesPageSize = 20

type homePageData struct {
	Notification template.HTML
	Collections  []models.Collection
	CanCreate    bool
}

type collectionPageData struct {
	Notification       template.HTML
	Collection         models.Collection
	Users              []models.UserRole
	CanEdit            bool
	CanDelete          bool
	CanManageUsers     bool
	CanManageResources bool
}

type resourcesPageData struct {
	Notification template.HTML
	CollectionID string
	Resources    []models.Resource
	Page         int
	TotalPages   int
	HasPrev      bool
	HasNext      bool
	PrevPage     int
	NextPage     int
}

type resourcePageData struct {
	Notification template.HTML
	CollectionID string
	Resource     models.Resource
	Fragments    []models.Document
	Editable     bool
	PageContent  string
}

func notificationParam(ctx *middlewares.AppContext) template.HTML {
	return web.Notification(ctx.Request.URL.Query().Get("notification"))
}

func renderPage(ctx *middlewares.AppContext, name string, data any) {
	ctx.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Render(ctx.Response, name, data); err != nil {
		ctx.Logger.Error("page render failed", "page", name, "error", err)
	}
}

func renderBackendError(ctx *middlewares.AppContext, err error) {
	ctx.Logger.Warn("backend call failed rendering page", "path", ctx.Request.URL.Path, "error", err)
	http.Error(ctx.Response, err.Error(), http.StatusBadGateway)
}

// HomeHandler lists every collection the caller can see.
func HomeHandler(ctx *middlewares.AppContext) {
	token := middlewares.CallerToken(ctx)

	list, err := ctx.Backend.GetCollections(ctx, token)
	if err != nil {
		renderBackendError(ctx, err)
		return
	}

	renderPage(ctx, "home", homePageData{
		Notification: notificationParam(ctx),
		Collections:  list.Collections,
		CanCreate:    list.IsAdmin,
	})
}

func CollectionHandler(ctx *middlewares.AppContext) {
	collectionID := chi.URLParam(ctx.Request, "collection")
	token := middlewares.CallerToken(ctx)

	collection, err := ctx.Backend.GetCollection(ctx, collectionID, token)
	if err != nil {
		renderBackendError(ctx, err)
		return
	}

	data := collectionPageData{
		Notification:       notificationParam(ctx),
		Collection:         collection,
		CanEdit:            hasPermission(collection, models.CollectionPermissionEdit),
		CanDelete:          hasPermission(collection, models.CollectionPermissionDelete),
		CanManageUsers:     hasPermission(collection, models.CollectionPermissionManageUsers),
		CanManageResources: hasPermission(collection, models.CollectionPermissionManageResources),
	}

	if data.CanManageUsers {
		users, err := ctx.Backend.GetUsers(ctx, collectionID, token)
		if err != nil {
			ctx.Logger.Warn("failed to load collection users", "collection_id", collectionID, "error", err)
		}
		data.Users = users
	}

	renderPage(ctx, "collection", data)
}

func ResourcesHandler(ctx *middlewares.AppContext) {
	collectionID := chi.URLParam(ctx.Request, "collection")
	token := middlewares.CallerToken(ctx)

	page, err := strconv.Atoi(ctx.Request.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	list, err := ctx.Backend.GetResources(ctx, collectionID, page, resourcesPageSize, token)
	if err != nil {
		renderBackendError(ctx, err)
		return
	}

	totalPages := (list.Total + resourcesPageSize - 1) / resourcesPageSize
	if totalPages < 1 {
		totalPages = 1
	}

	renderPage(ctx, "resources", resourcesPageData{
		Notification: notificationParam(ctx),
		CollectionID: collectionID,
		Resources:    list.Resources,
		Page:         page,
		TotalPages:   totalPages,
		HasPrev:      page > 1,
		HasNext:      page < totalPages,
		PrevPage:     page - 1,
		NextPage:     page + 1,
	})
}

func ResourceHandler(ctx *middlewares.AppContext) {
	collectionID := chi.URLParam(ctx.Request, "collection")
	resourceID := chi.URLParam(ctx.Request, "resource")
	token := middlewares.CallerToken(ctx)

	resource, err := ctx.Backend.GetResourceDetails(ctx, collectionID, resourceID, token)
	if err != nil {
		renderBackendError(ctx, err)
		return
	}

	var fragments []models.Document
	if slices.Contains(resource.Permissions, models.ResourcePermissionReadContents) {
		fragments, err = ctx.Backend.GetResourceFragments(ctx, collectionID, resourceID, token)
		if err != nil {
			ctx.Logger.Warn("failed to load resource fragments", "resource_id", resourceID, "error", err)
		}
	}

	data := resourcePageData{
		Notification: notificationParam(ctx),
		CollectionID: collectionID,
		Resource:     resource,
		Fragments:    fragments,
	}

	// Single-fragment resources get the inline editor wired to the
	// single-document endpoint.
	if len(fragments) == 1 {
		data.Editable = true
		data.PageContent = fragments[0].PageContent
	}

	renderPage(ctx, "resource", data)
}

func UnauthorisedHandler(ctx *middlewares.AppContext) {
	renderPage(ctx, "unauthorised", struct{}{})
}

func hasPermission(collection models.Collection, permission models.CollectionPermission) bool {
	return slices.Contains(collection.Permissions, permission)
}
