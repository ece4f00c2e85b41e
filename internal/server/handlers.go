package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"collection-console/internal/handlers"
	"collection-console/internal/middlewares"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Use(middlewares.RequireAuth)

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/assets"))))

	r.Get("/", ctx.HandlerFunc(handlers.HomeHandler))
	r.Get("/unauthorised", ctx.HandlerFunc(handlers.UnauthorisedHandler))

	r.Route("/collections/{collection}", func(r chi.Router) {
		r.Get("/", ctx.HandlerFunc(handlers.CollectionHandler))
		r.Get("/resources", ctx.HandlerFunc(handlers.ResourcesHandler))
		r.Get("/resources/{resource}", ctx.HandlerFunc(handlers.ResourceHandler))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", ctx.HandlerFunc(handlers.LoginHandler))
		r.Get("/callback", ctx.HandlerFunc(handlers.CallbackHandler))
		r.Get("/logout", ctx.HandlerFunc(handlers.LogoutHandler))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", ctx.HandlerFunc(handlers.HealthHandler))

		r.Post("/upload", ctx.HandlerFunc(handlers.UploadHandler))
		r.Post("/add-urls", ctx.HandlerFunc(handlers.AddURLsHandler))
		r.Post("/update-collection", ctx.HandlerFunc(handlers.UpdateCollectionHandler))
		r.Post("/delete-collection", ctx.HandlerFunc(handlers.DeleteCollectionHandler))
		r.Post("/add-user", ctx.HandlerFunc(handlers.AddUserHandler))
		r.Post("/remove-user", ctx.HandlerFunc(handlers.RemoveUserHandler))
		r.Post("/delete-resource", ctx.HandlerFunc(handlers.DeleteResourceHandler))

		r.Put("/collections/{collection}/resources/{resource}/single-document",
			ctx.HandlerFunc(handlers.UpdateSingleDocumentHandler))
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
