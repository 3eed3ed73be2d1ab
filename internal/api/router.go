package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/auratyme/dayplan/docs"
	"github.com/auratyme/dayplan/internal/api/handler"
	"github.com/auratyme/dayplan/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler       *handler.UserHandler
	taskHandler       *handler.TaskHandler
	fixedEventHandler *handler.FixedEventHandler
	profileHandler    *handler.ProfileHandler
	scheduleHandler   *handler.ScheduleHandler
	refinementHandler *handler.RefinementHandler
	presetHandler     *handler.PresetHandler
}

// NewRouter wires the HTTP handlers. Identity verification is deliberately
// not applied here: middleware.Authenticator is the seam a fronting
// gateway's pre-verified identity (or a real JWT verifier) plugs into, left
// undeployed per this service's "JWT verification middleware, interface
// only" scope.
func NewRouter(
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	fixedEventHandler *handler.FixedEventHandler,
	profileHandler *handler.ProfileHandler,
	scheduleHandler *handler.ScheduleHandler,
	refinementHandler *handler.RefinementHandler,
	presetHandler *handler.PresetHandler,
) *Router {
	return &Router{
		userHandler:       userHandler,
		taskHandler:       taskHandler,
		fixedEventHandler: fixedEventHandler,
		profileHandler:    profileHandler,
		scheduleHandler:   scheduleHandler,
		refinementHandler: refinementHandler,
		presetHandler:     presetHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			r.Route("/{userId}/tasks", func(r chi.Router) {
				r.Post("/", rt.taskHandler.Create)
				r.Get("/", rt.taskHandler.List)
				r.Delete("/{taskId}", rt.taskHandler.Delete)
			})

			r.Route("/{userId}/fixed-events", func(r chi.Router) {
				r.Post("/", rt.fixedEventHandler.Create)
				r.Get("/", rt.fixedEventHandler.List)
				r.Delete("/{eventId}", rt.fixedEventHandler.Delete)
			})

			r.Route("/{userId}/profile", func(r chi.Router) {
				r.Put("/", rt.profileHandler.Upsert)
				r.Get("/", rt.profileHandler.Get)
			})

			r.Route("/{userId}/schedule", func(r chi.Router) {
				r.Post("/", rt.scheduleHandler.Generate)
				r.Get("/", rt.scheduleHandler.Get)
				r.Get("/wake-time-suggestions", rt.scheduleHandler.WakeTimeSuggestions)
				r.Get("/history", rt.scheduleHandler.ListHistory)
				r.Get("/refinement", rt.refinementHandler.Get)
				r.Post("/refinement/feedback", rt.refinementHandler.PostFeedback)
			})

			r.Route("/{userId}/presets", func(r chi.Router) {
				r.Post("/", rt.presetHandler.Create)
				r.Get("/", rt.presetHandler.List)
				r.Delete("/{presetId}", rt.presetHandler.Delete)
			})
		})
	})

	return r
}
