package app

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"blogapp/internal/config"
	"blogapp/internal/database"
	handlers "blogapp/internal/handler"
	"blogapp/internal/metrics"
	"blogapp/internal/middleware"
	"blogapp/internal/repository"
	"blogapp/internal/service"
)

func App(cfg *config.Config, log *zap.Logger) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB, cfg.BcryptCost)
	services := service.NewService(repo, cfg)

	return db, services, nil
}

// NewRouter registers the API routes, the health and metrics endpoints and
// the guarded static pages, and wraps them in the middleware chain.
func NewRouter(h *handlers.Handlers, cfg *config.Config, m *metrics.Metrics, log *zap.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.MetricsMiddleware(m))

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)

	api.Handle("/me", protected(h.GetCurrentUser)).Methods(http.MethodGet)
	api.Handle("/me/stats", protected(h.GetMyStats)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)

	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.Handle("/posts", protected(h.CreatePost)).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.Handle("/posts/{id}", protected(h.UpdatePost)).Methods(http.MethodPatch)
	api.Handle("/posts/{id}", protected(h.DeletePost)).Methods(http.MethodDelete)
	api.Handle("/posts/{id}/like", protected(h.AddLike)).Methods(http.MethodPost)
	api.Handle("/posts/{id}/like", protected(h.RemoveLike)).Methods(http.MethodDelete)

	fallback := apiFallback(api)
	api.NotFoundHandler = fallback
	api.MethodNotAllowedHandler = fallback

	// pages
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	return middleware.Chain(
		router,
		middleware.RouteGuard,
		middleware.AuthMiddleware(h.AuthService, cfg.Session.CookieName),
		middleware.LoggingMiddleware(log),
		middleware.CORSMiddleware,
		middleware.RecoverMiddleware(log),
	)
}

func protected(fn http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(fn)
}

var apiMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}

// apiFallback answers /api requests that no route served: 405 when the path
// is registered under another method, 404 otherwise. It never falls through
// to the static pages.
func apiFallback(api *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, method := range apiMethods {
			if method == r.Method {
				continue
			}

			candidate := r.Clone(r.Context())
			candidate.Method = method

			var match mux.RouteMatch
			if api.Match(candidate, &match) && match.MatchErr == nil && match.Route != nil {
				handlers.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
				return
			}
		}

		handlers.WriteError(w, "Not found", http.StatusNotFound)
	})
}
