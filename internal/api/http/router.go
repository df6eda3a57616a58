package http

import (
	"net/http"
	"time"

	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Jobs          *JobHandler
	Applications  *ApplicationHandler
	Notifications *NotificationHandler
	WS            *WSHandler
}

// NewRouter wires the HTTP surface. Auth endpoints and the health check are
// public; everything else sits behind the token middleware.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/jobs", h.Jobs.Create).Methods(http.MethodPost)
	authed.HandleFunc("/jobs", h.Jobs.List).Methods(http.MethodGet)
	authed.HandleFunc("/jobs/{id}", h.Jobs.Get).Methods(http.MethodGet)

	authed.HandleFunc("/jobs/{id}/applications", h.Applications.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/jobs/{id}/applications", h.Applications.ListForJob).Methods(http.MethodGet)
	authed.HandleFunc("/applications", h.Applications.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/applications/{id}", h.Applications.Get).Methods(http.MethodGet)
	authed.HandleFunc("/applications/{id}/status", h.Applications.SetStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/applications/{id}/withdraw", h.Applications.Withdraw).Methods(http.MethodPost)

	authed.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/unread-count", h.Notifications.UnreadCount).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", h.Notifications.MarkAsRead).Methods(http.MethodPost)

	ws := r.PathPrefix("/ws").Subrouter()
	ws.Use(AuthMiddleware(tokens))
	ws.HandleFunc("", h.WS.Serve).Methods(http.MethodGet)

	return r
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
