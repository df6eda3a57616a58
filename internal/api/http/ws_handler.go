package http

import (
	"net/http"
	"time"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/realtime"

	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	cfg      config.RealtimeConfig
}

func NewWSHandler(hub *realtime.Hub, cfg config.RealtimeConfig) *WSHandler {
	return &WSHandler{
		hub: hub,
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
	}
}

// Serve handles GET /ws. The caller has already been authenticated by the
// middleware, so the connection is bound to its user before the first frame.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipal(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		logger.Debug("Websocket upgrade failed", "error", err)
		return
	}

	writeTimeout := time.Duration(h.cfg.WriteTimeoutSecs) * time.Second
	client := realtime.NewClient(h.hub, conn, h.cfg.SendBufferSize, writeTimeout)
	h.hub.Register(principal.UserID, client)

	logger.Debug("Realtime connection established", "user_id", principal.UserID)
	go client.Run()
}

// originChecker allows same-origin requests plus the configured origins. An
// empty list means same-origin only.
func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if origin == "http://"+r.Host || origin == "https://"+r.Host {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
