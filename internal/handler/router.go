package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	streamHandler "support-widget/internal/handler/stream"
	supportHandler "support-widget/internal/handler/support"
	middlewarePkg "support-widget/internal/middleware"
	"support-widget/internal/service/agent"
)

// NewRouter wires HTTP routes to the support agent.
func NewRouter(agentSvc *agent.Agent) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	support := supportHandler.New(agentSvc)
	ws := supportHandler.NewWebSocket(agentSvc)
	stream := streamHandler.New(agentSvc)

	r.Route("/api", func(api chi.Router) {
		support.RegisterRoutes(api)
		ws.RegisterRoutes(api)
		stream.RegisterRoutes(api)
	})

	return r
}
