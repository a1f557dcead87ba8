package support

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"support-widget/internal/model/support"
)

// WebSocketHandler serves the duplex variant of the support exchange:
// each inbound Request frame yields exactly one Response frame.
type WebSocketHandler struct {
	agent    Responder
	upgrader websocket.Upgrader
}

// NewWebSocket creates the websocket handler.
func NewWebSocket(a Responder) *WebSocketHandler {
	return &WebSocketHandler{
		agent: a,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/support/ws", h.handleWebSocket)
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req support.Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[ws] read failed: %v", err)
			}
			return
		}

		if req.UserID == "" || req.UserMessage == "" {
			if err := conn.WriteJSON(support.Response{Error: "user_id and user_message are required"}); err != nil {
				log.Printf("[ws] write failed: %v", err)
				return
			}
			continue
		}

		reply, category, err := h.agent.Respond(r.Context(), req.UserID, req.UserDetails, req.UserMessage)
		if err != nil {
			log.Printf("[ws] agent error for user=%s: %v", req.UserID, err)
			if err := conn.WriteJSON(support.Response{Error: err.Error()}); err != nil {
				log.Printf("[ws] write failed: %v", err)
				return
			}
			continue
		}

		if err := conn.WriteJSON(support.Response{Response: reply, Category: string(category)}); err != nil {
			log.Printf("[ws] write failed: %v", err)
			return
		}
	}
}
