// Package support exposes the /support endpoint the widget talks to.
package support

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"support-widget/internal/model/support"
	"support-widget/internal/service/agent"
	"support-widget/pkg/utils"
)

// Responder answers one support query. *agent.Agent is the production
// implementation.
type Responder interface {
	Respond(ctx context.Context, userID string, details support.UserDetails, message string) (string, agent.Category, error)
}

// Handler answers support requests over plain request/response HTTP.
type Handler struct {
	agent Responder
}

// New creates the support handler.
func New(a Responder) *Handler {
	return &Handler{agent: a}
}

// RegisterRoutes mounts the REST endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/support", h.handleSupport)
}

func (h *Handler) handleSupport(w http.ResponseWriter, r *http.Request) {
	var req support.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" || req.UserMessage == "" {
		utils.RespondError(w, http.StatusBadRequest, "user_id and user_message are required")
		return
	}

	reply, category, err := h.agent.Respond(r.Context(), req.UserID, req.UserDetails, req.UserMessage)
	if err != nil {
		log.Printf("[support] agent error for user=%s: %v", req.UserID, err)
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, support.Response{
		Response: reply,
		Category: string(category),
	})
}
