// Package stream serves agent replies over Server-Sent Events.
package stream

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"

	"support-widget/internal/model/support"
	"support-widget/internal/service/agent"
	"support-widget/pkg/utils"
)

// Streamer produces support replies as a chunk stream. A nil reader with
// a non-empty full reply means the answer arrived whole. *agent.Agent is
// the production implementation.
type Streamer interface {
	Stream(ctx context.Context, userID string, details support.UserDetails, message string) (*schema.StreamReader[*schema.Message], string, agent.Category, error)
	RecordTurn(ctx context.Context, userID, message, reply string)
}

// Handler streams support replies chunk by chunk.
type Handler struct {
	agent Streamer
}

// New creates the stream handler.
func New(a Streamer) *Handler {
	return &Handler{agent: a}
}

// RegisterRoutes mounts the SSE endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/support/stream", h.handleStream)
}

// streamEvent is one SSE frame.
type streamEvent struct {
	Event    string `json:"event"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
	Error    string `json:"error,omitempty"`
	Finished bool   `json:"finished,omitempty"`
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	userID := r.URL.Query().Get("user_id")
	message := r.URL.Query().Get("message")
	if userID == "" || message == "" {
		utils.RespondError(w, http.StatusBadRequest, "user_id and message query parameters are required")
		return
	}
	details := support.UserDetails{
		UserID: userID,
		Name:   r.URL.Query().Get("name"),
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEChunk(w, flusher, streamEvent{Event: "start"})

	reader, full, category, err := h.agent.Stream(r.Context(), userID, details, message)
	if err != nil {
		log.Printf("[stream] agent error for user=%s: %v", userID, err)
		utils.SendSSEChunk(w, flusher, streamEvent{Event: "error", Error: err.Error()})
		return
	}

	// Canned and non-streaming replies arrive whole.
	if reader == nil {
		utils.SendSSEChunk(w, flusher, streamEvent{Event: "chunk", Content: full})
		utils.SendSSEChunk(w, flusher, streamEvent{Event: "done", Category: string(category), Finished: true})
		return
	}
	defer reader.Close()

	var b strings.Builder
	for {
		msg, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("[stream] recv failed for user=%s: %v", userID, err)
			utils.SendSSEChunk(w, flusher, streamEvent{Event: "error", Error: "stream interrupted"})
			return
		}
		b.WriteString(msg.Content)
		utils.SendSSEChunk(w, flusher, streamEvent{Event: "chunk", Content: msg.Content})
	}

	h.agent.RecordTurn(r.Context(), userID, message, b.String())
	utils.SendSSEChunk(w, flusher, streamEvent{Event: "done", Category: string(category), Finished: true})
}
