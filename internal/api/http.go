// Package api exposes the dialogue engine to local clients: a small chi
// HTTP surface for text chat and an MCP server for agent tooling. Both feed
// the same single session as the terminal controller.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inonetecx/concierge/internal/dialog"
	"github.com/inonetecx/concierge/internal/session"
)

const maxChatBodySize = 64 << 10 // 64KB

// Dialogue abstracts the dialog engine for the API layer.
type Dialogue interface {
	Respond(utterance string) (dialog.Reply, error)
	History() []session.Entry
}

// Deps holds dependencies for the HTTP handler.
type Deps struct {
	Engine  Dialogue
	Token   string // empty disables bearer auth
	Version string
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply for one chat turn.
type ChatResponse struct {
	Turn     string            `json:"turn"`
	Reply    string            `json:"reply"`
	Intent   string            `json:"intent"`
	Entities map[string]string `json:"entities"`
}

// NewHandler builds the HTTP router. /health stays unauthenticated so
// liveness probes work without credentials.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": deps.Version,
		})
	})

	r.Group(func(r chi.Router) {
		if deps.Token != "" {
			r.Use(BearerAuth(deps.Token))
		}
		r.Post("/chat", handleChat(deps))
		r.Get("/history", handleHistory(deps))
	})

	return r
}

func handleChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxChatBodySize)
		defer r.Body.Close()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.Message == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
			return
		}

		reply, err := deps.Engine.Respond(req.Message)
		if err != nil {
			// Raw fault detail stays in the logs, not the reply.
			httpError(w, http.StatusInternalServerError, "api_error", "the assistant hit a technical issue, please try again")
			return
		}

		resp := ChatResponse{
			Turn:     reply.Turn,
			Reply:    reply.Text,
			Intent:   string(reply.Intent),
			Entities: map[string]string{},
		}
		if reply.Entities.HasService() {
			resp.Entities["service"] = reply.Entities.Service
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleHistory(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, deps.Engine.History())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	writeJSON(w, code, map[string]any{
		"error": map[string]string{
			"type":    errType,
			"message": fmt.Sprintf(format, args...),
		},
	})
}
