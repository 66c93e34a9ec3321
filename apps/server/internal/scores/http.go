package scores

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type HTTPHandler struct {
	scores Service
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(scoresService Service) *HTTPHandler {
	return &HTTPHandler{scores: scoresService}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/scores/", h.handleTop)
}

// handleTop serves GET /api/scores/{game}?limit=N.
func (h *HTTPHandler) handleTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	game := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/api/scores/"))
	if game == "" || strings.Contains(game, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	items, err := h.scores.Top(ctx, game, limit)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "query scores failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"game":  game,
		"items": items,
	})
}

func parseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultTopLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultTopLimit
	}
	if n > 100 {
		return 100
	}
	return n
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
