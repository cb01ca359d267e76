package handlers

import (
	"net/http"
	"trip-planner-service/internal/session"
)

// HealthHandler provides a minimal liveness check endpoint.
type HealthHandler struct {
	Sessions *session.Registry
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]any{
		"status":          "ok",
		"active_sessions": h.Sessions.Len(),
	}
	writeJSON(w, r, http.StatusOK, res)
}
