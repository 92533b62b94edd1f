// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// TeamsHandler handles team listing and admin deletion.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleGetTeams handles GET /teams requests.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	teams, err := h.deps.Teams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"teams": teams})
}

// HandleDeleteTeams handles DELETE /admin/teams?id=X and ?all=true requests.
func (h *TeamsHandler) HandleDeleteTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	switch {
	case q.Get("all") == "true":
		if err := h.deps.DeleteAllTeams(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "all teams deleted"})
	case q.Get("id") != "":
		id := q.Get("id")
		if err := h.deps.DeleteTeam(r.Context(), id); err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "team " + id + " deleted"})
	default:
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingTarget)
	}
}
