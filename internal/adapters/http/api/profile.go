package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ProfileHandler serves the full player profile payload.
type ProfileHandler struct {
	deps Dependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps Dependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// HandleGetProfile resolves the player inside the team filter and returns
// identity, disagreement index, best/worst pair, chart and line data.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	season := mux.Vars(r)["season"]

	player := r.URL.Query().Get("player")
	if player == "" {
		writeError(w, http.StatusBadRequest, "missing_player", ErrMissingPlayer)
		return
	}

	profile, err := h.deps.Profile(r.Context(), season, player, teamFilter(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
