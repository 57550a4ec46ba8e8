package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// TeamsHandler lists the team filter options for a season.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleGetTeams returns the (All) sentinel followed by the season's teams.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	season := mux.Vars(r)["season"]

	teams, err := h.deps.Teams(r.Context(), season)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}
