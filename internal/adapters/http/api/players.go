package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PlayersHandler lists player names within the team-filtered scope.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleGetPlayers returns the sorted player names. An unknown team yields
// an empty list, not an error.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	season := mux.Vars(r)["season"]

	players, err := h.deps.Players(r.Context(), season, teamFilter(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if players == nil {
		players = []string{}
	}
	writeJSON(w, http.StatusOK, players)
}
