package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/types"
)

// LeaderboardHandler serves the ranked top-N board for one metric.
type LeaderboardHandler struct {
	deps Dependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps Dependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

// HandleGetLeaderboard validates metric and limit, then returns the ranked
// rows. Bad metric slugs and out-of-range limits are client errors; an
// empty board is an ordinary 200.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	season := mux.Vars(r)["season"]

	slug := r.URL.Query().Get("metric")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "missing_metric", ErrMissingMetric)
		return
	}
	m, err := metric.Parse(slug)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_metric", err)
		return
	}

	limit, err := h.parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_limit", err)
		return
	}

	board, err := h.deps.Leaderboard(r.Context(), season, m, teamFilter(r), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if board == nil {
		board = []types.LeaderRow{}
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *LeaderboardHandler) parseLimit(r *http.Request) (int, error) {
	minN, maxN, def := h.deps.TopNBounds()

	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidLimit, raw)
	}
	if limit < minN || limit > maxN {
		return 0, fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidLimit, limit, minN, maxN)
	}
	return limit, nil
}
