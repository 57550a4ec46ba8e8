// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adarshsaranathan/defensive-metrics/internal/dataset"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/roster"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Seasons(ctx context.Context) []string
	Teams(ctx context.Context, season string) ([]string, error)
	Players(ctx context.Context, season, team string) ([]string, error)
	Profile(ctx context.Context, season, player, team string) (types.Profile, error)
	Leaderboard(ctx context.Context, season string, m metric.Metric, team string, topN int) ([]types.LeaderRow, error)
	TopNBounds() (minN, maxN, def int)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	metaHandler        *MetaHandler
	seasonsHandler     *SeasonsHandler
	teamsHandler       *TeamsHandler
	playersHandler     *PlayersHandler
	profileHandler     *ProfileHandler
	leaderboardHandler *LeaderboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		metaHandler:        NewMetaHandler(deps),
		seasonsHandler:     NewSeasonsHandler(deps),
		teamsHandler:       NewTeamsHandler(deps),
		playersHandler:     NewPlayersHandler(deps),
		profileHandler:     NewProfileHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	r.Handle("/metrics", MetricsHandler()).Methods(http.MethodGet)
	r.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)
	r.HandleFunc("/api/meta", MetricsMiddleware(s.metaHandler.HandleGetMeta, "meta")).Methods(http.MethodGet)
	r.HandleFunc("/api/seasons", MetricsMiddleware(s.seasonsHandler.HandleGetSeasons, "seasons")).Methods(http.MethodGet)
	r.HandleFunc("/api/seasons/{season}/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams")).Methods(http.MethodGet)
	r.HandleFunc("/api/seasons/{season}/players", MetricsMiddleware(s.playersHandler.HandleGetPlayers, "players")).Methods(http.MethodGet)
	r.HandleFunc("/api/seasons/{season}/profile", MetricsMiddleware(s.profileHandler.HandleGetProfile, "profile")).Methods(http.MethodGet)
	r.HandleFunc("/api/seasons/{season}/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard")).Methods(http.MethodGet)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates upstream sentinels into API responses. Empty
// results never reach here; they are ordinary 200 payloads.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrUnavailable):
		writeError(w, http.StatusNotFound, "season_unavailable", err)
	case errors.Is(err, roster.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "player_not_found", err)
	case errors.Is(err, metric.ErrUnknownMetric):
		writeError(w, http.StatusBadRequest, "unknown_metric", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// teamFilter normalizes the optional team query parameter; absence means
// the (All) sentinel.
func teamFilter(r *http.Request) string {
	team := r.URL.Query().Get("team")
	if team == "" {
		return roster.TeamAll
	}
	return team
}
