package api

import "net/http"

// StatsProvider exposes internal service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler serves the service statistics snapshot.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider}
}

// HandleStats returns the current service statistics.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.GetStats())
}
