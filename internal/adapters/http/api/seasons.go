package api

import (
	"net/http"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/roster"
)

// SeasonsHandler lists the registered season labels.
type SeasonsHandler struct {
	deps Dependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps Dependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// HandleGetSeasons returns the season labels, newest first.
func (h *SeasonsHandler) HandleGetSeasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Seasons(r.Context()))
}

// MetaHandler serves the static bootstrap payload the dashboard needs
// before its first data query: seasons, metric catalog, limit bounds.
type MetaHandler struct {
	deps Dependencies
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(deps Dependencies) *MetaHandler {
	return &MetaHandler{deps: deps}
}

type metaMetric struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type metaLimits struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type metaResponse struct {
	Seasons []string     `json:"seasons"`
	Metrics []metaMetric `json:"metrics"`
	Limits  metaLimits   `json:"limits"`
	TeamAll string       `json:"team_all"`
}

// HandleGetMeta returns the dashboard bootstrap payload.
func (h *MetaHandler) HandleGetMeta(w http.ResponseWriter, r *http.Request) {
	minN, maxN, def := h.deps.TopNBounds()

	resp := metaResponse{
		Seasons: h.deps.Seasons(r.Context()),
		Metrics: make([]metaMetric, 0, metric.Count),
		Limits:  metaLimits{Min: minN, Max: maxN, Default: def},
		TeamAll: roster.TeamAll,
	}
	for _, m := range metric.Canonical() {
		resp.Metrics = append(resp.Metrics, metaMetric{Slug: m.Slug(), Label: m.Label()})
	}
	writeJSON(w, http.StatusOK, resp)
}
