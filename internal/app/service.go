// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"sync"

	"github.com/adarshsaranathan/defensive-metrics/internal/dataset"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/rank"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/roster"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/types"
	"github.com/adarshsaranathan/defensive-metrics/pkg/logger"
	"github.com/adarshsaranathan/defensive-metrics/pkg/metrics"
)

// Service owns the season registry and the memoized season cache, and
// answers every dashboard query. All operations are read-only over
// immutable tables; the only lifecycle mutation is the first load of each
// season inside the cache.
type Service struct {
	mu sync.RWMutex

	cache   *dataset.Cache
	seasons map[string]string // season label -> CSV path

	minTopN     int
	maxTopN     int
	defaultTopN int

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeasons sets the season registry (label -> CSV path).
func WithSeasons(seasons map[string]string) Option {
	return func(s *Service) {
		if len(seasons) > 0 {
			s.seasons = seasons
		}
	}
}

// WithTopNBounds sets the leaderboard limit bounds and default.
func WithTopNBounds(minN, maxN, def int) Option {
	return func(s *Service) {
		if minN >= 1 && maxN >= minN && def >= minN && def <= maxN {
			s.minTopN = minN
			s.maxTopN = maxN
			s.defaultTopN = def
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seasons:     map[string]string{},
		minTopN:     5,
		maxTopN:     100,
		defaultTopN: 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the season cache.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	loader := dataset.NewLoader(dataset.WithLogger(s.logger))
	s.cache = dataset.NewCache(loader, s.seasons)
	s.started = true

	s.logger.Info(ctx, "dashboard service started",
		logger.Int("seasons", len(s.seasons)),
		logger.Int("defaultTopN", s.defaultTopN),
	)
	return nil
}

// Stop releases the service. Tables are plain memory; nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Seasons returns the registered season labels, newest first.
func (s *Service) Seasons(_ context.Context) []string {
	return s.cache.Seasons()
}

// Teams returns the team filter options for a season: the (All) sentinel
// followed by the sorted team codes present in the table.
func (s *Service) Teams(ctx context.Context, season string) ([]string, error) {
	table, err := s.cache.Get(ctx, season)
	if err != nil {
		return nil, err
	}
	return append([]string{roster.TeamAll}, roster.Teams(table)...), nil
}

// Players returns the sorted player names within the team-filtered scope.
// An empty result is a valid "no players for team" state.
func (s *Service) Players(ctx context.Context, season, team string) ([]string, error) {
	scope, err := s.scope(ctx, season, team)
	if err != nil {
		return nil, err
	}
	players := roster.Players(scope)
	if len(players) == 0 {
		metrics.RecordEmptyResult("players")
	}
	return players, nil
}

// Profile resolves a player within the team-filtered scope and assembles the
// full display payload: identity, disagreement index, best/worst pair,
// percentile chart values, and the raw-vs-percentile lines.
func (s *Service) Profile(ctx context.Context, season, player, team string) (types.Profile, error) {
	scope, err := s.scope(ctx, season, team)
	if err != nil {
		return types.Profile{}, err
	}

	rec, err := roster.ResolvePlayer(scope, player)
	if err != nil {
		return types.Profile{}, err
	}

	metrics.RecordProfileRequest()
	return buildProfile(&rec), nil
}

// Leaderboard ranks the team-filtered season table by the chosen percentile
// metric. topN must already be validated by the caller against TopNBounds.
func (s *Service) Leaderboard(ctx context.Context, season string, m metric.Metric, team string, topN int) ([]types.LeaderRow, error) {
	scope, err := s.scope(ctx, season, team)
	if err != nil {
		return nil, err
	}

	metrics.RecordLeaderboardRequest()
	board := rank.Leaderboard(scope, m, topN)
	if len(board) == 0 {
		metrics.RecordEmptyResult("leaderboard")
	}
	return board, nil
}

// TopNBounds returns the leaderboard limit bounds and default.
func (s *Service) TopNBounds() (minN, maxN, def int) {
	return s.minTopN, s.maxTopN, s.defaultTopN
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"seasons":         len(s.seasons),
		"defaultTopN":     s.defaultTopN,
		"maxTopN":         s.maxTopN,
		"minTopN":         s.minTopN,
		"seasonsInMemory": 0,
	}
	if s.started {
		stats["seasonsInMemory"] = s.cache.Loaded()
	}
	return stats
}

func (s *Service) scope(ctx context.Context, season, team string) ([]model.PlayerSeasonRecord, error) {
	table, err := s.cache.Get(ctx, season)
	if err != nil {
		return nil, err
	}
	return roster.FilterByTeam(table, team), nil
}

func buildProfile(rec *model.PlayerSeasonRecord) types.Profile {
	p := types.Profile{
		Player:            rec.Player,
		Team:              rec.Team,
		Season:            rec.Season,
		Innings:           rec.Innings,
		Age:               rec.Age,
		DisagreementIndex: rec.DisagreementIndex,
	}

	available := rec.AvailablePercentiles()
	for _, m := range available {
		p.Percentiles = append(p.Percentiles, types.MetricPercentile{
			Metric:     m.Slug(),
			Label:      m.Label(),
			Percentile: *rec.Percentile(m),
		})
	}

	if best, worst, err := rank.BestWorst(rec); err == nil {
		p.BestWorst = &types.BestWorst{
			Best:            best.Slug(),
			BestLabel:       best.Label(),
			BestPercentile:  *rec.Percentile(best),
			Worst:           worst.Slug(),
			WorstLabel:      worst.Label(),
			WorstPercentile: *rec.Percentile(worst),
		}
	} else {
		metrics.RecordEmptyResult("percentiles")
	}

	for _, m := range metric.Canonical() {
		p.Lines = append(p.Lines, types.MetricLine{
			Metric:     m.Slug(),
			Label:      m.Label(),
			Raw:        rec.RawValue(m),
			Percentile: rec.Percentile(m),
		})
	}
	return p
}
