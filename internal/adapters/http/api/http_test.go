package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/smartystreets/goconvey/convey"

	"github.com/adarshsaranathan/defensive-metrics/internal/adapters/http/api"
	"github.com/adarshsaranathan/defensive-metrics/internal/dataset"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/roster"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/types"
)

// mockService fakes the application service behind the handlers.
type mockService struct {
	seasons []string
	teams   map[string][]string
	players map[string][]string
	profile types.Profile
	board   []types.LeaderRow

	lastLimit  int
	lastMetric metric.Metric
	lastTeam   string
}

func (m *mockService) Seasons(_ context.Context) []string { return m.seasons }

func (m *mockService) Teams(_ context.Context, season string) ([]string, error) {
	teams, ok := m.teams[season]
	if !ok {
		return nil, fmt.Errorf("season %q: %w", season, dataset.ErrUnavailable)
	}
	return teams, nil
}

func (m *mockService) Players(_ context.Context, season, team string) ([]string, error) {
	if _, ok := m.teams[season]; !ok {
		return nil, fmt.Errorf("season %q: %w", season, dataset.ErrUnavailable)
	}
	return m.players[team], nil
}

func (m *mockService) Profile(_ context.Context, season, player, team string) (types.Profile, error) {
	if _, ok := m.teams[season]; !ok {
		return types.Profile{}, fmt.Errorf("season %q: %w", season, dataset.ErrUnavailable)
	}
	if player != m.profile.Player {
		return types.Profile{}, fmt.Errorf("player %q: %w", player, roster.ErrPlayerNotFound)
	}
	return m.profile, nil
}

func (m *mockService) Leaderboard(_ context.Context, season string, mt metric.Metric, team string, topN int) ([]types.LeaderRow, error) {
	if _, ok := m.teams[season]; !ok {
		return nil, fmt.Errorf("season %q: %w", season, dataset.ErrUnavailable)
	}
	m.lastMetric = mt
	m.lastTeam = team
	m.lastLimit = topN
	return m.board, nil
}

func (m *mockService) TopNBounds() (int, int, int) { return 5, 100, 20 }

func (m *mockService) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newMock() *mockService {
	return &mockService{
		seasons: []string{"2025", "2024"},
		teams:   map[string][]string{"2025": {roster.TeamAll, "BOS", "NYY"}},
		players: map[string][]string{
			roster.TeamAll: {"Alice Arm", "Cal Range"},
			"BOS":          {"Cal Range"},
		},
		profile: types.Profile{
			Player:            "Alice Arm",
			Team:              "NYY",
			Season:            "2025",
			Innings:           1000,
			Age:               28,
			DisagreementIndex: model.Float(13.1),
		},
		board: []types.LeaderRow{
			{Rank: 1, Player: "Cal Range", Team: "BOS", Metric: "oaa", Value: 95},
		},
	}
}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	api.NewServer(svc, svc).Register(context.Background(), r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestDiscoveryEndpoints(t *testing.T) {
	convey.Convey("Given the API server", t, func() {
		svc := newMock()

		convey.Convey("When requesting the seasons", func() {
			w := serve(svc, "/api/seasons")

			convey.Convey("Then the labels should come back newest first", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

				var seasons []string
				convey.So(json.Unmarshal(w.Body.Bytes(), &seasons), convey.ShouldBeNil)
				convey.So(seasons, convey.ShouldResemble, []string{"2025", "2024"})
			})

			convey.Convey("Then the request should carry an ID", func() {
				convey.So(w.Header().Get("X-Request-ID"), convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When requesting the bootstrap meta", func() {
			w := serve(svc, "/api/meta")

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			var meta struct {
				Seasons []string `json:"seasons"`
				Metrics []struct {
					Slug  string `json:"slug"`
					Label string `json:"label"`
				} `json:"metrics"`
				Limits struct {
					Min     int `json:"min"`
					Max     int `json:"max"`
					Default int `json:"default"`
				} `json:"limits"`
				TeamAll string `json:"team_all"`
			}
			convey.So(json.Unmarshal(w.Body.Bytes(), &meta), convey.ShouldBeNil)
			convey.So(meta.Metrics, convey.ShouldHaveLength, 6)
			convey.So(meta.Metrics[0].Slug, convey.ShouldEqual, "oaa")
			convey.So(meta.Limits.Default, convey.ShouldEqual, 20)
			convey.So(meta.TeamAll, convey.ShouldEqual, roster.TeamAll)
		})

		convey.Convey("When requesting teams of a known season", func() {
			w := serve(svc, "/api/seasons/2025/teams")

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			var teams []string
			convey.So(json.Unmarshal(w.Body.Bytes(), &teams), convey.ShouldBeNil)
			convey.So(teams[0], convey.ShouldEqual, roster.TeamAll)
		})

		convey.Convey("When requesting teams of an unknown season", func() {
			w := serve(svc, "/api/seasons/1999/teams")

			convey.Convey("Then the response should be a structured 404", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "season_unavailable")
			})
		})

		convey.Convey("When listing players for a team", func() {
			w := serve(svc, "/api/seasons/2025/players?team=BOS")

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			var players []string
			convey.So(json.Unmarshal(w.Body.Bytes(), &players), convey.ShouldBeNil)
			convey.So(players, convey.ShouldResemble, []string{"Cal Range"})
		})

		convey.Convey("When listing players for a team with no rows", func() {
			w := serve(svc, "/api/seasons/2025/players?team=SEA")

			convey.Convey("Then an empty JSON array should come back, not null", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "[]")
			})
		})
	})
}

func TestProfileEndpoint(t *testing.T) {
	convey.Convey("Given the API server", t, func() {
		svc := newMock()

		convey.Convey("When requesting a known player's profile", func() {
			w := serve(svc, "/api/seasons/2025/profile?player=Alice+Arm")

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			var p types.Profile
			convey.So(json.Unmarshal(w.Body.Bytes(), &p), convey.ShouldBeNil)
			convey.So(p.Player, convey.ShouldEqual, "Alice Arm")
			convey.So(p.DisagreementIndex, convey.ShouldNotBeNil)
		})

		convey.Convey("When the player parameter is missing", func() {
			w := serve(svc, "/api/seasons/2025/profile")

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "missing_player")
		})

		convey.Convey("When the player is not in scope", func() {
			w := serve(svc, "/api/seasons/2025/profile?player=Nobody")

			convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "player_not_found")
		})
	})
}

func TestLeaderboardEndpoint(t *testing.T) {
	convey.Convey("Given the API server", t, func() {
		svc := newMock()

		convey.Convey("When requesting a leaderboard with defaults", func() {
			w := serve(svc, "/api/seasons/2025/leaderboard?metric=oaa")

			convey.Convey("Then the board should use the default limit and (All) scope", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(svc.lastLimit, convey.ShouldEqual, 20)
				convey.So(svc.lastTeam, convey.ShouldEqual, roster.TeamAll)
				convey.So(svc.lastMetric, convey.ShouldEqual, metric.OAA)
			})
		})

		convey.Convey("When passing an explicit in-range limit and team", func() {
			w := serve(svc, "/api/seasons/2025/leaderboard?metric=drs&team=BOS&limit=5")

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(svc.lastLimit, convey.ShouldEqual, 5)
			convey.So(svc.lastTeam, convey.ShouldEqual, "BOS")
			convey.So(svc.lastMetric, convey.ShouldEqual, metric.DRS)
		})

		convey.Convey("When the metric is missing", func() {
			w := serve(svc, "/api/seasons/2025/leaderboard")

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "missing_metric")
		})

		convey.Convey("When the metric slug is unknown", func() {
			w := serve(svc, "/api/seasons/2025/leaderboard?metric=war")

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "unknown_metric")
		})

		convey.Convey("When the limit is not an integer", func() {
			w := serve(svc, "/api/seasons/2025/leaderboard?metric=oaa&limit=many")

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "invalid_limit")
		})

		convey.Convey("When the limit is out of range", func() {
			for _, limit := range []string{"4", "101", "0", "-1"} {
				w := serve(svc, "/api/seasons/2025/leaderboard?metric=oaa&limit="+limit)
				convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			}
		})

		convey.Convey("When the board is empty", func() {
			svc.board = nil
			w := serve(svc, "/api/seasons/2025/leaderboard?metric=oaa")

			convey.Convey("Then an empty JSON array should come back", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "[]")
			})
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	convey.Convey("Given the API server", t, func() {
		svc := newMock()

		convey.Convey("When probing liveness", func() {
			w := serve(svc, "/healthz")

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "ok")
		})

		convey.Convey("When reading service stats", func() {
			w := serve(svc, "/stats")

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "started")
		})
	})
}
