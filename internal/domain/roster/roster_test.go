package roster_test

import (
	"errors"
	"testing"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/roster"
	"github.com/smartystreets/goconvey/convey"
)

func table() []model.PlayerSeasonRecord {
	return []model.PlayerSeasonRecord{
		{Player: "Zack Short", Team: "BOS", Season: "2025"},
		{Player: "Andres Gimenez", Team: "CLE", Season: "2025"},
		{Player: "Ceddanne Rafaela", Team: "BOS", Season: "2025"},
		{Player: "Brenton Doyle", Team: "COL", Season: "2025"},
	}
}

func TestFilterByTeam(t *testing.T) {
	convey.Convey("Given a season table", t, func() {
		rows := table()

		convey.Convey("When filtering with the (All) sentinel", func() {
			got := roster.FilterByTeam(rows, roster.TeamAll)

			convey.Convey("Then the table should pass through unchanged", func() {
				convey.So(got, convey.ShouldResemble, rows)
			})
		})

		convey.Convey("When filtering by a present team", func() {
			got := roster.FilterByTeam(rows, "BOS")

			convey.Convey("Then only that team's rows should remain, in table order", func() {
				convey.So(got, convey.ShouldHaveLength, 2)
				convey.So(got[0].Player, convey.ShouldEqual, "Zack Short")
				convey.So(got[1].Player, convey.ShouldEqual, "Ceddanne Rafaela")
			})
		})

		convey.Convey("When filtering by an absent team", func() {
			got := roster.FilterByTeam(rows, "SEA")

			convey.Convey("Then the result should be empty but not an error", func() {
				convey.So(got, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When unioning every team filter", func() {
			total := 0
			for _, team := range roster.Teams(rows) {
				total += len(roster.FilterByTeam(rows, team))
			}

			convey.Convey("Then the per-team partitions should reconstruct the table", func() {
				convey.So(total, convey.ShouldEqual, len(rows))
			})
		})
	})
}

func TestResolvePlayer(t *testing.T) {
	convey.Convey("Given a season table", t, func() {
		rows := table()

		convey.Convey("When resolving a present player", func() {
			rec, err := roster.ResolvePlayer(rows, "Brenton Doyle")

			convey.Convey("Then the matching row should come back", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rec.Team, convey.ShouldEqual, "COL")
			})

			convey.Convey("And resolving again should be idempotent", func() {
				again, err2 := roster.ResolvePlayer(rows, "Brenton Doyle")
				convey.So(err2, convey.ShouldBeNil)
				convey.So(again.Equal(&rec), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When resolving within a team-filtered scope", func() {
			scoped := roster.FilterByTeam(rows, "BOS")
			_, err := roster.ResolvePlayer(scoped, "Brenton Doyle")

			convey.Convey("Then a player outside the scope should not resolve", func() {
				convey.So(errors.Is(err, roster.ErrPlayerNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When resolving an unknown name", func() {
			_, err := roster.ResolvePlayer(rows, "Nobody")

			convey.Convey("Then it should fail with the not-found sentinel", func() {
				convey.So(errors.Is(err, roster.ErrPlayerNotFound), convey.ShouldBeTrue)
			})
		})
	})
}

func TestOptionLists(t *testing.T) {
	convey.Convey("Given a table with duplicate teams", t, func() {
		rows := table()

		convey.Convey("When listing teams", func() {
			got := roster.Teams(rows)

			convey.Convey("Then teams should be sorted and deduplicated", func() {
				convey.So(got, convey.ShouldResemble, []string{"BOS", "CLE", "COL"})
			})
		})

		convey.Convey("When listing players of one team", func() {
			got := roster.Players(roster.FilterByTeam(rows, "BOS"))

			convey.Convey("Then names should be sorted", func() {
				convey.So(got, convey.ShouldResemble, []string{"Ceddanne Rafaela", "Zack Short"})
			})
		})

		convey.Convey("When listing players of an empty scope", func() {
			convey.So(roster.Players(nil), convey.ShouldBeEmpty)
		})
	})
}
