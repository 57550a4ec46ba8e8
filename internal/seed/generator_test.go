package seed

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init()
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	convey.Convey("Given a fixture generator", t, func() {
		ctx := context.Background()

		convey.Convey("When generating with a fixed seed", func() {
			cfg := Config{Players: 40, Seed: 7, NullRate: 0.2}
			first := Generate(ctx, cfg)
			second := Generate(ctx, cfg)

			convey.Convey("Then the output should be deterministic", func() {
				convey.So(first, convey.ShouldResemble, second)
			})

			convey.Convey("Then every row should be plausible", func() {
				convey.So(first, convey.ShouldHaveLength, 40)
				for _, row := range first {
					convey.So(row.Player, convey.ShouldNotBeEmpty)
					convey.So(row.Team, convey.ShouldBeIn, DefaultTeams)
					convey.So(row.Innings, convey.ShouldBeBetweenOrEqual, minInnings, maxInnings)
					convey.So(row.Age, convey.ShouldBeBetweenOrEqual, minAge, maxAge)
				}
			})
		})

		convey.Convey("When different seeds are used", func() {
			a := Generate(ctx, Config{Players: 40, Seed: 1})
			b := Generate(ctx, Config{Players: 40, Seed: 2})

			convey.So(a, convey.ShouldNotResemble, b)
		})

		convey.Convey("When the null rate is zero", func() {
			rows := Generate(ctx, Config{Players: 20, Seed: 3, NullRate: 0})

			convey.Convey("Then every metric should be populated", func() {
				for _, row := range rows {
					for _, m := range metric.Canonical() {
						convey.So(row.Raw[m], convey.ShouldNotBeNil)
					}
				}
			})
		})

		convey.Convey("When player names must stay unique", func() {
			rows := Generate(ctx, Config{Players: 800, Seed: 4})

			seen := make(map[string]bool, len(rows))
			for _, row := range rows {
				convey.So(seen[row.Player], convey.ShouldBeFalse)
				seen[row.Player] = true
			}
		})
	})
}

func TestWriteCSV(t *testing.T) {
	convey.Convey("Given generated rows", t, func() {
		ctx := context.Background()
		rows := Generate(ctx, Config{Players: 30, Seed: 5, NullRate: 0.3})

		convey.Convey("When writing the CSV snapshot", func() {
			var buf bytes.Buffer
			err := WriteCSV(&buf, rows)

			convey.Convey("Then the header should match the loader schema", func() {
				convey.So(err, convey.ShouldBeNil)

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				convey.So(lines, convey.ShouldHaveLength, 31)

				header := lines[0]
				convey.So(header, convey.ShouldStartWith, "Player,Team,Inn,Age")
				for _, m := range metric.Canonical() {
					convey.So(header, convey.ShouldContainSubstring, m.RawColumn())
					convey.So(header, convey.ShouldContainSubstring, m.PercentileColumn())
				}
			})
		})
	})
}

func TestPercentiles(t *testing.T) {
	convey.Convey("Given rows with known raw values", t, func() {
		ctx := context.Background()
		rows := Generate(ctx, Config{Players: 50, Seed: 6, NullRate: 0.2})

		convey.Convey("When ranking each metric", func() {
			pcts := percentiles(rows)

			convey.Convey("Then percentiles should stay inside 0-100 and mirror nils", func() {
				for i := range rows {
					for _, m := range metric.Canonical() {
						if rows[i].Raw[m] == nil {
							convey.So(pcts[i][m], convey.ShouldBeNil)
							continue
						}
						convey.So(pcts[i][m], convey.ShouldNotBeNil)
						convey.So(*pcts[i][m], convey.ShouldBeBetweenOrEqual, 0, 100)
					}
				}
			})

			convey.Convey("Then the best raw value should rank at the top", func() {
				m := metric.OAA
				bestIdx, best := -1, 0.0
				maxPct := 0.0
				for i := range rows {
					if v := rows[i].Raw[m]; v != nil && (bestIdx == -1 || *v > best) {
						bestIdx, best = i, *v
					}
					if p := pcts[i][m]; p != nil && *p > maxPct {
						maxPct = *p
					}
				}
				convey.So(bestIdx, convey.ShouldNotEqual, -1)
				convey.So(*pcts[bestIdx][m], convey.ShouldEqual, maxPct)
			})
		})
	})
}
