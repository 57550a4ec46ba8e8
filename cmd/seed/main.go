// Command seed writes a deterministic season CSV fixture for local
// development.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/adarshsaranathan/defensive-metrics/internal/seed"
	"github.com/adarshsaranathan/defensive-metrics/pkg/logger"
)

const outputFilePermission = 0o644

func main() {
	players := flag.Int("players", seed.DefaultPlayers, "number of player rows to generate")
	seedVal := flag.Int64("seed", seed.DefaultSeed, "random seed; same seed yields the same file")
	nullRate := flag.Float64("null-rate", seed.DefaultNullRate, "probability that a metric is missing for a player")
	out := flag.String("out", "data/defensive_metrics_25.csv", "output CSV path")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	rows := seed.Generate(ctx, seed.Config{
		Players:  *players,
		Seed:     *seedVal,
		NullRate: *nullRate,
	})

	f, err := os.OpenFile(*out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		logger.Get().Error(ctx, "failed to create output file", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	if err := seed.WriteCSV(f, rows); err != nil {
		logger.Get().Error(ctx, "failed to write fixture", logger.Error(err))
		os.Exit(1)
	}

	logger.Get().Info(ctx, "fixture written",
		logger.String("path", *out),
		logger.Int("players", len(rows)),
	)
}
