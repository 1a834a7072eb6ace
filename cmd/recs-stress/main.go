package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(os.Args[1:], os.Stdout, &logger); err != nil {
		logger.Error().Err(err).Msg("stress test failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger *zerolog.Logger) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return eris.Wrap(err, "invalid configuration")
	}

	level, err := cfg.level()
	if err != nil {
		return eris.Wrap(err, "invalid configuration")
	}
	l := logger.Level(level)
	logger = &l

	if cfg.Profile != "" {
		defer startProfile(cfg.Profile).Stop()
	}

	logger.Info().Msg("Starting sparse set stress test...")

	report := &Report{
		Duration:       cfg.Duration,
		Width:          cfg.Width,
		PageSize:       cfg.PageSize,
		ChurnRate:      cfg.ChurnRate,
		GCPauseMetrics: cfg.GCPause,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	logger.Info().Dur("duration", cfg.Duration).Msg("Running simulation...")
	startTime := time.Now()
	if err := runWidth(ctx, cfg, logger, report); err != nil {
		return err
	}
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Int64("updates", report.TotalUpdates).Msg("Simulation finished.")

	if cfg.Format == "json" {
		return report.WriteJSON(out)
	}

	fmt.Fprintln(out, "\n\n--- Stress Test Report ---")
	if err := report.Generate(out); err != nil {
		return eris.Wrap(err, "generate report")
	}
	fmt.Fprintln(out, "--- End of Report ---")
	return nil
}

func startProfile(kind string) interface{ Stop() } {
	mode := profile.CPUProfile
	switch kind {
	case "mem":
		mode = profile.MemProfile
	case "allocs":
		mode = profile.MemProfileAllocs
	}
	return profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
}
