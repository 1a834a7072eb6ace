package main

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/plus3/recs/ecs"
	ecslog "github.com/plus3/recs/ecs/log"
)

type position struct {
	X, Y   float32
	DX, DY float32
}

func randomPosition(rng *rand.Rand) position {
	return position{
		X:  rng.Float32() * 100,
		Y:  rng.Float32() * 100,
		DX: rng.Float32() - 0.5,
		DY: rng.Float32() - 0.5,
	}
}

// runWidth dispatches to the generic simulation for the configured identifier width.
func runWidth(ctx context.Context, cfg Config, logger *zerolog.Logger, report *Report) error {
	switch cfg.Width {
	case 16:
		return simulate[ecs.Entity16](ctx, cfg, logger, report)
	case 32:
		return simulate[ecs.Entity32](ctx, cfg, logger, report)
	case 64:
		return simulate[ecs.Entity64](ctx, cfg, logger, report)
	default:
		return eris.Errorf("unsupported entity width %d", cfg.Width)
	}
}

// simulate populates an allocator and a position set, then churns and integrates
// them every frame until ctx is done.
func simulate[E ecs.ID](ctx context.Context, cfg Config, logger *zerolog.Logger, report *Report) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	alloc := ecs.NewAllocator[E](ecs.WithPageSize(cfg.PageSize))
	positions := ecs.NewComponents[E, position](ecs.WithPageSize(cfg.PageSize))

	logger.Info().Int("entities", cfg.Entities).Int("width", cfg.Width).Msg("populating")
	live := make([]E, 0, cfg.Entities)
	for range cfg.Entities {
		e, err := alloc.Create()
		if errors.Is(err, ecs.ErrExhausted) {
			logger.Warn().Int("created", len(live)).Msg("index space exhausted, population capped")
			break
		}
		if err != nil {
			return eris.Wrap(err, "populate")
		}
		if err := positions.Insert(e, randomPosition(rng)); err != nil {
			return eris.Wrap(err, "populate")
		}
		live = append(live, e)
	}
	report.Entities = len(live)
	report.Created += int64(len(live))
	logger.Info().Int("entities", len(live)).Msg("population complete")

	for {
		select {
		case <-ctx.Done():
			report.Alive = alloc.Alive()
			report.AllocatorPages = alloc.Stats().Pages
			report.ComponentPages = positions.PageCount()
			ecslog.Allocator(logger, alloc, zerolog.DebugLevel)
			return nil
		default:
		}

		start := time.Now()
		if err := churn(rng, cfg.ChurnRate, alloc, positions, live, report); err != nil {
			return err
		}
		for _, p := range positions.All() {
			p.X += p.DX
			p.Y += p.DY
		}
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(start))
		report.TotalUpdates++
	}
}

// churn destroys a fraction of the live entities and immediately creates
// replacements, so indices are recycled with bumped versions.
func churn[E ecs.ID](rng *rand.Rand, rate float64, alloc *ecs.Allocator[E], positions *ecs.Components[E, position], live []E, report *Report) error {
	if len(live) == 0 {
		return nil
	}

	n := int(float64(len(live)) * rate)
	for range n {
		i := rng.Intn(len(live))
		old := live[i]
		if err := positions.Remove(old); err != nil {
			return eris.Wrap(err, "churn remove")
		}
		if err := alloc.Destroy(old); err != nil {
			return eris.Wrap(err, "churn destroy")
		}
		report.Destroyed++

		e, err := alloc.Create()
		if err != nil {
			return eris.Wrap(err, "churn create")
		}
		if err := positions.Insert(e, randomPosition(rng)); err != nil {
			return eris.Wrap(err, "churn insert")
		}
		live[i] = e
		report.Created++
	}
	return nil
}
