package main

import (
	"flag"
	"time"

	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config controls a stress run. Values come from defaults, then RECS_* environment
// variables, then command-line flags.
type Config struct {
	Duration  time.Duration `config:"RECS_DURATION"`
	Entities  int           `config:"RECS_ENTITIES"`
	Width     int           `config:"RECS_WIDTH"`
	PageSize  int           `config:"RECS_PAGE_SIZE"`
	ChurnRate float64       `config:"RECS_CHURN_RATE"`
	Seed      int64         `config:"RECS_SEED"`
	Format    string        `config:"RECS_FORMAT"`
	Profile   string        `config:"RECS_PROFILE"`
	LogLevel  string        `config:"RECS_LOG_LEVEL"`
	GCPause   bool          `config:"RECS_GC_PAUSE_METRICS"`
}

func defaultConfig() Config {
	return Config{
		Duration:  10 * time.Second,
		Entities:  10000,
		Width:     32,
		PageSize:  4096,
		ChurnRate: 0.1,
		Seed:      1,
		Format:    "text",
		LogLevel:  "info",
	}
}

// loadConfig layers environment variables and then args over the defaults.
func loadConfig(args []string) (Config, error) {
	cfg := defaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "read environment")
	}

	fs := flag.NewFlagSet("recs-stress", flag.ContinueOnError)
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "The total duration the test should run for.")
	fs.IntVar(&cfg.Entities, "entities", cfg.Entities, "The initial number of entities to create.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Entity identifier width in bits (16, 32 or 64).")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Sparse index page size, a power of two.")
	fs.Float64Var(&cfg.ChurnRate, "churn", cfg.ChurnRate, "Fraction of live entities destroyed and recreated per frame.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed.")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Report format: text or json.")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "Write a profile: cpu, mem or allocs.")
	fs.BoolVar(&cfg.GCPause, "gc-pause-metrics", cfg.GCPause, "Enable detailed GC pause metrics in the report.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level.")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Width {
	case 16, 32, 64:
	default:
		return eris.Errorf("unsupported entity width %d", c.Width)
	}
	if c.PageSize <= 0 || c.PageSize&(c.PageSize-1) != 0 {
		return eris.Errorf("page size %d is not a power of two", c.PageSize)
	}
	if c.Entities < 0 {
		return eris.New("entities must not be negative")
	}
	if c.ChurnRate < 0 || c.ChurnRate > 1 {
		return eris.Errorf("churn rate %v outside [0, 1]", c.ChurnRate)
	}
	switch c.Format {
	case "text", "json":
	default:
		return eris.Errorf("unknown report format %q", c.Format)
	}
	switch c.Profile {
	case "", "cpu", "mem", "allocs":
	default:
		return eris.Errorf("unknown profile %q", c.Profile)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "log level %q", c.LogLevel)
	}
	return level, nil
}
