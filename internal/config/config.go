package config

import (
	"errors"
	"fmt"
	"time"
)

type LogConfig struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	Component string `koanf:"component"`
	Source    bool   `koanf:"source"`
}

type AppConfig struct {
	ENV string `koanf:"env"`
}

type DBConfig struct {
	// Driver is "mysql" (default) or "sqlite".
	Driver   string `koanf:"driver"`
	DSN      string `koanf:"dsn"`
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`

	// SeenTTL bounds how long delivered signals are remembered per user.
	SeenTTL time.Duration `koanf:"seen_ttl"`
}

type GRPCConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

type ScorerConfig struct {
	BaseURL string `koanf:"base_url"`

	// Timeout applies to every scoring call made while evaluating signals.
	Timeout time.Duration `koanf:"timeout"`

	// PairTimeout applies to ad hoc pairwise score lookups.
	PairTimeout time.Duration `koanf:"pair_timeout"`

	// Concurrency caps in-flight scoring calls per evaluation.
	Concurrency int `koanf:"concurrency"`
}

type ProximityConfig struct {
	RadiusMeters     float64       `koanf:"radius_meters"`
	Threshold        float64       `koanf:"threshold"`
	PerfectThreshold float64       `koanf:"perfect_threshold"`
	TTL              time.Duration `koanf:"ttl"`
	MaxSignals       int           `koanf:"max_signals"`
}

type LocationConfig struct {
	CellSizeDeg    float64       `koanf:"cell_size_deg"`
	DebounceMeters float64       `koanf:"debounce_meters"`
	Staleness      time.Duration `koanf:"staleness"`
	EvictionTTL    time.Duration `koanf:"eviction_ttl"`
	SweepInterval  time.Duration `koanf:"sweep_interval"`
}

type SchedulerConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Interval      time.Duration `koanf:"interval"`
	PerfectTTL    time.Duration `koanf:"perfect_ttl"`
	Concurrency   int           `koanf:"concurrency"`
	PurgeInterval time.Duration `koanf:"purge_interval"`
}

type Config struct {
	App       AppConfig       `koanf:"app"`
	Log       LogConfig       `koanf:"log"`
	DB        DBConfig        `koanf:"db"`
	Redis     RedisConfig     `koanf:"redis"`
	GRPC      GRPCConfig      `koanf:"grpc"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Scorer    ScorerConfig    `koanf:"scorer"`
	Proximity ProximityConfig `koanf:"proximity"`
	Location  LocationConfig  `koanf:"location"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
}

// New returns a Config populated with defaults only. Use Load to layer a
// config file and environment variables on top.
func New() *Config {
	cfg := &Config{}

	cfg.App.ENV = "development"

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Component = "grpc_server"

	cfg.DB.Driver = "mysql"
	cfg.DB.Host = "localhost"
	cfg.DB.Port = "3306"
	cfg.DB.User = "root"
	cfg.DB.Password = "root"
	cfg.DB.Name = "bloom"

	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.SeenTTL = 100 * time.Minute

	cfg.GRPC.Host = "127.0.0.1"
	cfg.GRPC.Port = "50051"

	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = "127.0.0.1:9090"

	cfg.Scorer.BaseURL = "http://localhost:6969"
	cfg.Scorer.Timeout = 1500 * time.Millisecond
	cfg.Scorer.PairTimeout = 2 * time.Second
	cfg.Scorer.Concurrency = 16

	cfg.Proximity.RadiusMeters = 50
	cfg.Proximity.Threshold = 0.35
	cfg.Proximity.PerfectThreshold = 0.7
	cfg.Proximity.TTL = 10 * time.Minute
	cfg.Proximity.MaxSignals = 5

	cfg.Location.CellSizeDeg = 0.0005
	cfg.Location.DebounceMeters = 10
	cfg.Location.Staleness = 30 * time.Second
	cfg.Location.EvictionTTL = 60 * time.Second
	cfg.Location.SweepInterval = 30 * time.Second

	cfg.Scheduler.Enabled = true
	cfg.Scheduler.Interval = time.Minute
	cfg.Scheduler.PerfectTTL = 24 * time.Hour
	cfg.Scheduler.Concurrency = 8
	cfg.Scheduler.PurgeInterval = 5 * time.Minute

	return cfg
}

// MySQLDSN returns the explicit DSN if set, otherwise one assembled from the
// host/port/user fields.
func (c *Config) MySQLDSN() string {
	if c.DB.DSN != "" {
		return c.DB.DSN
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name,
	)
}

// Validate rejects configurations the signal engine cannot run with.
func (c *Config) Validate() error {
	var errs []error

	p := c.Proximity
	if p.Threshold < 0 || p.PerfectThreshold > 1 || p.Threshold > p.PerfectThreshold {
		errs = append(errs, fmt.Errorf("thresholds must satisfy 0 <= threshold <= perfect_threshold <= 1 (got %v, %v)", p.Threshold, p.PerfectThreshold))
	}
	if p.RadiusMeters <= 0 {
		errs = append(errs, errors.New("proximity.radius_meters must be positive"))
	}
	if p.MaxSignals <= 0 {
		errs = append(errs, errors.New("proximity.max_signals must be positive"))
	}
	if p.TTL <= 0 || c.Scheduler.PerfectTTL <= 0 {
		errs = append(errs, errors.New("signal TTLs must be positive"))
	}

	l := c.Location
	if l.CellSizeDeg <= 0 {
		errs = append(errs, errors.New("location.cell_size_deg must be positive"))
	}
	if l.Staleness <= 0 || l.EvictionTTL < l.Staleness {
		errs = append(errs, errors.New("location.eviction_ttl must be >= location.staleness > 0"))
	}
	if l.SweepInterval <= 0 {
		errs = append(errs, errors.New("location.sweep_interval must be positive"))
	}

	if c.Scorer.BaseURL == "" {
		errs = append(errs, errors.New("scorer.base_url must not be empty"))
	}
	if c.Scorer.Timeout <= 0 || c.Scorer.PairTimeout <= 0 {
		errs = append(errs, errors.New("scorer timeouts must be positive"))
	}

	if c.Scheduler.Interval <= 0 || c.Scheduler.PurgeInterval <= 0 {
		errs = append(errs, errors.New("scheduler intervals must be positive"))
	}

	switch c.DB.Driver {
	case "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unsupported db.driver %q", c.DB.Driver))
	}

	return errors.Join(errs...)
}
