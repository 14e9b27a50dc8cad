package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}
	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := c.Remote.validate(); err != nil {
		return fmt.Errorf("remote: %w", err)
	}

	if c.Cache.PeriodTTL <= 0 {
		return fmt.Errorf("cache.period_ttl must be > 0 (got %v)", c.Cache.PeriodTTL)
	}

	if c.Log.File != "" && c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0 when log.file is set (got %d)", c.Log.MaxSizeMB)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	if strings.TrimSpace(s.Namespace) == "" {
		return fmt.Errorf("namespace is required")
	}

	switch s.Driver {
	case DriverSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", s.Driver)
		}
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", s.Driver)
		}
		if s.Postgres.MaxConns <= 0 {
			return fmt.Errorf("postgres.max_conns must be > 0 (got %d)", s.Postgres.MaxConns)
		}
		if s.Postgres.MinConns < 0 || s.Postgres.MinConns > s.Postgres.MaxConns {
			return fmt.Errorf("postgres.min_conns must be in [0, max_conns] (got %d)", s.Postgres.MinConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q (want sqlite, postgres or memory)", s.Driver)
	}

	return nil
}

func (r *RemoteConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	u, err := url.Parse(r.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url must be an absolute URL when enabled (got %q)", r.URL)
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", r.RequestTimeout)
	}
	if r.MirrorWorkers <= 0 {
		return fmt.Errorf("mirror_workers must be > 0 (got %d)", r.MirrorWorkers)
	}

	return nil
}
