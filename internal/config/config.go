package config

import (
	"net"
	"strconv"
	"time"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Remote  RemoteConfig  `yaml:"remote"`
	Cache   CacheConfig   `yaml:"cache"`
	CORS    CORSConfig    `yaml:"cors"`
	Archive ArchiveConfig `yaml:"archive"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WriteRateLimit caps journal writes per client per minute; 0 disables it.
	WriteRateLimit int `yaml:"write_rate_limit" env:"SERVER_WRITE_RATE_LIMIT" env-default:"120"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string { return net.JoinHostPort(s.Host, strconv.Itoa(s.Port)) }

// LogConfig holds logging settings. When File is set, records are written
// to a size-rotated file instead of stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"50"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"30"`
}

// StoreConfig selects and configures the local store backend.
type StoreConfig struct {
	Driver     string `yaml:"driver"      env:"STORE_DRIVER"      env-default:"sqlite"`
	Namespace  string `yaml:"namespace"   env:"STORE_NAMESPACE"   env-default:"catHealth"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"./data/journal.db"`

	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RemoteConfig holds settings for the spreadsheet endpoint mirror.
type RemoteConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"REMOTE_ENABLED"         env-default:"false"`
	URL            string        `yaml:"url"             env:"REMOTE_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REMOTE_REQUEST_TIMEOUT" env-default:"30s"`
	MirrorWorkers  int           `yaml:"mirror_workers"  env:"REMOTE_MIRROR_WORKERS"  env-default:"4"`
}

// CacheConfig holds period cache settings.
type CacheConfig struct {
	PeriodTTL time.Duration `yaml:"period_ttl" env:"CACHE_PERIOD_TTL" env-default:"5m"`
}

// ArchiveConfig holds S3 export upload settings. Uploads are disabled while
// Bucket is empty.
type ArchiveConfig struct {
	Bucket       string `yaml:"bucket"         env:"ARCHIVE_BUCKET"`
	Prefix       string `yaml:"prefix"         env:"ARCHIVE_PREFIX"         env-default:"exports/"`
	Region       string `yaml:"region"         env:"ARCHIVE_REGION"         env-default:"ap-northeast-1"`
	Endpoint     string `yaml:"endpoint"       env:"ARCHIVE_ENDPOINT"`
	UsePathStyle bool   `yaml:"use_path_style" env:"ARCHIVE_USE_PATH_STYLE" env-default:"false"`
}

// Enabled reports whether export uploads are configured.
func (c ArchiveConfig) Enabled() bool { return c.Bucket != "" }
