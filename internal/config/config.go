package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDailyExtractionLimit = 20
	DefaultInterFileDelay       = 2 * time.Second
	DefaultRetryAttempts        = 5
	DefaultRetryBaseDelay       = 2500 * time.Millisecond
	DefaultMetadataCacheSizeMB  = 10
	DefaultUploadsPerMinute     = 10
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	RunDBMigrations  bool   `toml:"run_db_migrations"`
	PostgresSSLMode  string `toml:"postgres_ssl_mode"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// model
	ModelName     string `toml:"model_name"`
	ModelEndpoint string `toml:"model_endpoint"`

	// extraction pipeline
	DailyExtractionLimit int      `toml:"daily_extraction_limit"`
	InterFileDelay       Duration `toml:"inter_file_delay"`
	RetryAttempts        int      `toml:"retry_attempts"`
	RetryBaseDelay       Duration `toml:"retry_base_delay"`
	UploadsPerMinute     int      `toml:"uploads_per_minute"`
	MergeUploadsDefault  bool     `toml:"merge_uploads_default"`

	// screenshots
	ScreenshotStore  string   `toml:"screenshot_store"` // inline | s3
	S3Bucket         string   `toml:"s3_bucket"`
	S3Region         string   `toml:"s3_region"`
	S3Endpoint       string   `toml:"s3_endpoint"`
	S3PresignExpires Duration `toml:"s3_presign_expires"`

	MetadataCacheSizeMB int      `toml:"metadata_cache_size_mb"`
	AllowedOrigins      []string `toml:"allowed_origins"`

	// auth; signing secret comes from COACHSHOT_JWT_SECRET
	AuthIssuer string `toml:"auth_issuer"`

	// mcp
	MCPEnabled bool `toml:"mcp_enabled"`
}

// Duration lets TOML files carry values like "2s" or "2500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills in zero values with the pipeline defaults.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.ModelName == "" {
		c.ModelName = "gemini-2.0-flash"
	}
	if c.DailyExtractionLimit <= 0 {
		c.DailyExtractionLimit = DefaultDailyExtractionLimit
	}
	if c.InterFileDelay.Duration <= 0 {
		c.InterFileDelay.Duration = DefaultInterFileDelay
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = DefaultRetryAttempts
	}
	if c.RetryBaseDelay.Duration <= 0 {
		c.RetryBaseDelay.Duration = DefaultRetryBaseDelay
	}
	if c.UploadsPerMinute <= 0 {
		c.UploadsPerMinute = DefaultUploadsPerMinute
	}
	if c.ScreenshotStore == "" {
		c.ScreenshotStore = "inline"
	}
	if c.S3PresignExpires.Duration <= 0 {
		c.S3PresignExpires.Duration = 15 * time.Minute
	}
	if c.MetadataCacheSizeMB <= 0 {
		c.MetadataCacheSizeMB = DefaultMetadataCacheSizeMB
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.AuthIssuer == "" {
		c.AuthIssuer = "coachshot"
	}
	if c.PostgresSSLMode == "" {
		c.PostgresSSLMode = "disable"
	}
}
