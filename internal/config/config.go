package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Mongo      MongoConfig
	App        AppConfig
	Auth       AuthConfig
	Log        LogConfig
	Callback   CallbackConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
	Metrics    MetricsConfig
	Pprof      PprofConfig
	Dashboard  DashboardConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections  int           `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB" envDefault:"linkshortener"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT" envDefault:"20s"`
}

type AppConfig struct {
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`
}

type AuthConfig struct {
	JWTSecret          string `env:"JWT_SECRET,required,notEmpty"`
	JWTAlgorithm       string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	TokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`
	CreationToken      string `env:"ADMIN_CREATION_TOKEN"`
}

func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenExpireMinutes) * time.Minute
}

// LogConfig configures the local slog handler and the optional remote log sender.
// The remote sender is enabled when Endpoint is set.
type LogConfig struct {
	Level         slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	Endpoint      string        `env:"LOG_API"`
	ProjectID     string        `env:"LOG_PROJECT_ID"`
	APIKey        string        `env:"LOG_API_KEY"`
	BufferSize    int           `env:"LOG_BUFFER_SIZE" envDefault:"1024"`
	FlushInterval time.Duration `env:"LOG_FLUSH_INTERVAL" envDefault:"2s"`
	BatchSize     int           `env:"LOG_BATCH_SIZE" envDefault:"100"`
}

type CallbackConfig struct {
	Timeout   time.Duration `env:"CALLBACK_TIMEOUT" envDefault:"5s"`
	Workers   int           `env:"CALLBACK_WORKERS" envDefault:"4"`
	QueueSize int           `env:"CALLBACK_QUEUE_SIZE" envDefault:"1024"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
	MaxNameLength      int    `env:"VALIDATION_MAX_NAME_LENGTH" envDefault:"200"`
	MaxRequestBodySize string `env:"VALIDATION_MAX_REQUEST_BODY_SIZE" envDefault:"1M"`
	AllowPrivateIPs    bool   `env:"VALIDATION_ALLOW_PRIVATE_IPS" envDefault:"false"`
}

type MetricsConfig struct {
	Enabled        bool   `env:"METRICS_ENABLED" envDefault:"false"`
	DatabaseURL    string `env:"METRICS_DATABASE_URL"`
	BufferSize     int    `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int    `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int    `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type DashboardConfig struct {
	TimeZone    string `env:"DASHBOARD_TIMEZONE" envDefault:"UTC"`
	DefaultDays int    `env:"DASHBOARD_DEFAULT_DAYS" envDefault:"7"`
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Load reads a .env file when one is present and then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !supportedAlgorithms[c.Auth.JWTAlgorithm] {
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", c.Auth.JWTAlgorithm)
	}
	if c.Auth.TokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if _, err := time.LoadLocation(c.Dashboard.TimeZone); err != nil {
		return fmt.Errorf("invalid DASHBOARD_TIMEZONE: %w", err)
	}
	if c.Log.FlushInterval <= 0 {
		return fmt.Errorf("LOG_FLUSH_INTERVAL must be positive")
	}
	if c.Metrics.Enabled && c.Metrics.FlushInterval <= 0 {
		return fmt.Errorf("METRICS_FLUSH_INTERVAL_MS must be positive")
	}
	if c.Metrics.Enabled && c.Metrics.DatabaseURL == "" {
		return fmt.Errorf("METRICS_DATABASE_URL is required when metrics are enabled")
	}
	return nil
}
