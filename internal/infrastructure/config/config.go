package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	S3        S3Config
	Log       LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Map       MapConfig
	Source    SourceConfig
	Image     ImageConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	MigrationsPath  string        `envconfig:"MIGRATIONS_PATH" default:"migrations"`
	RunMigrations   bool          `envconfig:"RUN_MIGRATIONS" default:"true"`
}

func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Host              string        `envconfig:"DB_HOST" default:"localhost"`
	Port              int           `envconfig:"DB_PORT" default:"5432"`
	User              string        `envconfig:"DB_USER" required:"true"`
	Password          string        `envconfig:"DB_PASSWORD" required:"true"`
	Name              string        `envconfig:"DB_NAME" required:"true"`
	SSLMode           string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns      int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns      int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime   time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime   time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"5m"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// S3Config is optional: image upload routes are only served when Bucket is set.
type S3Config struct {
	Endpoint        string        `envconfig:"S3_ENDPOINT"`
	Region          string        `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string        `envconfig:"S3_BUCKET"`
	AccessKeyID     string        `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string        `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string        `envconfig:"S3_PUBLIC_URL"`
	SignedURLExpiry time.Duration `envconfig:"S3_SIGNED_URL_EXPIRY" default:"24h"`
}

func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

type ImageConfig struct {
	MaxSide       int   `envconfig:"IMAGE_MAX_SIDE" default:"2048"`
	JPEGQuality   int   `envconfig:"IMAGE_JPEG_QUALITY" default:"85"`
	MaxUploadSize int64 `envconfig:"IMAGE_MAX_UPLOAD_SIZE" default:"10485760"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig needs Redis; it is ignored when Redis is disabled.
type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
}

type CORSConfig struct {
	Origin string        `envconfig:"CORS_ORIGIN" default:"*"`
	MaxAge time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

// MapConfig holds the viewport defaults handed to map clients.
type MapConfig struct {
	ZoomBoost         float64       `envconfig:"MAP_ZOOM_BOOST" default:"6"`
	MaxZoom           float64       `envconfig:"MAP_MAX_ZOOM" default:"18"`
	PaddingX          int           `envconfig:"MAP_PADDING_X" default:"20"`
	PaddingY          int           `envconfig:"MAP_PADDING_Y" default:"20"`
	AnimationDuration time.Duration `envconfig:"MAP_ANIMATION_DURATION" default:"700ms"`
	InitialLat        float64       `envconfig:"MAP_INITIAL_LAT" default:"42.8125"`
	InitialLon        float64       `envconfig:"MAP_INITIAL_LON" default:"-1.6458"`
	InitialZoom       float64       `envconfig:"MAP_INITIAL_ZOOM" default:"12"`
}

const (
	SourceDatabase = "database"
	SourceRemote   = "remote"
)

// SourceConfig selects where map features come from.
type SourceConfig struct {
	Mode          string        `envconfig:"SOURCE_MODE" default:"database"`
	RemoteURL     string        `envconfig:"SOURCE_REMOTE_URL"`
	RemoteTimeout time.Duration `envconfig:"SOURCE_REMOTE_TIMEOUT" default:"5s"`
	CacheTTL      time.Duration `envconfig:"SOURCE_CACHE_TTL" default:"30s"`
	DemoFallback  bool          `envconfig:"SOURCE_DEMO_FALLBACK" default:"false"`
}

func (c SourceConfig) Validate() error {
	switch c.Mode {
	case SourceDatabase:
		return nil
	case SourceRemote:
		if c.RemoteURL == "" {
			return fmt.Errorf("SOURCE_REMOTE_URL is required in %s mode", SourceRemote)
		}
		return nil
	default:
		return fmt.Errorf("unknown SOURCE_MODE %q", c.Mode)
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Source.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
