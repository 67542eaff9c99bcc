package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tair/storefront/pkg/database"
)

// Config holds all storefront configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	JaegerEndpoint   string
	TraceSampleRatio float64

	Database database.Config
	Redis    RedisConfig
	Kafka    KafkaConfig
	Session  SessionConfig
	Storage  StorageConfig
	Catalog  CatalogConfig

	// AllowedOrigins is the CORS allow-list for the storefront client
	AllowedOrigins []string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds broker settings for transaction events
type KafkaConfig struct {
	Brokers []string
	GroupID string
	Enabled bool
}

// SessionConfig holds cookie session settings
type SessionConfig struct {
	Secret         string
	TTL            time.Duration
	CookieName     string
	CookieSecure   bool
	LoginRateLimit int
	LoginWindow    time.Duration
}

// StorageConfig holds S3-compatible object storage settings for product images
type StorageConfig struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	PublicURL    string
}

// CatalogConfig holds catalog defaults
type CatalogConfig struct {
	DefaultImageURL string
	CacheTTL        time.Duration
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads configuration from the environment, falling back to defaults
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		ServiceName: v.GetString("OTEL_SERVICE_NAME"),
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTPPort:    v.GetString("HTTP_PORT"),

		JaegerEndpoint:   v.GetString("JAEGER_ENDPOINT"),
		TraceSampleRatio: v.GetFloat64("TRACE_SAMPLE_RATIO"),

		Database: database.Config{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),

			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
			Enabled: v.GetBool("KAFKA_ENABLED"),
		},
		Session: SessionConfig{
			Secret:         v.GetString("SESSION_SECRET"),
			TTL:            v.GetDuration("SESSION_TTL"),
			CookieName:     v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure:   v.GetBool("SESSION_COOKIE_SECURE"),
			LoginRateLimit: v.GetInt("LOGIN_RATE_LIMIT"),
			LoginWindow:    v.GetDuration("LOGIN_RATE_WINDOW"),
		},
		Storage: StorageConfig{
			Endpoint:     v.GetString("S3_ENDPOINT"),
			Region:       v.GetString("S3_REGION"),
			Bucket:       v.GetString("S3_BUCKET"),
			AccessKey:    v.GetString("S3_ACCESS_KEY"),
			SecretKey:    v.GetString("S3_SECRET_KEY"),
			UsePathStyle: v.GetBool("S3_USE_PATH_STYLE"),
			PublicURL:    v.GetString("S3_PUBLIC_URL"),
		},
		Catalog: CatalogConfig{
			DefaultImageURL: v.GetString("DEFAULT_IMAGE_URL"),
			CacheTTL:        v.GetDuration("PRODUCT_CACHE_TTL"),
		},
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("OTEL_SERVICE_NAME", "storefront")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACE_SAMPLE_RATIO", 1.0)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "storefrontdb")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_ID", "storefront-catalog-cache")
	v.SetDefault("KAFKA_ENABLED", true)

	v.SetDefault("SESSION_SECRET", "change-me-in-production")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("SESSION_COOKIE_NAME", "storefront_session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("LOGIN_RATE_WINDOW", time.Minute)

	v.SetDefault("S3_ENDPOINT", "http://localhost:9000")
	v.SetDefault("S3_REGION", "us-east-2")
	v.SetDefault("S3_BUCKET", "storefront-products")
	v.SetDefault("S3_USE_PATH_STYLE", true)

	v.SetDefault("DEFAULT_IMAGE_URL", "https://s3-alpha.figma.com/hub/file/948140848/1f4d8ea7-e9d9-48b7-b70c-819482fb10fb-cover.png")
	v.SetDefault("PRODUCT_CACHE_TTL", 5*time.Minute)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200")
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Environment != "development" && c.Session.Secret == "change-me-in-production" {
		return fmt.Errorf("SESSION_SECRET must be set outside development")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
