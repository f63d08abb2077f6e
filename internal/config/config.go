package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries all runtime configuration, loaded from the environment.
type Config struct {
	Environment string
	HTTPAddr    string

	Database DatabaseConfig
	Storage  StorageConfig
	Email    EmailConfig
	Tracing  TracingConfig
}

type DatabaseConfig struct {
	Driver string // "postgres" or "sqlite"
	DSN    string
}

type StorageConfig struct {
	Bucket          string
	PDFBucket       string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional, for S3-compatible stores
}

type EmailConfig struct {
	Endpoint string
}

type TracingConfig struct {
	Enabled          bool
	ServiceName      string
	ServiceVersion   string
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

// Load reads configuration from the environment. A .env file is applied
// first when present so local development does not need exported vars.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment: getenv("BILLIFY_ENV", "development"),
		HTTPAddr:    getenv("BILLIFY_HTTP_ADDR", ":8080"),
		Database: DatabaseConfig{
			Driver: getenv("BILLIFY_DB_DRIVER", "sqlite"),
			DSN:    getenv("BILLIFY_DB_DSN", "file:billify.db?cache=shared"),
		},
		Storage: StorageConfig{
			Bucket:          os.Getenv("AWS_S3_BUCKET"),
			PDFBucket:       os.Getenv("AWS_S3_PDF_BUCKET"),
			Region:          os.Getenv("AWS_REGION"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        os.Getenv("AWS_S3_ENDPOINT"),
		},
		Email: EmailConfig{
			Endpoint: os.Getenv("EMAIL_API_ENDPOINT"),
		},
		Tracing: TracingConfig{
			Enabled:          getenvBool("OTEL_ENABLED", false),
			ServiceName:      getenv("OTEL_SERVICE_NAME", "billify"),
			ServiceVersion:   getenv("OTEL_SERVICE_VERSION", "dev"),
			ExporterEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ExporterProtocol: getenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http"),
			SamplingRatio:    getenvFloat("OTEL_SAMPLING_RATIO", 1.0),
		},
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// StorageConfigured reports whether object storage credentials are present.
func (c Config) StorageConfigured() bool {
	s := c.Storage
	return s.PDFBucket != "" && s.Region != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

// EmailConfigured reports whether the notification endpoint is set.
func (c Config) EmailConfigured() bool {
	return strings.TrimSpace(c.Email.Endpoint) != ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
