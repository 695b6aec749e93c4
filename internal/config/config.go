package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Mongo Mongo `validate:"required"`

	Kafka Kafka

	Session Session `validate:"required"`

	Tracing Tracing
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Mongo struct {
	URI      string `validate:"required,uri"`
	Database string `validate:"required"`

	MaxPoolSize    int           `validate:"gte=0"`
	ConnectTimeout time.Duration `validate:"gt=0"`
}

type Kafka struct {
	Enabled bool

	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Session struct {
	Secret string        `validate:"required,min=16"`
	TTL    time.Duration `validate:"gt=0"`
}

type Tracing struct {
	Enabled     bool
	ServiceName string  `validate:"required_if=Enabled true"`
	// OTLP/HTTP host:port; spans go to stdout when empty.
	Endpoint    string
	Insecure    bool
	SampleRatio float64 `validate:"gte=0,lte=1"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Mongo: Mongo{
			URI:            env("MONGO_URI", "mongodb://localhost:27017"),
			Database:       env("MONGO_DB", "shop"),
			MaxPoolSize:    envInt("MONGO_MAX_POOL_SIZE", 100),
			ConnectTimeout: envDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "shop-service"),
			Topic:   env("KAFKA_TOPIC", "checkout"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Session: Session{
			Secret: env("SESSION_SECRET", ""),
			TTL:    envDuration("SESSION_TTL", 30*24*time.Hour),
		},

		Tracing: Tracing{
			Enabled:     envBool("OTEL_ENABLED", false),
			ServiceName: env("OTEL_SERVICE_NAME", "shop-service"),
			Endpoint:    env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:    envBool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envFloat("OTEL_SAMPLER_RATIO", 0.1),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
