package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Environment       string
	Host              string
	Port              string
	CORS              CORSConfig
	BodyLimitBytes    int64
	IncludeStackTrace bool
	SwaggerEnabled    bool
	RateLimit         RateLimitConfig
	DynamoDB          DynamoDBConfig
	ListPageSize      int
}

// CORSConfig holds cross-origin settings for the HTTP server.
type CORSConfig struct {
	Origin      string
	Credentials bool
}

// RateLimitConfig holds the optional request rate limit.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// DynamoDBConfig holds the car table location. Endpoint supports DynamoDB
// Local and LocalStack deployments; the static key pair is only needed there.
type DynamoDBConfig struct {
	Table     string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Load loads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("CORS_CREDENTIALS", false)
	viper.SetDefault("BODY_LIMIT_BYTES", 5<<20)
	viper.SetDefault("SWAGGER_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("LIST_PAGE_SIZE", 100)

	config := &Config{
		Environment:    viper.GetString("ENVIRONMENT"),
		Host:           viper.GetString("HOST"),
		Port:           firstNonEmpty(viper.GetString("PORT"), viper.GetString("APP_PORT"), "8080"),
		BodyLimitBytes: viper.GetInt64("BODY_LIMIT_BYTES"),
		SwaggerEnabled: viper.GetBool("SWAGGER_ENABLED"),
		ListPageSize:   viper.GetInt("LIST_PAGE_SIZE"),
		CORS: CORSConfig{
			Origin:      viper.GetString("CORS_ORIGIN"),
			Credentials: viper.GetBool("CORS_CREDENTIALS"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		DynamoDB: DynamoDBConfig{
			Table:     firstNonEmpty(viper.GetString("DYNAMODB_TABLE"), viper.GetString("CARS_TABLE"), "cars"),
			Region:    firstNonEmpty(viper.GetString("DYNAMODB_REGION"), viper.GetString("AWS_REGION"), "us-east-1"),
			Endpoint:  viper.GetString("DYNAMODB_ENDPOINT"),
			AccessKey: viper.GetString("DYNAMODB_ACCESS_KEY_ID"),
			SecretKey: viper.GetString("DYNAMODB_SECRET_ACCESS_KEY"),
		},
	}

	// Stack traces default on outside production; an explicit setting wins.
	config.IncludeStackTrace = GetEnvAsBool("INCLUDE_STACK_TRACE", config.Environment != "production")

	return config, nil
}

// IsProduction reports whether the configured environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// GetEnv gets an environment variable with a fallback value.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value.
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value.
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
