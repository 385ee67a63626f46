package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// CatalogConfig holds catalog loading configuration
type CatalogConfig struct {
	Path string
}

// PoliciesConfig holds the company sales policies applied when pricing
// quotes and assembly requests. These are configuration, never mutated
// at runtime.
type PoliciesConfig struct {
	Currency         string
	TaxPercent       float64
	ShippingStandard int64
	ShippingFreeOver int64
	AssemblyFee      int64
	AssemblyLeadTime string
}

// Config holds all configuration
type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Catalog  CatalogConfig
	Policies PoliciesConfig
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not returning error as .env file is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	// Initialize config struct with values from environment
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8084"),
			Env:  getEnv("APP_ENV", "development"),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", "salesservicesecretkey"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "sales"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", "products.json"),
		},
		Policies: PoliciesConfig{
			Currency:         getEnv("POLICY_CURRENCY", "VND"),
			TaxPercent:       getEnvAsFloat("POLICY_TAX_PERCENT", 8.5),
			ShippingStandard: getEnvAsInt64("POLICY_SHIPPING_STANDARD", 50000),
			ShippingFreeOver: getEnvAsInt64("POLICY_SHIPPING_FREE_OVER", 2000000),
			AssemblyFee:      getEnvAsInt64("POLICY_ASSEMBLY_FEE", 0),
			AssemblyLeadTime: getEnv("POLICY_ASSEMBLY_LEAD_TIME", "3-5 ngày làm việc"),
		},
	}

	return config, nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("environment", c.Server.Env),
		zap.String("server_port", c.Server.Port),
		zap.String("catalog_path", c.Catalog.Path),
		zap.String("currency", c.Policies.Currency),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as 64-bit integers
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as floats
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
