package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWTSecret verifies access tokens issued by the external identity provider.
	JWTSecret string

	// Market data sources
	GoldAPIKey             string
	GoldAPIBaseURL         string
	FreeCurrencyAPIKey     string
	FreeCurrencyAPIBaseURL string
	RequestTimeout         time.Duration
	UseMockPrices          bool

	// Caching
	PriceCacheTTL    time.Duration
	SnapshotCacheTTL time.Duration

	// Prices endpoint rate limit window (one request per client per window)
	PriceRateLimitWindow time.Duration

	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is honoured
	// when resolving the client IP. Empty trusts none.
	TrustedProxies []string

	// Pipeline
	PipelineAPIKey       string
	PriceHistorySchedule string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "metalfolio"),
		DBPassword: getEnv("DB_PASSWORD", "metalfolio"),
		DBName:     getEnv("DB_NAME", "metalfolio"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only")),

		// Market data
		GoldAPIKey:             firstEnv("GOLDAPI_KEY", "NEXT_PUBLIC_GOLDAPI_KEY"),
		GoldAPIBaseURL:         getEnv("GOLDAPI_BASE_URL", "https://www.goldapi.io/api"),
		FreeCurrencyAPIKey:     firstEnv("FREECURRENCYAPI_KEY", "NEXT_PUBLIC_FREECURRENCYAPI_KEY"),
		FreeCurrencyAPIBaseURL: getEnv("FREECURRENCYAPI_BASE_URL", "https://api.freecurrencyapi.com/v1/latest"),

		// Pipeline
		PipelineAPIKey:       getEnv("PIPELINE_API_KEY", ""),
		PriceHistorySchedule: getEnv("PRICE_HISTORY_SCHEDULE", "0 0 * * *"),
	}

	config.RequestTimeout = getDuration("REQUEST_TIMEOUT", 10*time.Second)
	config.PriceCacheTTL = getDuration("PRICE_CACHE_TTL", time.Hour)
	config.SnapshotCacheTTL = getDuration("SNAPSHOT_CACHE_TTL", time.Hour)
	config.PriceRateLimitWindow = getDuration("PRICE_RATE_LIMIT_WINDOW", 10*time.Second)
	config.UseMockPrices = getBool("USE_MOCK_PRICES", false)
	config.TrustedProxies = getList("TRUSTED_PROXIES")

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// getDuration parses a positive duration, falling back to defaultValue on a
// missing or invalid value.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, s, defaultValue)
		return defaultValue
	}
	return d
}

// getList splits a comma-separated value, dropping blanks. Nil when unset.
func getList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getBool(key string, defaultValue bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, s, defaultValue)
		return defaultValue
	}
}
