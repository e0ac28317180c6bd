package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "dev-jwt-secret-change-me"

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Database. An empty DatabaseURL selects the SQLite fallback at SQLitePath.
	DatabaseURL   string
	SQLitePath    string
	DBMaxConns    int
	DBMinConns    int
	DBMaxConnLife time.Duration

	// JWT
	JWTSecret string
	AccessTTL time.Duration // zero disables expiry

	// Redis (catalog cache)
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration

	// RabbitMQ (favorite events)
	RabbitMQURL            string
	RabbitMQFavoritesQueue string

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Debug metrics (/metrics and /debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if v == "0" {
			return 0
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "starwars-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		DatabaseURL:   getenv("DATABASE_URL", ""),
		SQLitePath:    getenv("SQLITE_PATH", "/tmp/starwars.db"),
		DBMaxConns:    getint("DB_MAX_CONNS", 10),
		DBMinConns:    getint("DB_MIN_CONNS", 2),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		JWTSecret: getenv("JWT_SECRET_KEY", ""),
		AccessTTL: getdur("JWT_ACCESS_TTL", time.Hour),

		RedisAddr:       getenv("REDIS_ADDR", ""),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RedisDB:         getint("REDIS_DB", 0),
		CatalogCacheTTL: getdur("CATALOG_CACHE_TTL", 5*time.Minute),

		RabbitMQURL:            getenv("RABBITMQ_URL", ""),
		RabbitMQFavoritesQueue: getenv("RABBITMQ_FAVORITES_QUEUE", "favorites.events"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "*"),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// UsesSQLite reports whether the embedded file-backed store is selected
func (c *Config) UsesSQLite() bool {
	return strings.TrimSpace(c.DatabaseURL) == ""
}

// Validate enforces production constraints and fills development defaults.
// It returns the list of warnings worth logging.
func (c *Config) Validate() ([]string, error) {
	var warnings []string
	if c.IsProduction() {
		if c.UsesSQLite() {
			return nil, errors.New("DATABASE_URL is required in production")
		}
		if c.JWTSecret == "" {
			return nil, errors.New("JWT_SECRET_KEY is required in production")
		}
	}
	if c.JWTSecret == "" {
		c.JWTSecret = devJWTSecret
		warnings = append(warnings, "JWT_SECRET_KEY not set, using development secret")
	}
	if c.UsesSQLite() {
		warnings = append(warnings, "DATABASE_URL not set, using SQLite at "+c.SQLitePath+" (development only)")
	}
	if c.AccessTTL == 0 {
		warnings = append(warnings, "JWT_ACCESS_TTL is 0, issued tokens never expire")
	}
	return warnings, nil
}

// NormalizedDatabaseURL rewrites the legacy postgres:// scheme some hosts hand out
func (c *Config) NormalizedDatabaseURL() string {
	if strings.HasPrefix(c.DatabaseURL, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(c.DatabaseURL, "postgres://")
	}
	return c.DatabaseURL
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
