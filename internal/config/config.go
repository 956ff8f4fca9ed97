package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For window durations

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported authentication modes
const (
	AuthModeHeader = "header" // x-user-id header
	AuthModeJWT    = "jwt"    // Bearer token
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	APIPrefix       string        // Common path prefix for the REST surface
	DBDriver        string        // Database driver: mysql, postgres or sqlite
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database host
	DBPort          string        // Database port
	DBName          string        // Database name
	DBSSLMode       string        // Postgres sslmode
	DBPath          string        // SQLite file path
	RedisAddr       string        // Redis server address, empty disables Redis
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	AuthMode        string        // Identity resolution: header or jwt
	JWTSecret       string        // JWT secret key
	ErrorLogPath    string        // File sink for error records
	RateLimitMax    int           // Requests allowed per window per client
	RateLimitWindow time.Duration // Rate limit window
	CORSOrigins     []string      // Allowed CORS origins
	TrustedProxies  []string      // Proxies whose X-Forwarded-For is honored, none by default
	BodyLimitBytes  int64         // Max request body size
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:         getEnv("APP_PORT", "4000"),
		APIPrefix:       getEnv("API_PREFIX", "/api"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          os.Getenv("DB_PORT"),
		DBName:          getEnv("DB_NAME", "tvshows"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		DBPath:          getEnv("DB_PATH", "tvshows.db"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         redisDB,
		AuthMode:        strings.ToLower(getEnv("AUTH_MODE", AuthModeHeader)),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		ErrorLogPath:    getEnv("ERROR_LOG_PATH", "logs/error.log"),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		TrustedProxies:  splitList(os.Getenv("TRUSTED_PROXIES")),
		BodyLimitBytes:  int64(getEnvInt("BODY_LIMIT_BYTES", 1<<20)),
		IsProd:          os.Getenv("IS_PROD") == "true",
	}
}

// Validate reports configuration that cannot be served
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.AuthMode {
	case AuthModeHeader:
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set when AUTH_MODE=jwt")
		}
	default:
		return fmt.Errorf("unsupported AUTH_MODE %q", c.AuthMode)
	}
	if c.RateLimitMax <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

// DSN renders the data source name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port, c.DBSSLMode)
	case DriverSQLite:
		return c.DBPath
	default:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
