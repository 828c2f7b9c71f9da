package confs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEmailServiceURL = "http://api2:5000/prepare"

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Port            string
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	SQLitePath      string
	EmailServiceURL string
	LogLevel        string
	CORSOrigins     []string
	BcryptCost      int
	// LegacyPasswordlessAuth keeps the old Basic Auth behaviour where a known
	// username with an empty password is let through.
	LegacyPasswordlessAuth bool
}

// LoadConfig loads environment variables from a .env file if present.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = LoadConfig()

	return &Config{
		Port:                   getenvDefault("PORT", "8080"),
		DatabaseURL:            os.Getenv("DB_URL"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		SQLitePath:             getenvDefault("SQLITE_PATH", "reminders.db"),
		EmailServiceURL:        getenvDefault("EMAIL_SERVICE_URL", defaultEmailServiceURL),
		LogLevel:               strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		CORSOrigins:            splitList(getenvDefault("CORS_ORIGINS", "*")),
		BcryptCost:             parseIntEnv("BCRYPT_COST", 0),
		LegacyPasswordlessAuth: ParseBoolEnv("AUTH_LEGACY_PASSWORDLESS", false),
	}
}

// UsesPostgres reports whether enough settings are present to connect to PostgreSQL.
func (c *Config) UsesPostgres() bool {
	if c.DatabaseURL != "" {
		return true
	}
	return c.DBHost != "" && c.DBPort != "" && c.DBUser != "" && c.DBName != ""
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// ParseBoolEnv returns the boolean value for an environment variable or the provided default.
func ParseBoolEnv(key string, def bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as bool: %v", key, value, err)
		return def
	}
	return parsed
}

func parseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
