package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// MinJWTSecretLength is the minimum required length for the JWT secret in production
	MinJWTSecretLength = 32
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Timezone used for all calendar-date comparisons (hearing today,
	// overdue checks, date+time form input).
	Timezone string
	// Token auth
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Other
	AllowedOrigins []string
	AppURL         string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	jwtSecret := getEnv("JWT_SECRET", "")

	// Validate JWT secret - this will fatal in production if invalid
	ValidateJWTSecret(jwtSecret, environment)

	// In development, generate a secure secret if none provided
	if jwtSecret == "" && environment != "production" {
		jwtSecret = GenerateSecureSecret()
		log.Println("[INFO] Generated temporary JWT secret for development. Set JWT_SECRET env var for persistence.")
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "db/app.db"),
		Environment:     environment,
		Timezone:        getEnv("TIMEZONE", "Asia/Kolkata"),
		JWTSecret:       jwtSecret,
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "noreply@lawyerdiary.in"),
		EmailFromName:   getEnv("EMAIL_FROM_NAME", "Lawyer Diary"),
		EmailTestMode:   getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:          getEnv("APP_URL", "http://localhost:8080"),
	}
}

// IsProduction reports whether the app runs in production mode. Cookie
// Secure flags key off this.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location resolves the configured timezone, falling back to UTC if the
// zone name is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[WARNING] Unknown TIMEZONE %q, falling back to UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[WARNING] Invalid duration for %s: %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// ValidateJWTSecret validates the JWT secret meets security requirements.
// In production, it must be at least 32 bytes and not a known insecure default.
func ValidateJWTSecret(secret string, environment string) error {
	// Known insecure defaults that must be rejected
	insecureDefaults := []string{
		"dev-secret-change-in-production",
		"change-me",
		"secret",
		"development",
		"test",
		"",
	}

	for _, insecure := range insecureDefaults {
		if strings.EqualFold(secret, insecure) {
			if environment == "production" {
				log.Fatal("[CRITICAL] JWT_SECRET is set to an insecure default value. Generate a secure random secret with: openssl rand -base64 32")
			}
			log.Printf("[WARNING] JWT_SECRET is set to an insecure default value. This is acceptable only in development.")
			return nil
		}
	}

	if environment == "production" {
		if len(secret) < MinJWTSecretLength {
			log.Fatalf("[CRITICAL] JWT_SECRET must be at least %d characters in production (current: %d). Generate with: openssl rand -base64 32", MinJWTSecretLength, len(secret))
		}
	}

	return nil
}

// GenerateSecureSecret generates a cryptographically secure random secret.
// This is used only for development when no secret is provided.
func GenerateSecureSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Printf("[WARNING] Failed to generate secure secret: %v", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(bytes)
}
