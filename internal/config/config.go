package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Admin      AdminConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
}

// PostgreSQLConfig holds the optional PostgreSQL catalog source.
// When no DSN is configured the embedded directory catalog is used instead.
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// AdminConfig holds admin tooling configuration
type AdminConfig struct {
	Password string
}

// OpenAIConfig holds the OpenAI chat provider configuration
type OpenAIConfig struct {
	APIKey      string
	APIBase     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     int
}

// AnthropicConfig holds the Anthropic chat provider configuration
type AnthropicConfig struct {
	APIKey    string
	APIBase   string
	Version   string
	Model     string
	MaxTokens int
	Timeout   int
}

// Load reads configuration from environment variables. Provider credentials
// are captured here once; nothing downstream re-reads the process
// environment per request.
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "wayfinding"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("PORT", getEnvAsInt("SERVER_PORT", 8000)),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", "rajavithi2024"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			APIBase:     getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_CHAT_MODEL", "gpt-3.5-turbo"),
			MaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 500),
			Temperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.7),
			Timeout:     getEnvAsInt("OPENAI_TIMEOUT", 30),
		},
		Anthropic: AnthropicConfig{
			APIKey:    getEnv("ANTHROPIC_API_KEY", ""),
			APIBase:   getEnv("ANTHROPIC_API_BASE", "https://api.anthropic.com"),
			Version:   getEnv("ANTHROPIC_VERSION", "2023-06-01"),
			Model:     getEnv("ANTHROPIC_CHAT_MODEL", "claude-3-haiku-20240307"),
			MaxTokens: getEnvAsInt("ANTHROPIC_CHAT_MAX_TOKENS", 500),
			Timeout:   getEnvAsInt("ANTHROPIC_TIMEOUT", 30),
		},
	}

	return cfg, nil
}

// Configured reports whether the OpenAI credential is format-valid.
// Format-valid is not the same as reachable.
func (c *OpenAIConfig) Configured() bool {
	return strings.HasPrefix(c.APIKey, "sk-") && len(c.APIKey) > 20
}

// Configured reports whether the Anthropic credential is format-valid.
func (c *AnthropicConfig) Configured() bool {
	return strings.HasPrefix(c.APIKey, "sk-ant-")
}

// GetPostgreSQLDSN returns the PostgreSQL connection string, preferring a
// full DSN when one is configured.
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
