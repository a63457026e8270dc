// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, outbound HTTP, reader, sessions and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Outbound contains settings for requests to third-party sites
	Outbound OutboundConfig

	// Hosts extends the built-in classifier host lists
	Hosts HostsConfig

	// Reader contains article extraction configuration
	Reader ReaderConfig

	// Sessions contains viewer session storage configuration
	Sessions SessionConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// PublicOrigin is the origin the viewer is served from
	PublicOrigin string

	// RateLimit is the number of requests per second allowed per client IP
	RateLimit float64
}

// OutboundConfig holds outbound HTTP settings
type OutboundConfig struct {
	Timeout              time.Duration
	ProbeTimeout         time.Duration
	UserAgent            string
	MaxBodyBytes         int64
	AllowPrivateNetworks bool
}

// HostsConfig holds extra classifier hosts
type HostsConfig struct {
	Video    []string
	Document []string
	Sandbox  []string
}

// ReaderConfig holds extraction settings
type ReaderConfig struct {
	// Engine is heuristic, readability or trafilatura
	Engine string

	// MinChars is the confidence floor for engines and fallbacks
	MinChars int

	// PreserveClasses are class fragments kept through cleaning
	PreserveClasses []string
}

// SessionConfig holds session storage configuration
type SessionConfig struct {
	// Store specifies the backend (memory/redis/sqlite)
	Store string

	// TTL is how long an idle session lives
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadEnv loads a .env file when one exists. Variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8000"),
			PublicOrigin: getEnvOrDefault("PUBLIC_ORIGIN", ""),
			RateLimit:    getEnvAsFloatOrDefault("RATE_LIMIT", 10),
		},
		Outbound: OutboundConfig{
			Timeout:              getEnvAsDurationOrDefault("OUTBOUND_TIMEOUT", 15*time.Second),
			ProbeTimeout:         getEnvAsDurationOrDefault("PROBE_TIMEOUT", 5*time.Second),
			UserAgent:            getEnvOrDefault("USER_AGENT", ""),
			MaxBodyBytes:         int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 5<<20)),
			AllowPrivateNetworks: getEnvAsBoolOrDefault("ALLOW_PRIVATE_NETWORKS", false),
		},
		Hosts: HostsConfig{
			Video:    getEnvAsListOrDefault("VIDEO_HOSTS", nil),
			Document: getEnvAsListOrDefault("DOCUMENT_HOSTS", nil),
			Sandbox:  getEnvAsListOrDefault("SANDBOX_HOSTS", nil),
		},
		Reader: ReaderConfig{
			Engine:          getEnvOrDefault("READER_ENGINE", "heuristic"),
			MinChars:        getEnvAsIntOrDefault("READER_MIN_CHARS", 100),
			PreserveClasses: getEnvAsListOrDefault("READER_PRESERVE_CLASSES", nil),
		},
		Sessions: SessionConfig{
			Store: getEnvOrDefault("SESSION_STORE", "memory"),
			TTL:   getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "sessions.db"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("5s") or plain seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.PublicOrigin != "" {
		u, err := url.Parse(c.Server.PublicOrigin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("public origin %q must be an absolute URL", c.Server.PublicOrigin)
		}
	}

	if c.Server.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}

	if c.Outbound.Timeout <= 0 || c.Outbound.ProbeTimeout <= 0 {
		return errors.New("outbound timeouts must be positive")
	}

	if c.Outbound.MaxBodyBytes <= 0 {
		return errors.New("max body bytes must be positive")
	}

	switch c.Reader.Engine {
	case "heuristic", "readability", "trafilatura":
	default:
		return fmt.Errorf("reader engine must be 'heuristic', 'readability' or 'trafilatura', got %q", c.Reader.Engine)
	}

	if c.Reader.MinChars < 1 {
		return errors.New("reader min chars must be at least 1")
	}

	switch c.Sessions.Store {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("session store must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Sessions.TTL < time.Minute {
		return errors.New("session TTL must be at least one minute")
	}

	if c.Sessions.Store == "redis" && c.Sessions.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis sessions")
	}

	if c.Sessions.Store == "sqlite" && c.Sessions.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite sessions")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
