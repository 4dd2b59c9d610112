package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the website server configuration
type Config struct {
	Server    ServerConfig    `json:"server"`
	App       AppConfig       `json:"app"`
	Email     EmailConfig     `json:"email"`
	RateLimit RateLimitConfig `json:"rateLimit"`
	Redis     RedisConfig     `json:"redis"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           int    `json:"port"`
	FrontendURL    string `json:"frontendUrl"`
	StaticDir      string `json:"staticDir"`
	BodyLimitBytes int    `json:"bodyLimitBytes"`
	ProxyHeader    string `json:"proxyHeader"` // header carrying the client IP behind a proxy
	Debug          bool   `json:"debug"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Env     string `json:"env"`
	OrgName string `json:"orgName"`
	Website string `json:"website"`
}

// EmailConfig holds mail transport configuration
type EmailConfig struct {
	Service      string `json:"service"`
	SMTPHost     string `json:"smtpHost"`
	SMTPPort     int    `json:"smtpPort"`
	User         string `json:"user"`
	Pass         string `json:"-"`
	CompanyEmail string `json:"companyEmail"`
	FromFallback string `json:"fromFallback"`
}

// RateLimitConfig holds rate limiting configuration for the contact endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
	Store    string        `json:"store"`
}

// RedisConfig holds Redis-specific configuration for the shared limiter store
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"-"`
	Database int    `json:"database"`
	PoolSize int    `json:"poolSize"`
	Prefix   string `json:"prefix"`
}

// Limiter store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// IsProduction reports whether the runtime mode flag selects production behaviour.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// FromAddress is the sender used for both outgoing emails.
func (c *Config) FromAddress() string {
	if c.Email.User != "" {
		return c.Email.User
	}
	return c.Email.FromFallback
}

// Redacted returns a copy safe to log, with credentials masked.
func (c *Config) Redacted() Config {
	out := *c
	if out.Email.Pass != "" {
		out.Email.Pass = "***"
	}
	if out.Redis.Password != "" {
		out.Redis.Password = "***"
	}
	return out
}

// LoadFromEnv loads configuration from the environment.
// Precedence:
// 1. Explicit Environment Variables
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv.Load never overrides variables that are already set.
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && v != "" {
			env[k] = v
		}
	}
	return LoadFromMap(env)
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists && value != "" {
			return value
		}
		return defaultValue
	}

	getInt := func(key string, defaultValue int) int {
		if value, exists := envMap[key]; exists {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	getBool := func(key string, defaultValue bool) bool {
		if value, exists := envMap[key]; exists {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}

	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, exists := envMap[key]; exists {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Port:           getInt("PORT", 3000),
			FrontendURL:    get("FRONTEND_URL", "http://localhost:3000"),
			StaticDir:      get("STATIC_DIR", "./web"),
			BodyLimitBytes: getInt("BODY_LIMIT_BYTES", 10*1024*1024),
			ProxyHeader:    get("PROXY_HEADER", ""),
			Debug:          getBool("DEBUG", false),
		},
		App: AppConfig{
			Env:     get("APP_ENV", get("NODE_ENV", "development")),
			OrgName: get("ORG_NAME", "TN Systems"),
			Website: get("WEBSITE_URL", "https://domain.com"),
		},
		Email: EmailConfig{
			Service:      get("EMAIL_SERVICE", "gmail"),
			SMTPHost:     get("SMTP_HOST", ""),
			SMTPPort:     getInt("SMTP_PORT", 0),
			User:         get("EMAIL_USER", ""),
			Pass:         get("EMAIL_PASS", ""),
			CompanyEmail: get("COMPANY_EMAIL", "contact@domain.com"),
			FromFallback: get("EMAIL_FROM_FALLBACK", "noreply@domain.com"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  getBool("RATE_LIMIT_CONTACT_ENABLED", true),
			Max:      getInt("RATE_LIMIT_CONTACT_MAX", 5),
			Duration: getDuration("RATE_LIMIT_CONTACT_DURATION", 15*time.Minute),
			Store:    strings.ToLower(get("RATE_LIMIT_STORE", StoreMemory)),
		},
		Redis: RedisConfig{
			Address:  get("REDIS_ADDRESS", "localhost:6379"),
			Password: get("REDIS_PASSWORD", ""),
			Database: getInt("REDIS_DATABASE", 0),
			PoolSize: getInt("REDIS_POOL_SIZE", 10),
			Prefix:   get("REDIS_PREFIX", "tnsystems:ratelimit:"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}
	if strings.TrimSpace(c.Server.FrontendURL) == "" {
		errors = append(errors, "FRONTEND_URL is required")
	} else if strings.Contains(c.Server.FrontendURL, "*") {
		errors = append(errors, "FRONTEND_URL cannot be a wildcard when credentials are allowed")
	}
	if c.Server.BodyLimitBytes <= 0 {
		errors = append(errors, "BODY_LIMIT_BYTES must be positive")
	}
	if strings.TrimSpace(c.Email.CompanyEmail) == "" {
		errors = append(errors, "COMPANY_EMAIL is required")
	}
	if c.IsProduction() {
		if c.Email.User == "" || c.Email.Pass == "" {
			errors = append(errors, "EMAIL_USER and EMAIL_PASS are required in production")
		}
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Max <= 0 {
			errors = append(errors, "RATE_LIMIT_CONTACT_MAX must be positive")
		}
		if c.RateLimit.Duration <= 0 {
			errors = append(errors, "RATE_LIMIT_CONTACT_DURATION must be positive")
		}
	}

	validStores := []string{StoreMemory, StoreRedis}
	if !contains(validStores, c.RateLimit.Store) {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_STORE must be one of: %s", strings.Join(validStores, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
