package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the dashboard backend.
type Config struct {
	Server    ServerConfig
	Notion    NotionConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Metrics   MetricsConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Addr            string
	Env             string
	ShutdownTimeout time.Duration
	StaticDir       string
}

// NotionConfig configures the hosted database the service proxies.
type NotionConfig struct {
	Token   string
	BaseURL string
	Version string
	Timeout time.Duration

	BrandsDB       string
	InfluencersDB  string
	CampaignsDB    string
	DailyReportsDB string
	MentionsDB     string
}

// Enabled reports whether a token is set. Without one the service runs
// against an in-memory store.
func (n NotionConfig) Enabled() bool {
	return n.Token != ""
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address is set.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type RateLimitConfig struct {
	Enabled    bool
	RPS        float64
	Burst      int
	PerIPRPS   float64
	PerIPBurst int
	// Window is the fixed window used by the Redis-backed limiter.
	Window time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":"+getEnv("PORT", "3000")),
			Env:             getEnv("APP_ENV", "development"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
			StaticDir:       getEnv("STATIC_DIR", "public"),
		},
		Notion: NotionConfig{
			Token:   getEnv("NOTION_TOKEN", ""),
			BaseURL: strings.TrimRight(getEnv("NOTION_BASE_URL", "https://api.notion.com/v1"), "/"),
			Version: getEnv("NOTION_VERSION", "2022-06-28"),
			Timeout: getDurationEnv("NOTION_TIMEOUT", 30*time.Second),

			BrandsDB:       getEnv("NOTION_BRANDS_DB", "2b708b1c-348f-812b-a282-e385a1b2a5b9"),
			InfluencersDB:  getEnv("NOTION_INFLUENCERS_DB", "94d490dd-8b65-4351-a6eb-eb32a965134f"),
			CampaignsDB:    getEnv("NOTION_CAMPAIGNS_DB", "2b708b1c-348f-8141-999f-f77b91095543"),
			DailyReportsDB: getEnv("NOTION_DAILY_REPORTS_DB", ""),
			MentionsDB:     getEnv("NOTION_MENTIONS_DB", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Enabled:    getBoolEnv("RATE_LIMIT_ENABLED", true),
			RPS:        getFloatEnv("RATE_LIMIT_RPS", 50),
			Burst:      getIntEnv("RATE_LIMIT_BURST", 100),
			PerIPRPS:   getFloatEnv("RATE_LIMIT_PER_IP_RPS", 10),
			PerIPBurst: getIntEnv("RATE_LIMIT_PER_IP_BURST", 20),
			Window:     getDurationEnv("RATE_LIMIT_WINDOW", time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.IsProduction() && !c.Notion.Enabled() {
		return fmt.Errorf("NOTION_TOKEN is required in production")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate limit rps and burst must be positive")
		}
		if c.RateLimit.PerIPRPS <= 0 || c.RateLimit.PerIPBurst <= 0 {
			return fmt.Errorf("per-IP rate limit rps and burst must be positive")
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Helper functions for reading environment variables

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getSliceEnv(key string, def []string) []string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				result = append(result, p)
			}
		}
		return result
	}
	return def
}
