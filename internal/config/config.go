package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServerAddr  string `env:"SERVER_ADDR" envDefault:":8080"`
	SiteURL     string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	CalendlyURL string `env:"CALENDLY_URL"`

	FrontendOrigins []string `env:"FRONTEND_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB"`

	RedisURL        string `env:"REDIS_URL"`
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds int    `env:"CACHE_TTL_SECONDS" envDefault:"300"`

	RateLimitContact   int `env:"RATE_LIMIT_CONTACT" envDefault:"5"`
	RateLimitWindowSec int `env:"RATE_LIMIT_WINDOW_SEC" envDefault:"60"`

	AdminAPIKey       string `env:"ADMIN_API_KEY"`
	AdminUser         string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `env:"JWT_SECRET"`
	AccessTTLMinutes  int    `env:"ACCESS_TTL_MINUTES" envDefault:"15"`
	RefreshTTLMinutes int    `env:"REFRESH_TTL_MINUTES" envDefault:"43200"`
	CookieSecure      bool   `env:"COOKIE_SECURE" envDefault:"false"`
	BcryptCost        int    `env:"BCRYPT_COST" envDefault:"12"`

	BrevoAPIKey        string `env:"BREVO_API_KEY"`
	BrevoSenderEmail   string `env:"BREVO_SENDER_EMAIL"`
	BrevoSenderName    string `env:"BREVO_SENDER_NAME"`
	BrevoSandbox       bool   `env:"BREVO_SANDBOX" envDefault:"false"`
	ContactNotifyEmail string `env:"CONTACT_NOTIFY_EMAIL"`

	PhoneDefaultRegion    string `env:"PHONE_DEFAULT_REGION" envDefault:"US"`
	ContactSuccessClearMs int    `env:"CONTACT_SUCCESS_CLEAR_MS" envDefault:"5000"`

	TimezoneName string `env:"TZ" envDefault:"America/New_York"`

	location *time.Location
}

func Load() (*Config, error) {
	loadDotEnv(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.TimezoneName, err)
	}
	cfg.location = loc

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST %d outside %d..%d", cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.MongoURI != "" && cfg.MongoDB == "" {
		cfg.MongoDB = mongoDBFromURI(cfg.MongoURI)
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "flowworks"
	}
	cfg.PhoneDefaultRegion = strings.ToUpper(strings.TrimSpace(cfg.PhoneDefaultRegion))
	cfg.FrontendOrigins = trimAll(cfg.FrontendOrigins)

	return &cfg, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Location is the timezone used for stored timestamps.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) MongoEnabled() bool {
	return c.MongoURI != ""
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; only the first one is the db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), `"`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
}
