package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	AppEnv    string `env:"APP_ENV" envDefault:"production"`
	JWTSecret string `env:"JWT_SECRET"`
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	NotionAPIKey        string `env:"NOTION_API_KEY"`
	NotionMembersDBID   string `env:"NOTION_MEMBERS_DB_ID"`
	NotionSessionsDBID  string `env:"NOTION_SESSIONS_DB_ID"`
	NotionAPIBaseURL    string `env:"NOTION_API_BASE_URL" envDefault:"https://api.notion.com/v1"`
	NotionAPIVersion    string `env:"NOTION_API_VERSION" envDefault:"2022-06-28"`
	AdminPasswordHash   string `env:"ADMIN_PASSWORD_HASH"`
	RenderRevalidateSec int    `env:"RENDER_REVALIDATE_SECONDS" envDefault:"60"`
	RenderCacheSize     int    `env:"RENDER_CACHE_SIZE" envDefault:"256"`
	EnableDocs          bool   `env:"ENABLE_API_DOCS" envDefault:"false"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}
	return Parse(env.Options{})
}

// Parse reads the process environment, or opts.Environment when set.
func Parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("environment variables are invalid: %w", err)
	}
	cfg.AppEnv = normalizeEnv(cfg.AppEnv)
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.RenderCacheSize <= 0 {
		return fmt.Errorf("RENDER_CACHE_SIZE must be positive, got %d", c.RenderCacheSize)
	}
	if c.RenderRevalidateSec < 0 {
		return fmt.Errorf("RENDER_REVALIDATE_SECONDS must not be negative, got %d", c.RenderRevalidateSec)
	}
	return nil
}

// MissingNotionSettings lists the Notion variables that are unset. Startup
// goes on without them; every fetch then fails as not found.
func (c *Config) MissingNotionSettings() []string {
	var missing []string
	if c.NotionAPIKey == "" {
		missing = append(missing, "NOTION_API_KEY")
	}
	if c.NotionMembersDBID == "" {
		missing = append(missing, "NOTION_MEMBERS_DB_ID")
	}
	if c.NotionSessionsDBID == "" {
		missing = append(missing, "NOTION_SESSIONS_DB_ID")
	}
	return missing
}

func (c *Config) RenderRevalidate() time.Duration {
	return time.Duration(c.RenderRevalidateSec) * time.Second
}

func (c *Config) MemberURL(memberID string) string {
	return c.BaseURL + "/members/" + memberID
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.IsDevelopment()
}
