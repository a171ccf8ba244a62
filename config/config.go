// Package config builds the run configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultSocialBeeURL      = "https://api-socialbee.io/v1/posts"
	DefaultSocialBeeCategory = "Blog"
)

// Config is constructed once at startup and passed into every component.
type Config struct {
	OpenAI    OpenAIConfig
	WordPress WordPressConfig
	SocialBee SocialBeeConfig
	Article   ArticleConfig
	Log       LogConfig

	// HTTPTimeout bounds each outbound REST call. Zero means no timeout.
	HTTPTimeout time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type WordPressConfig struct {
	URL         string
	Username    string
	AppPassword string
	RenderHTML  bool
}

// SocialBeeConfig is optional: an empty APIKey disables announcing.
type SocialBeeConfig struct {
	APIKey   string
	URL      string
	Category string
}

type ArticleConfig struct {
	// RequireContent turns an empty completion into an error instead of
	// publishing the placeholder body.
	RequireContent bool
}

type LogConfig struct {
	Level  string
	Format string
}

// keys maps each environment variable to the viper key it is bound to.
var keys = map[string]string{
	"openai.api_key":          "OPENAI_API_KEY",
	"openai.model":            "OPENAI_MODEL",
	"openai.base_url":         "OPENAI_BASE_URL",
	"wordpress.url":           "WORDPRESS_URL",
	"wordpress.username":      "WORDPRESS_USERNAME",
	"wordpress.app_password":  "WORDPRESS_APP_PASSWORD",
	"wordpress.render_html":   "WORDPRESS_RENDER_HTML",
	"socialbee.api_key":       "SOCIALBEE_API_KEY",
	"socialbee.url":           "SOCIALBEE_URL",
	"socialbee.category":      "SOCIALBEE_CATEGORY",
	"article.require_content": "ARTICLE_REQUIRE_CONTENT",
	"http.timeout":            "HTTP_TIMEOUT",
	"log.level":               "LOG_LEVEL",
	"log.format":              "LOG_FORMAT",
}

// Load reads envFile into the process environment (variables already set win;
// a missing file is fine) and returns the resulting Config.
func Load(envFile string) (Config, error) {
	if envFile = strings.TrimSpace(envFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, env := range keys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	setDefaults(v)

	timeout, err := parseDuration(v.GetString("http.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT: %w", err)
	}

	cfg := Config{
		OpenAI: OpenAIConfig{
			APIKey:  strings.TrimSpace(v.GetString("openai.api_key")),
			Model:   strings.TrimSpace(v.GetString("openai.model")),
			BaseURL: strings.TrimSpace(v.GetString("openai.base_url")),
		},
		WordPress: WordPressConfig{
			URL:         strings.TrimRight(strings.TrimSpace(v.GetString("wordpress.url")), "/"),
			Username:    strings.TrimSpace(v.GetString("wordpress.username")),
			AppPassword: v.GetString("wordpress.app_password"),
			RenderHTML:  v.GetBool("wordpress.render_html"),
		},
		SocialBee: SocialBeeConfig{
			APIKey:   strings.TrimSpace(v.GetString("socialbee.api_key")),
			URL:      strings.TrimSpace(v.GetString("socialbee.url")),
			Category: strings.TrimSpace(v.GetString("socialbee.category")),
		},
		Article: ArticleConfig{
			RequireContent: v.GetBool("article.require_content"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
		},
		HTTPTimeout: timeout,
	}

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("openai.model", DefaultOpenAIModel)
	v.SetDefault("wordpress.render_html", false)
	v.SetDefault("socialbee.url", DefaultSocialBeeURL)
	v.SetDefault("socialbee.category", DefaultSocialBeeCategory)
	v.SetDefault("article.require_content", false)
	v.SetDefault("http.timeout", "0")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// parseDuration accepts Go durations ("30s") or a bare number of seconds.
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		secs, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return 0, fmt.Errorf("invalid duration %q", raw)
		}
		d = time.Duration(secs) * time.Second
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative, got %s", raw)
	}
	return d, nil
}

func validate(cfg Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}
	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[cfg.Log.Format] {
		return fmt.Errorf("invalid logging format: %s (must be console or json)", cfg.Log.Format)
	}
	return nil
}
