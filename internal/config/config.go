package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/ui"
)

// Config holds all application configuration
type Config struct {
	Port          string
	GinMode       string
	LogLevel      slog.Level
	ContentPath   string
	ProfileImage  string
	AnalyticsDSN  string
	TypingDelay   time.Duration
	CORSOrigins   []string
	AdminUsername string
	AdminPassword string
	SMTP          contact.SMTPConfig
}

// Defaults registers the fallback value of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("content_path", "")
	v.SetDefault("profile_image", "images/profile.jpg")
	v.SetDefault("analytics_dsn", analytics.DefaultDSN)
	v.SetDefault("typing_delay", ui.DefaultTypingDelay)
	v.SetDefault("cors_origins", "")
	v.SetDefault("admin_username", "")
	v.SetDefault("admin_password", "")
	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", "587")
	v.SetDefault("smtp_user", "")
	v.SetDefault("smtp_pass", "")
	v.SetDefault("to_email", "")
}

// New returns a viper instance reading the environment (PORT, SMTP_HOST, ...)
// and, when configFile is set, a YAML/JSON/TOML config file.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	Defaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// Load reads the configuration out of v.
func Load(v *viper.Viper) (*Config, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}

	delay := v.GetDuration("typing_delay")
	if delay <= 0 {
		return nil, errors.New("typing_delay must be positive")
	}

	cfg := &Config{
		Port:          strings.TrimPrefix(v.GetString("port"), ":"),
		GinMode:       v.GetString("gin_mode"),
		LogLevel:      level,
		ContentPath:   v.GetString("content_path"),
		ProfileImage:  v.GetString("profile_image"),
		AnalyticsDSN:  v.GetString("analytics_dsn"),
		TypingDelay:   delay,
		CORSOrigins:   splitList(v.GetString("cors_origins")),
		AdminUsername: v.GetString("admin_username"),
		AdminPassword: v.GetString("admin_password"),
		SMTP: contact.SMTPConfig{
			Host:     v.GetString("smtp_host"),
			Port:     v.GetString("smtp_port"),
			User:     v.GetString("smtp_user"),
			Password: v.GetString("smtp_pass"),
			To:       v.GetString("to_email"),
		},
	}
	return cfg, nil
}

// AdminEnabled reports whether admin credentials were configured. Without
// them the admin routes are not mounted.
func (c *Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
