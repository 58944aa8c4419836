// Package config loads runtime settings from a .env file, IJIN_* environment
// variables and an optional config file, in increasing precedence of
// environment over file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable, e.g. IJIN_HTTP_ADDR.
const EnvPrefix = "IJIN"

// Config holds the settings of every ijin entry point.
type Config struct {
	HTTP  HTTPConfig
	Log   LogConfig
	Cache CacheConfig
	Quiz  QuizConfig
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	Addr  string
	Debug bool
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig bounds the final report cache. Size 0 disables it.
type CacheConfig struct {
	Size int
}

// QuizConfig configures sessions.
type QuizConfig struct {
	TotalQuestions int
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		HTTP:  HTTPConfig{Addr: ":8080"},
		Log:   LogConfig{Level: "info", Format: "text"},
		Cache: CacheConfig{Size: 256},
		Quiz:  QuizConfig{TotalQuestions: 15},
	}
}

// Load reads .env from the working directory if present, then resolves
// every key from the environment, the config file at path (optional,
// any format viper reads) and the defaults. Callers apply their own
// overrides and then call Validate.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:  v.GetString("http.addr"),
			Debug: v.GetBool("http.debug"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Cache: CacheConfig{Size: v.GetInt("cache.size")},
		Quiz:  QuizConfig{TotalQuestions: v.GetInt("quiz.total_questions")},
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	d := Defaults()
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.debug", d.HTTP.Debug)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("cache.size", d.Cache.Size)
	v.SetDefault("quiz.total_questions", d.Quiz.TotalQuestions)
	return v
}

// Validate rejects settings no entry point can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr must not be empty"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size))
	}
	if c.Quiz.TotalQuestions <= 0 {
		errs = append(errs, fmt.Errorf("quiz.total_questions must be positive, got %d", c.Quiz.TotalQuestions))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
