package config

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/quranpak-player/internal/catalog"
	"github.com/ytget/quranpak-player/internal/logger"
	"github.com/ytget/quranpak-player/internal/ticker"
)

// Config holds all configuration settings.
type Config struct {
	// CatalogPath is the chapter list to load at startup.
	CatalogPath string `mapstructure:"catalog_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// Language is the UI language code.
	Language string `mapstructure:"language"`
	// TickerInterval is how often the credit label changes colour (e.g. "500ms").
	TickerInterval string `mapstructure:"ticker_interval"`
	// Palette lists the credit label colours as #rrggbb.
	Palette []string `mapstructure:"palette"`
	// WindowWidth is the initial window width.
	WindowWidth float32 `mapstructure:"window_width"`
	// WindowHeight is the initial window height.
	WindowHeight float32 `mapstructure:"window_height"`
	// HTTPTimeout bounds the wait for an audio server to start answering.
	HTTPTimeout string `mapstructure:"http_timeout"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedTickerInterval is the parsed ticker interval.
	ParsedTickerInterval time.Duration
	// ParsedHTTPTimeout is the parsed HTTP timeout.
	ParsedHTTPTimeout time.Duration
	// ParsedPalette is the parsed colour palette.
	ParsedPalette []color.Color
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = "quranpak.yaml"

	// DefaultLanguage is used when no language is configured.
	DefaultLanguage = "en"

	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"

	// DefaultHTTPTimeout is how long to wait for an audio server's response headers.
	DefaultHTTPTimeout = 15 * time.Second

	// DefaultWindowWidth and DefaultWindowHeight size the main window.
	DefaultWindowWidth  = 600
	DefaultWindowHeight = 550
)

// Static error definitions for better error handling.
var (
	// ErrEmptyCatalogPath indicates that catalog_path is blank.
	ErrEmptyCatalogPath = errors.New("catalog_path cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLanguage indicates that the language has no translations.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrInvalidTickerInterval indicates that ticker_interval is not a positive duration.
	ErrInvalidTickerInterval = errors.New("ticker_interval must be positive")
	// ErrInvalidHTTPTimeout indicates that http_timeout is not a positive duration.
	ErrInvalidHTTPTimeout = errors.New("http_timeout must be positive")
	// ErrInvalidPalette indicates that palette is empty or has a bad entry.
	ErrInvalidPalette = errors.New("invalid palette")
	// ErrInvalidWindowSize indicates a non-positive window dimension.
	ErrInvalidWindowSize = errors.New("window size must be positive")
)

// SupportedLanguages lists the language codes the UI is translated into.
func SupportedLanguages() []string {
	return []string{"en", "ar", "ur"}
}

// Default returns a validated configuration built from defaults only.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}

	if err = Validate(cfg); err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}

	return cfg
}

// Load reads configFilename over the defaults. A missing file yields the defaults.
// The result is not validated.
func Load(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	v := newViper()

	if _, err := os.Stat(configFilename); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}

		logger.Debugf(context.Background(), "config file %s not found, using defaults", configFilename)
	} else {
		v.SetConfigFile(configFilename)

		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	return decode(v)
}

// Validate checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Sequential checks.
func Validate(cfg *Config) error {
	var err error

	cfg.CatalogPath = strings.TrimSpace(cfg.CatalogPath)
	if cfg.CatalogPath == "" {
		return ErrEmptyCatalogPath
	}

	level, ok := logger.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = level

	cfg.Language = strings.ToLower(strings.TrimSpace(cfg.Language))
	if !slices.Contains(SupportedLanguages(), cfg.Language) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, cfg.Language)
	}

	cfg.ParsedTickerInterval, err = time.ParseDuration(cfg.TickerInterval)
	if err != nil {
		return fmt.Errorf("failed to parse ticker_interval: %w", err)
	}

	if cfg.ParsedTickerInterval <= 0 {
		return ErrInvalidTickerInterval
	}

	cfg.ParsedHTTPTimeout, err = time.ParseDuration(cfg.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse http_timeout: %w", err)
	}

	if cfg.ParsedHTTPTimeout <= 0 {
		return ErrInvalidHTTPTimeout
	}

	if len(cfg.Palette) == 0 {
		return fmt.Errorf("%w: no colours", ErrInvalidPalette)
	}

	cfg.ParsedPalette, err = ticker.ParsePalette(cfg.Palette)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}

	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return ErrInvalidWindowSize
	}

	return nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("catalog_path", catalog.DefaultFilename)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("ticker_interval", ticker.DefaultInterval.String())
	v.SetDefault("palette", ticker.DefaultPalette())
	v.SetDefault("window_width", DefaultWindowWidth)
	v.SetDefault("window_height", DefaultWindowHeight)
	v.SetDefault("http_timeout", DefaultHTTPTimeout.String())

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
