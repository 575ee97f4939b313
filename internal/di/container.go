// Package di wires the player's services together.
package di

import (
	"context"

	"fyne.io/fyne/v2"
	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"github.com/ytget/quranpak-player/internal/config"
	"github.com/ytget/quranpak-player/internal/controller"
	"github.com/ytget/quranpak-player/internal/logger"
	"github.com/ytget/quranpak-player/internal/platform"
	"github.com/ytget/quranpak-player/internal/playback"
)

// configFileKey names the injected config file path.
const configFileKey = "config.file"

// NewContainer creates the container for app. configFile may be empty.
func NewContainer(app fyne.App, configFile string) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, app)
	do.ProvideNamedValue(injector, configFileKey, configFile)

	// Core infrastructure
	do.Provide(injector, ProvideConfig)
	do.Provide(injector, ProvideLogger)

	// Playback and host integration
	do.Provide(injector, ProvideEngine)
	do.Provide(injector, ProvideOpener)

	// State
	do.Provide(injector, ProvideController)

	return injector
}

// ProvideConfig loads and validates the configuration, falling back to
// defaults when the file cannot be used.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	ctx := context.Background()
	filename := do.MustInvokeNamed[string](i, configFileKey)

	cfg, err := config.Load(filename)
	if err != nil {
		logger.Warnf(ctx, "failed to load configuration, using defaults: %v", err)
		return config.Default(), nil
	}

	if err = config.Validate(cfg); err != nil {
		logger.Warnf(ctx, "invalid configuration, using defaults: %v", err)
		return config.Default(), nil
	}

	return cfg, nil
}

// ProvideLogger applies the configured level to the global logger.
func ProvideLogger(i do.Injector) (*zap.SugaredLogger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	logger.SetLevel(cfg.ParsedLogLevel)

	return logger.Logger(), nil
}

// ProvideEngine provides the speaker-backed playback engine.
func ProvideEngine(i do.Injector) (*playback.BeepEngine, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*zap.SugaredLogger](i)

	log.Debugw("playback engine initialized", "http_timeout", cfg.ParsedHTTPTimeout)

	return playback.NewBeepEngine(
		playback.WithHTTPClient(playback.NewHTTPClient(cfg.ParsedHTTPTimeout)),
	), nil
}

// ProvideOpener provides the URL opener used for downloads.
func ProvideOpener(i do.Injector) (platform.URLOpener, error) {
	app := do.MustInvoke[fyne.App](i)

	return platform.NewAppOpener(app, platform.NewCommandOpener()), nil
}

// ProvideController provides the controller with the catalog already loaded.
// A catalog failure is kept in the controller state, not returned.
func ProvideController(i do.Injector) (*controller.Controller, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*zap.SugaredLogger](i)
	engine := do.MustInvoke[*playback.BeepEngine](i)
	opener := do.MustInvoke[platform.URLOpener](i)

	ctx := logger.ToContext(context.Background(), log)
	ctrl := controller.New(engine, opener, controller.WithContext(ctx))

	_ = ctrl.LoadCatalog(cfg.CatalogPath)

	return ctrl, nil
}
