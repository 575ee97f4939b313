package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/samber/do/v2"

	"github.com/ytget/quranpak-player/internal/config"
	"github.com/ytget/quranpak-player/internal/controller"
	"github.com/ytget/quranpak-player/internal/di"
	"github.com/ytget/quranpak-player/internal/logger"
	"github.com/ytget/quranpak-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.quranpak-player"
)

func main() {
	ctx := context.Background()

	logger.Infof(ctx, "Quran Pak Audio Player v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlayerTheme())

	injector := di.NewContainer(myApp, config.DefaultConfigFilename)

	cfg := do.MustInvoke[*config.Config](injector)
	ctrl := do.MustInvoke[*controller.Controller](injector)

	myWindow := myApp.NewWindow(fmt.Sprintf("Quran Pak v%s", version))
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	root := ui.NewRootUI(myWindow, ctrl, cfg)

	tickerCtx, cancel := context.WithCancel(ctx)
	root.StartTicker(tickerCtx)

	myWindow.SetOnClosed(func() {
		cancel()

		if err := ctrl.Close(); err != nil {
			logger.Errorf(ctx, "failed to stop playback: %v", err)
		}
	})

	myWindow.ShowAndRun()

	if err := injector.Shutdown(); err != nil {
		logger.Errorf(ctx, "shutdown error: %v", err)
	}

	logger.Info(ctx, "bye")
}
