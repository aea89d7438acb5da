package main

import (
	"embed"
	"log"

	"jellyamp/internal/app"
	"jellyamp/internal/config"
	"jellyamp/internal/infrastructure/logging"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewLogger(cfg.LogLevel())
	minWidth, minHeight := cfg.MinSize()

	// Create an instance of the app structure
	application := app.NewApp(cfg, logger)

	// The window opens at the configured size; Startup adapts it to the
	// display on first run
	err = wails.Run(&options.App{
		Title:            cfg.Window.Title,
		Width:            int(cfg.Window.Width),
		Height:           int(cfg.Window.Height),
		MinWidth:         minWidth,
		MinHeight:        minHeight,
		DisableResize:    false,
		Fullscreen:       false,
		Frameless:        cfg.Window.Frameless,
		StartHidden:      false,
		BackgroundColour: &options.RGBA{R: 16, G: 16, B: 20, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:           logging.NewWailsLoggerAdapter(logger),
		LogLevel:         logging.WailsLogLevel(cfg.LogLevel()),
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Debug: options.Debug{
			OpenInspectorOnStartup: cfg.IsDevelopment(),
		},
		Bind: []interface{}{
			application,
		},
		// Windows platform specific options
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			ZoomFactor:           1.0,
		},
		// Mac platform specific options
		Mac: &mac.Options{
			TitleBar:   mac.TitleBarDefault(),
			Appearance: mac.NSAppearanceNameDarkAqua,
			About: &mac.AboutInfo{
				Title:   cfg.Window.Title,
				Message: "",
			},
		},
	})

	if err != nil {
		logger.Error("Application exited with error", "error", err.Error())
		log.Fatal(err)
	}
}
