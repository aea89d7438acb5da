package app

import (
	"context"
	"sync"

	"jellyamp/internal/config"
	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/logging"
	"jellyamp/internal/platform"
	"jellyamp/internal/window"
)

// WindowFactory builds the Window the startup initializer works on
type WindowFactory func() window.Window

// App struct represents the main application
type App struct {
	ctx        context.Context
	config     *config.Config
	logger     logging.Logger
	capability platform.Capability
	detector   geometry.FirstRunDetector
	newWindow  WindowFactory

	geometryOnce sync.Once
	mu           sync.RWMutex
	report       *window.Report
}

// NewApp creates a new App application struct with dependency injection
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	// Read-only from here on
	cfg = cfg.Clone()
	if logger == nil {
		logger = logging.NewLogger(cfg.LogLevel())
	}

	return &App{
		config:     cfg,
		logger:     logger,
		capability: platform.Capabilities(),
		newWindow: func() window.Window {
			return window.NewWailsWindow(platform.NewDisplayProbe())
		},
	}
}

// WithWindowFactory replaces the Window used at startup
func (a *App) WithWindowFactory(factory WindowFactory) *App {
	a.newWindow = factory
	return a
}

// WithDetector sets how the startup sizing tells a first run from a
// restored session. Without one the observed size is compared to the
// configured default.
func (a *App) WithDetector(detector geometry.FirstRunDetector) *App {
	a.detector = detector
	return a
}

// WithCapability overrides the detected platform capability
func (a *App) WithCapability(capability platform.Capability) *App {
	a.capability = capability
	return a
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	a.logger.Info("Application starting",
		"environment", a.config.Environment,
		"development", a.config.IsDevelopment(),
		"platform", a.capability.Platform,
		"form_factor", string(a.capability.FormFactor))

	a.initializeWindowGeometry(ctx)

	a.logger.Info("Application started", "environment", a.config.Environment)
}

// initializeWindowGeometry sizes the main window once per process. Failures
// are logged and never abort startup.
func (a *App) initializeWindowGeometry(ctx context.Context) {
	a.geometryOnce.Do(func() {
		if !a.config.Window.AdaptiveSizing {
			a.logger.Debug("Adaptive window sizing disabled")
			return
		}

		var w window.Window
		if a.newWindow != nil {
			w = a.newWindow()
		}

		report := window.NewInitializer(w, window.Options{
			Spec:       a.config.WindowSpec(),
			Detector:   a.detector,
			Capability: a.capability,
			Logger:     a.logger,
		}).Run(ctx)

		a.mu.Lock()
		a.report = &report
		a.mu.Unlock()
	})
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	a.logger.Debug("Frontend ready")
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("Application shutdown completed")
}

// GeometryReport describes what the startup window sizing did
type GeometryReport struct {
	Ran     bool     `json:"ran"`
	Action  string   `json:"action"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Skipped string   `json:"skipped,omitempty"`
	Failed  []string `json:"failed,omitempty"`
}

// GetWindowGeometry returns the outcome of the startup window sizing for the frontend
func (a *App) GetWindowGeometry() GeometryReport {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.report == nil {
		return GeometryReport{Action: "NOOP"}
	}

	result := GeometryReport{
		Ran:     true,
		Action:  a.report.Action.Kind.String(),
		Width:   a.report.Action.Size.Width,
		Height:  a.report.Action.Size.Height,
		Skipped: a.report.Skipped,
	}
	for _, step := range a.report.Failed() {
		result.Failed = append(result.Failed, step.Op)
	}
	return result
}

// GetLogger returns the application's structured logger
func (a *App) GetLogger() logging.Logger {
	return a.logger
}
