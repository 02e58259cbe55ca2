package app

import (
	"io"
	"log/slog"

	"github.com/gridds/bidds/internal/bidds"
	"github.com/gridds/bidds/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *schema.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and a registry
// populated from the given modules. With no modules it registers the bid
// dataset entity types.
func NewApp(outW, errW io.Writer, cfg *Config, modules ...schema.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	reg := schema.NewRegistry()
	if len(modules) == 0 {
		modules = []schema.Module{schema.ModuleFunc(bidds.Register)}
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Entity types registered.", "count", len(reg.Names()), "names", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for
// testing.
func (a *App) Registry() *schema.Registry {
	return a.registry
}
