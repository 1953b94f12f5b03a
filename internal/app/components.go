package app

import "go.trai.ch/pkgsweep/internal/core/ports"

// Components holds the application components that the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
