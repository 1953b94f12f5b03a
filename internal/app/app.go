// Package app implements the application layer for pkgsweep.
package app

import (
	"errors"
	"fmt"
	"os"

	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports"
	"go.trai.ch/pkgsweep/internal/engine/resolution"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.Scanner
	remover      ports.Remover
	prompter     ports.Prompter
	reporter     ports.Reporter
	watcher      ports.Watcher
	logger       ports.Logger
	engine       *resolution.Engine
	resolver     *resolution.AmbiguityResolver
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.Scanner,
	remover ports.Remover,
	prompter ports.Prompter,
	reporter ports.Reporter,
	watcher ports.Watcher,
	log ports.Logger,
	engine *resolution.Engine,
	resolver *resolution.AmbiguityResolver,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		remover:      remover,
		prompter:     prompter,
		reporter:     reporter,
		watcher:      watcher,
		logger:       log,
		engine:       engine,
		resolver:     resolver,
		getwd:        os.Getwd,
	}
}

// WithWorkingDirectory overrides how the current working directory is found.
// This is primarily used for testing.
func (a *App) WithWorkingDirectory(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}

// SweepOptions configuration for the Sweep method.
type SweepOptions struct {
	// ConfigPath is an explicit config file. Empty means the default location.
	ConfigPath string
	// Directory overrides the configured target directory.
	Directory string
	// DryRun forces a dry run when set.
	DryRun bool
	// ConfirmLevel overrides the configured confirm level when not empty.
	ConfirmLevel string
	Verbose      bool
	JSON         bool
}

// configure applies logging options and merges the config file with opts.
func (a *App) configure(opts SweepOptions) (domain.Config, error) {
	a.logger.SetVerbose(opts.Verbose)
	a.logger.SetJSON(opts.JSON)

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Config{}, errors.Join(domain.ErrInvalidConfig, err)
	}

	if opts.ConfirmLevel != "" {
		level, err := domain.ParseConfirmLevel(opts.ConfirmLevel)
		if err != nil {
			return domain.Config{}, errors.Join(domain.ErrInvalidConfig, err)
		}
		cfg.ConfirmLevel = level
	}

	cfg.DryRun = cfg.DryRun || opts.DryRun

	if opts.Directory != "" {
		cfg.TargetDirectory = opts.Directory
	}
	if cfg.TargetDirectory == "" {
		wd, err := a.getwd()
		if err != nil {
			return domain.Config{}, zerr.Wrap(err, "failed to determine working directory")
		}
		a.logger.Info(fmt.Sprintf("no directory provided, using current working directory `%s`", wd))
		cfg.TargetDirectory = wd
	}

	a.logger.Debug(fmt.Sprintf("sweeping `%s` (confirm: %s, dry run: %t)",
		cfg.TargetDirectory, cfg.ConfirmLevel, cfg.DryRun))
	return cfg, nil
}
