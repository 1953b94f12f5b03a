package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/pkgsweep/internal/adapters/watcher" //nolint:depguard // Debouncer is shared infrastructure
	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	SweepOptions
	// Debounce is the quiet period after the last change before sweeping.
	Debounce time.Duration
}

// Watch sweeps the target directory once and then again after every burst
// of changes, until ctx is cancelled. Sweeps never overlap.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.configure(opts.SweepOptions)
	if err != nil {
		return err
	}
	if cfg.ConfirmLevel != domain.ConfirmNothing {
		return errors.Join(domain.ErrInvalidConfig,
			zerr.With(domain.ErrWatchRequiresNoConfirmation, "confirm", cfg.ConfirmLevel.String()))
	}

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	if _, _, err := a.sweep(ctx, cfg); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if err := a.watcher.Start(gctx, cfg.TargetDirectory); err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to stop watcher: %v", err))
		}
	}()

	a.logger.Info(fmt.Sprintf("watching `%s` for changes", cfg.TargetDirectory))

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		a.logger.Debug(fmt.Sprintf("%d paths changed", len(paths)))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	target := filepath.Clean(cfg.TargetDirectory)
	g.Go(func() error {
		defer debouncer.Stop()
		for event := range a.watcher.Events() {
			switch {
			case targetGone(event, target):
				return zerr.With(zerr.Wrap(domain.ErrNotADirectory, "watched directory was removed"), "path", cfg.TargetDirectory)
			// Removals never make another file superseded, and our own
			// deletions would otherwise trigger a sweep.
			case event.Operation == ports.OpCreate, event.Operation == ports.OpWrite:
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
				if err := a.resweep(gctx, cfg); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

// resweep runs a sweep from the watch loop. Failures that leave the target
// usable are logged and watching continues.
func (a *App) resweep(ctx context.Context, cfg domain.Config) error {
	_, _, err := a.sweep(ctx, cfg)
	switch {
	case err == nil, ctx.Err() != nil:
		return nil
	case errors.Is(err, domain.ErrNotADirectory):
		return err
	default:
		a.logger.Error(err)
		return nil
	}
}

// targetGone reports whether event removed or renamed the watched directory itself.
func targetGone(event ports.WatchEvent, target string) bool {
	if event.Operation != ports.OpRemove && event.Operation != ports.OpRename {
		return false
	}
	return filepath.Clean(event.Path) == target
}
