package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/engine/resolution"
	"go.trai.ch/zerr"
)

// Sweep runs one sweep: it classifies the target directory, reports the
// result and removes superseded files as the confirm level allows.
func (a *App) Sweep(ctx context.Context, opts SweepOptions) error {
	cfg, err := a.configure(opts)
	if err != nil {
		return err
	}
	_, _, err = a.sweep(ctx, cfg)
	return err
}

func (a *App) sweep(ctx context.Context, cfg domain.Config) (*domain.Outcome, domain.RemovalReport, error) {
	outcome, err := a.Classify(ctx, cfg)
	if err != nil {
		return nil, domain.RemovalReport{}, err
	}

	a.reporter.Outcome(outcome)

	report, err := a.remove(ctx, cfg, outcome)
	if err != nil {
		return outcome, report, err
	}

	a.reporter.Summary(outcome, report, cfg.DryRun)
	return outcome, report, nil
}

// Classify scans the target directory and settles the fate of every file.
// It prompts for ambiguity decisions when the confirm level asks for them
// but never deletes anything.
func (a *App) Classify(ctx context.Context, cfg domain.Config) (*domain.Outcome, error) {
	entries, err := a.scanner.Scan(cfg.TargetDirectory)
	if err != nil {
		if errors.Is(err, domain.ErrNotADirectory) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrScanFailed, err)
	}

	outcome := domain.NewOutcome()
	files, signatures := a.partition(entries, outcome)

	acc := a.engine.Fold(files)
	for path := range acc.Superseded().All() {
		outcome.Superseded.Add(path)
	}

	kept, ambiguous := acc.Settle()
	for _, path := range kept {
		outcome.Kept.Add(path)
	}

	for _, group := range ambiguous {
		res, err := a.resolver.Resolve(ctx, group, cfg.ConfirmLevel)
		if err != nil {
			return nil, err
		}
		outcome.Apply(res)
	}

	resolution.LinkSignatures(signatures, outcome)
	return outcome, nil
}

// partition splits regular files into parsed package files and signature
// files. Files that cannot be parsed are ignored.
func (a *App) partition(entries []domain.Entry, outcome *domain.Outcome) ([]domain.PackageFile, []string) {
	var files []domain.PackageFile
	var signatures []string

	for _, e := range entries {
		if !e.Regular {
			a.logger.Debug(fmt.Sprintf("skipping `%s`: not a regular file", e.Path))
			continue
		}
		if domain.IsSignature(e.Path) {
			signatures = append(signatures, e.Path)
			continue
		}

		file, err := domain.ParsePackageFile(e.Path)
		if err != nil {
			a.logger.Debug(fmt.Sprintf("ignoring `%s`: %v", e.Path, err))
			outcome.Ignored.Add(e.Path)
			continue
		}
		files = append(files, file)
	}
	return files, signatures
}

// remove deletes the superseded files of outcome in path order. It stops at
// the first failure; the returned report lists what was removed before it.
func (a *App) remove(ctx context.Context, cfg domain.Config, outcome *domain.Outcome) (domain.RemovalReport, error) {
	var report domain.RemovalReport

	targets := outcome.Superseded.Sorted()
	if cfg.DryRun || len(targets) == 0 {
		return report, nil
	}

	level := cfg.ConfirmLevel
	if level.PromptsForRemoval() && !level.PromptsPerFile() {
		yes, err := a.confirm(ctx, fmt.Sprintf("Remove %s? [Y/n]: ", files(len(targets))))
		if err != nil {
			return report, err
		}
		if !yes {
			a.logger.Info("removal declined, nothing was deleted")
			report.Skipped = targets
			return report, nil
		}
	}

	declined := domain.NewPathSet()
	for _, path := range targets {
		if level.PromptsPerFile() {
			yes, err := a.confirmFile(ctx, path, outcome, declined)
			if err != nil {
				return report, err
			}
			if !yes {
				declined.Add(path)
				report.Skipped = append(report.Skipped, path)
				continue
			}
		}

		if err := a.remover.Remove(path); err != nil {
			err = zerr.Wrap(err, fmt.Sprintf("removal aborted after %d of %d files", len(report.Removed), len(targets)))
			return report, errors.Join(domain.ErrRemovalFailed, zerr.With(err, "removed", report.Removed))
		}
		report.Removed = append(report.Removed, path)
		a.reporter.Removed(path)
	}

	return report, nil
}

// confirmFile asks about a single file. A signature follows the answer given
// for its data file when that file was also up for removal.
func (a *App) confirmFile(ctx context.Context, path string, outcome *domain.Outcome, declined domain.PathSet) (bool, error) {
	if domain.IsSignature(path) {
		signed := domain.SignedPath(path)
		if outcome.Superseded.Has(signed) {
			return !declined.Has(signed), nil
		}
	}
	return a.confirm(ctx, fmt.Sprintf("Remove `%s`? [Y/n]: ", path))
}

// confirm asks a yes/no question until the answer is understood.
func (a *App) confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := a.prompter.Ask(ctx, prompt)
		if err != nil {
			return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
		}

		yes, ok := domain.ParseConfirmation(line)
		if ok {
			return yes, nil
		}
		a.logger.Warn(fmt.Sprintf("invalid answer %q, expected y or n", line))
	}
}

func files(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
