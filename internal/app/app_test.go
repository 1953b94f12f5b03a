package app_test

import (
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/pkgsweep/internal/app"
	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports/mocks"
	"go.trai.ch/pkgsweep/internal/engine/resolution"
	"go.uber.org/mock/gomock"
)

const testDir = "/var/cache/pacman/pkg"

type harness struct {
	loader     *mocks.MockConfigLoader
	scanner    *mocks.MockScanner
	remover    *mocks.MockRemover
	prompter   *mocks.MockPrompter
	reporter   *mocks.MockReporter
	watcher    *mocks.MockWatcher
	logger     *mocks.MockLogger
	timestamps *mocks.MockTimestamper
	app        *app.App

	outcome *domain.Outcome
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:     mocks.NewMockConfigLoader(ctrl),
		scanner:    mocks.NewMockScanner(ctrl),
		remover:    mocks.NewMockRemover(ctrl),
		prompter:   mocks.NewMockPrompter(ctrl),
		reporter:   mocks.NewMockReporter(ctrl),
		watcher:    mocks.NewMockWatcher(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		timestamps: mocks.NewMockTimestamper(ctrl),
	}

	h.logger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	h.logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.timestamps.EXPECT().CreatedAt(gomock.Any()).
		Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), nil).AnyTimes()

	h.app = app.New(
		h.loader,
		h.scanner,
		h.remover,
		h.prompter,
		h.reporter,
		h.watcher,
		h.logger,
		resolution.NewEngine(h.logger),
		resolution.NewAmbiguityResolver(h.prompter, h.timestamps, h.logger),
	).WithWorkingDirectory(func() (string, error) { return testDir, nil })

	return h
}

func (h *harness) expectConfig(cfg domain.Config) {
	h.loader.EXPECT().Load("").Return(cfg, nil)
}

func (h *harness) expectScan(names ...string) {
	h.scanner.EXPECT().Scan(testDir).Return(entries(names...), nil)
}

// expectOutcome captures the outcome passed to the reporter.
func (h *harness) expectOutcome() {
	h.reporter.EXPECT().Outcome(gomock.Any()).Do(func(o *domain.Outcome) {
		h.outcome = o
	})
}

func entries(names ...string) []domain.Entry {
	result := make([]domain.Entry, len(names))
	for i, name := range names {
		result[i] = domain.Entry{Path: pkg(name), Regular: true}
	}
	return result
}

func pkg(name string) string {
	return filepath.Join(testDir, name)
}

func config(level domain.ConfirmLevel, dryRun bool) domain.Config {
	return domain.Config{ConfirmLevel: level, DryRun: dryRun}
}
