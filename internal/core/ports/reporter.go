package ports

import "go.trai.ch/pkgsweep/internal/core/domain"

// Reporter presents the results of a sweep.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Outcome prints the superseded and ignored files.
	Outcome(outcome *domain.Outcome)
	// Removed reports a single deletion.
	Removed(path string)
	// Summary prints the final tally of a sweep.
	Summary(outcome *domain.Outcome, report domain.RemovalReport, dryRun bool)
}
