// Package report prints sweep results as plain, line-oriented text.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/ui/output"
	"go.trai.ch/pkgsweep/internal/ui/style"
)

// Reporter implements ports.Reporter.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
}

// NewReporter creates a Reporter writing to w. A nil w defaults to os.Stdout.
// Colors are only used when w is a terminal and NO_COLOR is unset.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}

	return &Reporter{
		w:      w,
		output: output.NewWithProfile(w, func() termenv.Profile { return output.ProfileFor(w) }),
	}
}

// Outcome prints the superseded and ignored files with their counts.
func (r *Reporter) Outcome(outcome *domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printSetLocked(outcome.Superseded, "superseded", style.Dash, style.Red)
	r.printSetLocked(outcome.Ignored, "ignored", style.Warning, style.Yellow)
}

func (r *Reporter) printSetLocked(set domain.PathSet, label, icon string, color lipgloss.Color) {
	header := fmt.Sprintf("%s %s", files(set.Len()), label)
	if set.Len() == 0 {
		r.printfLocked("%s\n", r.output.String(header).Faint())
		return
	}

	r.printfLocked("%s:\n", r.output.String(header).Bold())
	c := termenv.RGBColor(string(color))
	for path := range set.All() {
		r.printfLocked("  %s %s\n", r.output.String(icon).Foreground(c), path)
	}
}

// Removed reports a single deletion.
func (r *Reporter) Removed(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
	r.printfLocked("%s removed %s\n", check, path)
}

// Summary prints the final tally of a sweep.
func (r *Reporter) Summary(outcome *domain.Outcome, report domain.RemovalReport, dryRun bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ignored := outcome.Ignored.Len()
	if dryRun {
		r.printfLocked("%s dry run: %s would be removed, %d ignored\n",
			r.output.String(style.Tilde).Foreground(termenv.RGBColor(string(style.Slate))),
			files(outcome.Superseded.Len()), ignored)
		return
	}

	r.printfLocked("%s %s removed, %d skipped, %d ignored\n",
		r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))),
		files(len(report.Removed)), len(report.Skipped), ignored)
}

func (r *Reporter) printfLocked(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func files(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
