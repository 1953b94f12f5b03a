package resolution

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports"
	"go.trai.ch/pkgsweep/internal/ui/output"
	"go.trai.ch/pkgsweep/internal/ui/style"
	"go.trai.ch/zerr"
)

// menuColumnGap is the number of spaces between menu columns.
const menuColumnGap = 2

// AmbiguityResolver turns an ambiguity group into kept, superseded and
// ignored files, asking the operator when the confirm level requires it.
type AmbiguityResolver struct {
	prompter   ports.Prompter
	timestamps ports.Timestamper
	logger     ports.Logger
	renderer   *lipgloss.Renderer
}

// NewAmbiguityResolver creates a new AmbiguityResolver. The menu is styled
// for stderr, where the prompter writes.
func NewAmbiguityResolver(prompter ports.Prompter, timestamps ports.Timestamper, logger ports.Logger) *AmbiguityResolver {
	renderer := lipgloss.NewRenderer(os.Stderr)
	renderer.SetColorProfile(output.ProfileFor(os.Stderr))

	return &AmbiguityResolver{
		prompter:   prompter,
		timestamps: timestamps,
		logger:     logger,
		renderer:   renderer,
	}
}

// WithRenderer overrides the renderer used to style the menu.
func (r *AmbiguityResolver) WithRenderer(renderer *lipgloss.Renderer) *AmbiguityResolver {
	r.renderer = renderer
	return r
}

// Resolve splits group according to level. Below domain.ConfirmAmbiguities
// every candidate is kept.
func (r *AmbiguityResolver) Resolve(
	ctx context.Context,
	group *domain.PackageGroup,
	level domain.ConfirmLevel,
) (domain.GroupResolution, error) {
	candidates := group.Candidates()

	if !level.PromptsForAmbiguities() {
		r.logger.Info(fmt.Sprintf("keeping all %d versions of `%s`", len(candidates), group.Name()))
		return Apply(candidates, domain.Decision{Kind: domain.DecisionKeepAll}), nil
	}

	prompt := r.menu(group.Name(), candidates)
	for {
		line, err := r.prompter.Ask(ctx, prompt)
		if err != nil {
			return domain.GroupResolution{}, zerr.With(zerr.Wrap(err, domain.ErrPromptFailed.Error()), "package", group.Name())
		}

		decision := domain.ParseDecision(line, len(candidates))
		if decision.Kind == domain.DecisionReprompt {
			r.logger.Warn(fmt.Sprintf("invalid choice %q, expected a number between 0 and %d", line, len(candidates)-1))
			continue
		}
		return Apply(candidates, decision), nil
	}
}

// Apply maps a decision onto the candidates of a group.
func Apply(candidates []domain.PackageFile, decision domain.Decision) domain.GroupResolution {
	var res domain.GroupResolution
	for i, c := range candidates {
		switch decision.Kind {
		case domain.DecisionKeep:
			if i == decision.Index {
				res.Kept = append(res.Kept, c.Path)
			} else {
				res.Superseded = append(res.Superseded, c.Path)
			}
		case domain.DecisionIgnoreAll:
			res.Ignored = append(res.Ignored, c.Path)
		default:
			res.Kept = append(res.Kept, c.Path)
		}
	}
	return res
}

// menu renders the candidates of a group with their creation times, one
// aligned row per candidate.
func (r *AmbiguityResolver) menu(name string, candidates []domain.PackageFile) string {
	columns := []lipgloss.Style{
		r.renderer.NewStyle().Foreground(style.Iris).Bold(true),
		r.renderer.NewStyle().Foreground(style.Green),
		r.renderer.NewStyle(),
		r.renderer.NewStyle().Foreground(style.Slate),
	}

	rows := make([][]string, len(candidates))
	widths := make([]int, len(columns))
	for i, c := range candidates {
		rows[i] = []string{fmt.Sprintf("[%d]", i), c.Version, c.FileName(), r.created(c.Path)}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Versions of `%s` cannot be ordered:\n", name)
	for _, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cellStyle := columns[j]
			if j < len(row)-1 {
				cellStyle = cellStyle.Width(widths[j] + menuColumnGap)
			}
			cells[j] = cellStyle.Render(cell)
		}
		b.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}

	fmt.Fprintf(&b, "Keep which one? [0-%d, empty = 0, %s = ignore all]: ", len(candidates)-1, domain.IgnoreAllAnswers[0])
	return b.String()
}

func (r *AmbiguityResolver) created(path string) string {
	t, err := r.timestamps.CreatedAt(path)
	if err != nil {
		r.logger.Debug(fmt.Sprintf("no creation time for `%s`: %v", path, err))
		return "created: unknown"
	}
	return "created: " + t.Local().Format(time.DateTime)
}
