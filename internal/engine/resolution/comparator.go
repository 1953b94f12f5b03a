// Package resolution decides which package files are superseded, which are
// kept and which are left to the operator.
package resolution

import (
	"fmt"

	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports"
)

// Comparator orders package files of the same name by version.
type Comparator struct {
	logger ports.Logger
}

// NewComparator creates a Comparator reporting diagnostics to logger.
func NewComparator(logger ports.Logger) *Comparator {
	return &Comparator{logger: logger}
}

// Compare orders a against b. Versions that cannot be ordered compare as
// domain.Equal and a warning naming both versions is logged.
func (c *Comparator) Compare(a, b domain.PackageFile) domain.Ordering {
	ord, ok := domain.CompareVersions(a.Version, b.Version)
	if !ok {
		c.logger.Warn(fmt.Sprintf(
			"package `%s`: versions `%s` and `%s` differ but cannot be ordered",
			a.Name, a.Version, b.Version,
		))
		return domain.Equal
	}

	if ord == domain.Equal {
		c.logger.Debug(fmt.Sprintf(
			"package `%s`: versions `%s` and `%s` are equal",
			a.Name, a.Version, b.Version,
		))
	}
	return ord
}
