package resolution

import (
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports"
)

// Engine folds parsed package files into per-name groups.
type Engine struct {
	cmp    *Comparator
	logger ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(logger ports.Logger) *Engine {
	return &Engine{
		cmp:    NewComparator(logger),
		logger: logger,
	}
}

// Accumulator is the state of one fold: the groups by package name and the
// files already known to be superseded. A path in Superseded never leaves it.
type Accumulator struct {
	groups     map[string]*domain.PackageGroup
	superseded domain.PathSet
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		groups:     make(map[string]*domain.PackageGroup),
		superseded: domain.NewPathSet(),
	}
}

// Group returns the group for name, or nil.
func (a *Accumulator) Group(name string) *domain.PackageGroup {
	return a.groups[name]
}

// Groups returns all groups sorted by package name.
func (a *Accumulator) Groups() []*domain.PackageGroup {
	names := slices.Sorted(maps.Keys(a.groups))
	groups := make([]*domain.PackageGroup, len(names))
	for i, name := range names {
		groups[i] = a.groups[name]
	}
	return groups
}

// Superseded returns the files superseded by a strictly newer version.
func (a *Accumulator) Superseded() domain.PathSet {
	return a.superseded
}

// Settle splits the groups into the best files of unambiguous groups, which
// are kept, and the groups that still need an ambiguity decision.
func (a *Accumulator) Settle() (kept []string, ambiguous []*domain.PackageGroup) {
	for _, g := range a.Groups() {
		if g.IsAmbiguous() {
			ambiguous = append(ambiguous, g)
			continue
		}
		kept = append(kept, g.Best.Path)
	}
	return kept, ambiguous
}

// Fold runs a single pass over files with a fresh accumulator.
func (e *Engine) Fold(files []domain.PackageFile) *Accumulator {
	acc := NewAccumulator()
	for _, f := range files {
		e.Add(acc, f)
	}
	return acc
}

// Add folds one file into acc.
func (e *Engine) Add(acc *Accumulator, file domain.PackageFile) {
	group, ok := acc.groups[file.Name]
	if !ok {
		acc.groups[file.Name] = domain.NewPackageGroup(file)
		return
	}

	if group.Contains(file.Path) || acc.superseded.Has(file.Path) {
		return
	}

	switch e.cmp.Compare(file, group.Best) {
	case domain.Greater:
		e.promote(acc, group, file)
	case domain.Less:
		e.logger.Debug(fmt.Sprintf("keeping `%s` over `%s`", group.Best.Version, file.Version))
		acc.superseded.Add(file.Path)
	default:
		group.Ambiguous = append(group.Ambiguous, file)
	}
}

// promote makes file the best of group and re-compares everything the group held before.
func (e *Engine) promote(acc *Accumulator, group *domain.PackageGroup, file domain.PackageFile) {
	previous := append([]domain.PackageFile{group.Best}, group.Ambiguous...)
	group.Best = file
	group.Ambiguous = nil

	for _, p := range previous {
		switch e.cmp.Compare(p, file) {
		case domain.Less:
			e.logger.Debug(fmt.Sprintf("keeping `%s` over `%s`", file.Version, p.Version))
			acc.superseded.Add(p.Path)
		case domain.Greater:
			e.logger.Warn(fmt.Sprintf(
				"package `%s`: version `%s` is newer than `%s` which replaced an older version, ordering is not transitive",
				file.Name, p.Version, file.Version,
			))
			group.Ambiguous = append(group.Ambiguous, p)
		default:
			group.Ambiguous = append(group.Ambiguous, p)
		}
	}
}
