package domain

import (
	"cmp"
	"slices"
)

// PackageGroup holds the best version seen for one package name together
// with the files that could not be ordered against it.
type PackageGroup struct {
	Best      PackageFile
	Ambiguous []PackageFile
}

// NewPackageGroup starts a group with best as its only member.
func NewPackageGroup(best PackageFile) *PackageGroup {
	return &PackageGroup{Best: best}
}

// Name returns the package name shared by the group.
func (g *PackageGroup) Name() string {
	return g.Best.Name
}

// IsAmbiguous reports whether the group needs an ambiguity decision.
func (g *PackageGroup) IsAmbiguous() bool {
	return len(g.Ambiguous) > 0
}

// Contains reports whether path is the best file or one of the ambiguous files.
func (g *PackageGroup) Contains(path string) bool {
	if g.Best.Path == path {
		return true
	}
	return slices.ContainsFunc(g.Ambiguous, func(p PackageFile) bool {
		return p.Path == path
	})
}

// Candidates returns the best file and the ambiguous files sorted by
// version-string descending, then by path. This is a presentation order
// only; it says nothing about which version is newer.
func (g *PackageGroup) Candidates() []PackageFile {
	candidates := make([]PackageFile, 0, len(g.Ambiguous)+1)
	candidates = append(candidates, g.Best)
	candidates = append(candidates, g.Ambiguous...)
	slices.SortFunc(candidates, func(a, b PackageFile) int {
		if c := cmp.Compare(b.Version, a.Version); c != 0 {
			return c
		}
		return cmp.Compare(a.Path, b.Path)
	})
	return candidates
}

// Paths returns the paths of all candidates in presentation order.
func (g *PackageGroup) Paths() []string {
	candidates := g.Candidates()
	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.Path
	}
	return paths
}
