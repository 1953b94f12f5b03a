package domain

import (
	"iter"
	"maps"
	"slices"
)

// PathSet is a set of file paths.
type PathSet map[string]struct{}

// NewPathSet returns a set holding paths.
func NewPathSet(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts path into the set.
func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

// Remove deletes path from the set.
func (s PathSet) Remove(path string) {
	delete(s, path)
}

// Has reports whether path is in the set.
func (s PathSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths in the set.
func (s PathSet) Len() int {
	return len(s)
}

// Sorted returns the paths in lexical order.
func (s PathSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// All iterates over the paths in lexical order.
func (s PathSet) All() iter.Seq[string] {
	return slices.Values(s.Sorted())
}

// Outcome is the final classification of every file seen during a sweep.
//
// Superseded and Ignored are the reported sets. Kept holds data files that
// stay on disk; signature files of kept data files are implicitly kept and
// never appear in any set.
type Outcome struct {
	Superseded PathSet
	Ignored    PathSet
	Kept       PathSet
}

// NewOutcome returns an empty Outcome.
func NewOutcome() *Outcome {
	return &Outcome{
		Superseded: NewPathSet(),
		Ignored:    NewPathSet(),
		Kept:       NewPathSet(),
	}
}

// Apply merges the resolution of one group into the outcome.
func (o *Outcome) Apply(r GroupResolution) {
	for _, p := range r.Kept {
		o.Kept.Add(p)
	}
	for _, p := range r.Superseded {
		o.Superseded.Add(p)
	}
	for _, p := range r.Ignored {
		o.Ignored.Add(p)
	}
}

// GroupResolution is how one ambiguity group was split.
type GroupResolution struct {
	Kept       []string
	Superseded []string
	Ignored    []string
}

// Entry is one directory entry found by a scan.
type Entry struct {
	Path string
	// Regular is false for directories, symlinks to directories and special files.
	Regular bool
}

// RemovalReport lists what happened to the superseded files of a sweep.
type RemovalReport struct {
	// Removed files were deleted, in deletion order.
	Removed []string
	// Skipped files were declined by the operator and left on disk.
	Skipped []string
}
