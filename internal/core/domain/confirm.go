package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ConfirmLevel controls how much operator confirmation precedes destructive action.
type ConfirmLevel int

const (
	// ConfirmNothing never asks: ambiguous groups are kept and superseded files removed.
	ConfirmNothing ConfirmLevel = iota
	// ConfirmRemoval asks once before removing anything.
	ConfirmRemoval
	// ConfirmAmbiguities also asks which file to keep for every ambiguity group.
	ConfirmAmbiguities
	// ConfirmEverything also asks before every single removal.
	ConfirmEverything
)

// DefaultConfirmLevel is used when no level is configured.
const DefaultConfirmLevel = ConfirmAmbiguities

var confirmLevelNames = map[ConfirmLevel]string{
	ConfirmNothing:     "nothing",
	ConfirmRemoval:     "removal",
	ConfirmAmbiguities: "ambiguities",
	ConfirmEverything:  "everything",
}

// ConfirmLevels returns every level from the least to the most cautious.
func ConfirmLevels() []ConfirmLevel {
	return []ConfirmLevel{ConfirmNothing, ConfirmRemoval, ConfirmAmbiguities, ConfirmEverything}
}

// ParseConfirmLevel parses a level name, case-insensitively.
func ParseConfirmLevel(s string) (ConfirmLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for level, n := range confirmLevelNames {
		if n == name {
			return level, nil
		}
	}
	return DefaultConfirmLevel, zerr.With(ErrInvalidConfirmLevel, "level", s)
}

// String implements fmt.Stringer.
func (l ConfirmLevel) String() string {
	if n, ok := confirmLevelNames[l]; ok {
		return n
	}
	return "unknown"
}

// Description explains the level for the --confirm flag help.
func (l ConfirmLevel) Description() string {
	switch l {
	case ConfirmNothing:
		return "never ask for any confirmation, be careful"
	case ConfirmRemoval:
		return "only ask once before removing files"
	case ConfirmAmbiguities:
		return "also ask which file to keep when versions cannot be ordered"
	case ConfirmEverything:
		return "also ask before every single removal"
	default:
		return ""
	}
}

// PromptsForRemoval reports whether removals need confirmation.
func (l ConfirmLevel) PromptsForRemoval() bool {
	return l >= ConfirmRemoval
}

// PromptsForAmbiguities reports whether ambiguity groups are resolved interactively.
func (l ConfirmLevel) PromptsForAmbiguities() bool {
	return l >= ConfirmAmbiguities
}

// PromptsPerFile reports whether every removal is confirmed individually.
func (l ConfirmLevel) PromptsPerFile() bool {
	return l >= ConfirmEverything
}
