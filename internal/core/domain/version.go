package domain

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// Ordering is the result of comparing two versions.
type Ordering int

const (
	// Less means the left version is older.
	Less Ordering = -1
	// Equal means the versions are equal, or could not be ordered.
	Equal Ordering = 0
	// Greater means the left version is newer.
	Greater Ordering = 1
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Reverse returns the ordering seen from the other operand.
func (o Ordering) Reverse() Ordering {
	return -o
}

type segment struct {
	text    string
	numeric bool
}

// Version is a version-string split into comparable segments.
type Version struct {
	raw      string
	epoch    string
	segments []segment
}

// String returns the version-string the Version was parsed from.
func (v Version) String() string {
	return v.raw
}

// ParseVersion splits a version-string into an optional "N:" epoch and
// segments separated by '.', '-', '_', '+', '~' or a digit/letter boundary.
func ParseVersion(s string) (Version, error) {
	v := Version{raw: s, epoch: "0"}

	rest := s
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		epoch := rest[:i]
		if epoch == "" || strings.TrimFunc(epoch, isDigit) != "" {
			return Version{}, unparsable(s, "epoch is not numeric")
		}
		v.epoch = epoch
		rest = rest[i+1:]
	}

	var current strings.Builder
	currentNumeric := false
	flush := func() {
		if current.Len() > 0 {
			v.segments = append(v.segments, segment{text: current.String(), numeric: currentNumeric})
			current.Reset()
		}
	}

	for _, r := range rest {
		switch {
		case isSeparator(r):
			flush()
		case isDigit(r), isLetter(r):
			if current.Len() > 0 && isDigit(r) != currentNumeric {
				flush()
			}
			currentNumeric = isDigit(r)
			current.WriteRune(r)
		default:
			return Version{}, unparsable(s, "unexpected character "+string(r))
		}
	}
	flush()

	if len(v.segments) == 0 {
		return Version{}, unparsable(s, "no version segments")
	}
	return v, nil
}

func unparsable(s, reason string) error {
	return zerr.With(zerr.With(ErrUnparsableVersion, "version", s), "reason", reason)
}

// Compare orders v against other. The boolean is false when a numeric
// segment faces an alphabetic one, in which case no order can be established
// and Equal is returned.
func (v Version) Compare(other Version) (Ordering, bool) {
	if o := compareNumeric(v.epoch, other.epoch); o != Equal {
		return o, true
	}

	for i := 0; i < len(v.segments) && i < len(other.segments); i++ {
		a, b := v.segments[i], other.segments[i]
		switch {
		case a.numeric && b.numeric:
			if o := compareNumeric(a.text, b.text); o != Equal {
				return o, true
			}
		case !a.numeric && !b.numeric:
			if o := Ordering(strings.Compare(a.text, b.text)); o != Equal {
				return o, true
			}
		default:
			return Equal, false
		}
	}

	switch {
	case len(v.segments) < len(other.segments):
		return Less, true
	case len(v.segments) > len(other.segments):
		return Greater, true
	default:
		return Equal, true
	}
}

// CompareVersions parses and compares two version-strings. The boolean is
// false when either string is unparsable or the versions are incomparable.
func CompareVersions(a, b string) (Ordering, bool) {
	va, err := ParseVersion(a)
	if err != nil {
		return Equal, false
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return Equal, false
	}
	return va.Compare(vb)
}

// compareNumeric compares two digit strings of arbitrary length.
func compareNumeric(a, b string) Ordering {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return Less
		}
		return Greater
	}
	return Ordering(strings.Compare(a, b))
}

func isSeparator(r rune) bool {
	switch r {
	case '.', '-', '_', '+', '~':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}
