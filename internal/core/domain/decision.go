package domain

import (
	"strconv"
	"strings"
)

// DecisionKind is the kind of answer given for an ambiguity group.
type DecisionKind int

const (
	// DecisionReprompt means the answer was not understood and must be asked again.
	DecisionReprompt DecisionKind = iota
	// DecisionKeep keeps one candidate and supersedes the others.
	DecisionKeep
	// DecisionIgnoreAll leaves every candidate of the group alone and reports them as ignored.
	DecisionIgnoreAll
	// DecisionKeepAll keeps every candidate. It is never parsed from input;
	// it is the policy of confirm levels that do not ask about ambiguities.
	DecisionKeepAll
)

// IgnoreAllAnswers are the inputs that select DecisionIgnoreAll.
var IgnoreAllAnswers = []string{"i", "ignore"}

// Decision is the operator's answer for one ambiguity group.
type Decision struct {
	Kind  DecisionKind
	Index int
}

// ParseDecision maps one line of operator input to a decision for a group of
// n candidates. An empty line keeps candidate 0.
func ParseDecision(line string, n int) Decision {
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return Decision{Kind: DecisionKeep, Index: 0}
	}

	for _, a := range IgnoreAllAnswers {
		if answer == a {
			return Decision{Kind: DecisionIgnoreAll}
		}
	}

	index, err := strconv.Atoi(answer)
	if err != nil || index < 0 || index >= n {
		return Decision{Kind: DecisionReprompt}
	}
	return Decision{Kind: DecisionKeep, Index: index}
}

// ParseConfirmation maps one line of input to a yes/no answer. An empty line
// means yes. The boolean is false when the answer was not understood.
func ParseConfirmation(line string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
