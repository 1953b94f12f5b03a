package ports

import "context"

// Prompter asks the operator questions. Implementations block until an
// answer is available.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Ask prints prompt and returns one line of input without its line terminator.
	Ask(ctx context.Context, prompt string) (string, error)
}
