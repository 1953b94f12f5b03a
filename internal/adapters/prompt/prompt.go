// Package prompt provides a line-based terminal prompter.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/pkgsweep/internal/ui/output"
	"go.trai.ch/pkgsweep/internal/ui/style"
	"go.trai.ch/zerr"
)

// Prompter implements ports.Prompter by writing a prompt and reading one line.
type Prompter struct {
	mu     sync.Mutex
	in     *bufio.Reader
	out    *termenv.Output
	accent termenv.Color
	// echo writes the answer back when input does not come from a terminal,
	// so that transcripts of piped sessions stay readable.
	echo bool
}

// New creates a Prompter reading from in and writing prompts to out.
// Nil values default to os.Stdin and os.Stderr.
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	return &Prompter{
		in:     bufio.NewReader(in),
		out:    output.NewWithProfile(out, func() termenv.Profile { return output.ProfileFor(out) }),
		accent: termenv.RGBColor(string(style.Iris)),
		echo:   !output.IsTerminal(in),
	}
}

type answer struct {
	line string
	err  error
}

// Ask prints prompt and blocks until a line is read or ctx is done.
// The returned line has its line terminator removed.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := p.out.WriteString(p.styled(prompt)); err != nil {
		return "", zerr.Wrap(err, "failed to write prompt")
	}

	answers := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		answers <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		_, _ = p.out.WriteString("\n")
		return "", ctx.Err()
	case a := <-answers:
		return p.finish(a)
	}
}

// styled colours the question on the last line of prompt. Lines before it
// are written as given since they carry their own styling.
func (p *Prompter) styled(prompt string) string {
	i := strings.LastIndexByte(prompt, '\n') + 1
	return prompt[:i] + p.out.String(prompt[i:]).Foreground(p.accent).String()
}

func (p *Prompter) finish(a answer) (string, error) {
	line := strings.TrimRight(a.line, "\r\n")

	if a.err != nil {
		if !errors.Is(a.err, io.EOF) {
			return "", zerr.Wrap(a.err, "failed to read answer")
		}
		// A final line without terminator is still an answer.
		if line == "" {
			_, _ = p.out.WriteString("\n")
			return "", zerr.Wrap(io.EOF, "input closed before an answer was given")
		}
	}

	if p.echo {
		_, _ = p.out.WriteString(line + "\n")
	}
	return line, nil
}
