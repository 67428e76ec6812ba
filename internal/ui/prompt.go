package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter asks the operator for a line of input
type Prompter interface {
	// Ask shows prompt and returns the trimmed answer, or def when the
	// answer is empty. io.EOF is returned once input is exhausted.
	Ask(prompt, def string) (string, error)
}

// LinePrompter reads answers line by line
type LinePrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *LinePrompter) Ask(prompt, def string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if def != "" {
		_, _ = fmt.Fprintf(p.out, "%s (%s): ", prompt, def)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if errors.Is(err, io.EOF) && line == "" {
		_, _ = fmt.Fprintln(p.out)
		return "", io.EOF
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}

	return answer, nil
}
