package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

// Console is the operator-facing output sink. It is safe for concurrent use,
// page fetches report failures from their own goroutines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a console writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{out: w}
}

// Writer returns the underlying writer
func (c *Console) Writer() io.Writer {
	return c.out
}

// Println writes a plain line
func (c *Console) Println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = fmt.Fprintln(c.out, s)
}

// Success prints a green message
func (c *Console) Success(format string, args ...any) {
	c.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints a red message
func (c *Console) Error(format string, args ...any) {
	c.Println(errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a yellow message
func (c *Console) Warn(format string, args ...any) {
	c.Println(warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints a cyan message
func (c *Console) Info(format string, args ...any) {
	c.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}
