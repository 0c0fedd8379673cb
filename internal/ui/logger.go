package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/modu-ai/liftoff/internal/i18n"
)

// ConsoleLogger writes user-facing lines to a writer. Localized messages
// are highlighted; literal lines, such as Gradle output, are muted.
type ConsoleLogger struct {
	mu    sync.Mutex
	w     io.Writer
	theme *Theme
	loc   *i18n.Localizer
}

// NewConsoleLogger creates a ConsoleLogger.
func NewConsoleLogger(w io.Writer, theme *Theme, loc *i18n.Localizer) *ConsoleLogger {
	return &ConsoleLogger{w: w, theme: theme, loc: loc}
}

// Line writes text as-is.
func (l *ConsoleLogger) Line(text string) {
	l.write(l.theme.Muted.Render(text))
}

// Localized writes the message registered under key.
func (l *ConsoleLogger) Localized(key string, args ...any) {
	l.write(l.theme.Primary.Render(l.loc.Text(key, args...)))
}

// Success writes the message registered under key with a check mark.
func (l *ConsoleLogger) Success(key string, args ...any) {
	l.write(l.theme.Success.Render("✓") + " " + l.loc.Text(key, args...))
}

// Warn writes the message registered under key in the warning color.
func (l *ConsoleLogger) Warn(key string, args ...any) {
	l.write(l.theme.Warn.Render(l.loc.Text(key, args...)))
}

// Block writes a pre-rendered block, such as a card.
func (l *ConsoleLogger) Block(s string) {
	l.write(s)
}

func (l *ConsoleLogger) write(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.w, s)
}
