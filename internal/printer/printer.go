// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/echotable/internal/core/styles"
)

type ctxKey struct{}

// Printer writes prefixed, colored status lines.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(prefix string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if prefix != "" {
		msg = style.Render(prefix) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf writes an unprefixed line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", lipgloss.Style{}, format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line("✔", lipgloss.NewStyle().Foreground(styles.CurrentPalette.Success), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line("•", lipgloss.NewStyle().Foreground(styles.CurrentPalette.Secondary), format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line("!", lipgloss.NewStyle().Foreground(styles.CurrentPalette.Warning), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line("✘", lipgloss.NewStyle().Foreground(styles.CurrentPalette.Error), format, args...)
}

// Section writes a bold heading.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
}
