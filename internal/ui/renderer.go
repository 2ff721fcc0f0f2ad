package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/harukidev/devsweep/internal/infra/debuglog"
	"github.com/harukidev/devsweep/internal/infra/output"
)

type Renderer struct {
	out       io.Writer
	theme     Theme
	useColor  bool
	wrapWidth int
}

func NewRenderer(out io.Writer, theme Theme, useColor bool) *Renderer {
	return &Renderer{
		out:       out,
		theme:     theme,
		useColor:  useColor,
		wrapWidth: currentWrapWidth(),
	}
}

func (r *Renderer) Header(text string) {
	r.writeLine(r.style(text, r.theme.Header))
}

func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

func (r *Renderer) Section(title string) {
	debuglog.SetPhase(strings.ToLower(strings.TrimSpace(title)))
	r.writeLine(r.style(title, r.theme.SectionTitle))
}

func (r *Renderer) Bullet(text string) {
	prefix := output.StepPrefix + " "
	if r.useColor {
		prefix = r.theme.Muted.Render(prefix)
	}
	r.writeWithPrefix(output.Indent+prefix, text)
}

func (r *Renderer) BulletSuccess(text string) {
	prefix := output.StepPrefix + " "
	if r.useColor {
		prefix = r.theme.Success.Render(prefix)
	}
	r.writeWithPrefix(output.Indent+prefix, text)
}

func (r *Renderer) BulletError(text string) {
	prefix := output.StepPrefix + " "
	if r.useColor {
		prefix = r.theme.Error.Render(prefix)
		text = r.theme.Error.Render(text)
	}
	r.writeWithPrefix(output.Indent+prefix, text)
}

func (r *Renderer) Warn(text string) {
	r.writeWithPrefix(output.Indent, r.style(text, r.theme.Warn))
}

func (r *Renderer) TreeLine(text string) {
	r.writeWithPrefix(output.Indent+output.Indent+output.LogConnector+" ", text)
}

func (r *Renderer) TreeLineWarn(text string) {
	prefix := output.Indent + output.Indent + output.LogConnector + " "
	if r.useColor {
		prefix = r.style(prefix, r.theme.Warn)
		text = r.style(text, r.theme.Warn)
	}
	r.writeWithPrefix(prefix, text)
}

func (r *Renderer) MutedText(text string) string   { return r.style(text, r.theme.Muted) }
func (r *Renderer) WarnText(text string) string    { return r.style(text, r.theme.Warn) }
func (r *Renderer) ErrorText(text string) string   { return r.style(text, r.theme.Error) }
func (r *Renderer) SuccessText(text string) string { return r.style(text, r.theme.Success) }
func (r *Renderer) AccentText(text string) string  { return r.style(text, r.theme.Accent) }

func (r *Renderer) style(text string, style lipgloss.Style) string {
	if !r.useColor {
		return text
	}
	return style.Render(text)
}

func (r *Renderer) writeWithPrefix(prefix, text string) {
	if r.wrapWidth <= 0 {
		r.writeLine(prefix + text)
		return
	}
	prefixWidth := lipgloss.Width(prefix)
	available := r.wrapWidth - prefixWidth
	if available <= 0 {
		r.writeLine(prefix + text)
		return
	}
	wrapped := ansi.Wrap(text, available, "")
	lines := strings.Split(wrapped, "\n")
	if len(lines) == 0 {
		return
	}
	r.writeLine(prefix + lines[0])
	if len(lines) == 1 {
		return
	}
	padding := strings.Repeat(" ", prefixWidth)
	for _, line := range lines[1:] {
		r.writeLine(padding + line)
	}
}

func (r *Renderer) writeLine(text string) {
	fmt.Fprintln(r.out, strings.TrimRight(text, "\n"))
}
