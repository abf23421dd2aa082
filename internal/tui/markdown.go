package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultMarkdownStyle is the glamour style used for Advisor turns.
const DefaultMarkdownStyle = "dark"

// markdownRenderer renders Advisor turns. The glamour renderer is rebuilt
// only when the wrap width changes.
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = DefaultMarkdownStyle
	}
	return &markdownRenderer{style: style}
}

// render returns text unchanged when glamour fails.
func (m *markdownRenderer) render(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		m.renderer, m.width = r, width
	}

	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
