package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"advanced-ai/internal/conversation"
)

type rendererKey struct {
	theme conversation.Theme
	width int
}

// markdown renders message text for the terminal. Renderers are cached per
// theme and wrap width. Any render failure falls back to the raw text.
type markdown struct {
	cache map[rendererKey]*glamour.TermRenderer
}

func newMarkdown() *markdown {
	return &markdown{cache: make(map[rendererKey]*glamour.TermRenderer)}
}

func (md *markdown) Render(text string, theme conversation.Theme, width int) string {
	if width < 10 {
		width = 10
	}
	k := rendererKey{theme: theme, width: width}

	r, ok := md.cache[k]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(string(theme)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.WithError(err).Debug("Markdown renderer unavailable")
			return text
		}
		md.cache[k] = r
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
