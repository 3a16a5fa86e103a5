package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the word wrap width for rendered markdown.
const markdownWidth = 80

// RenderMarkdown renders md for the terminal. Headless output and themes
// without colors use the plain notty style.
func RenderMarkdown(md string, theme *Theme, hm *HeadlessManager) (string, error) {
	style := glamour.WithAutoStyle()
	if theme.NoColor || hm.IsHeadless() {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
