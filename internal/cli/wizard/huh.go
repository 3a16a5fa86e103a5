package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhPrompter implements Prompter with charmbracelet/huh. Each question
// runs as its own form to avoid the huh v0.8.x YOffset scroll bug that
// occurs when multiple groups share a single viewport.
type HuhPrompter struct {
	Accessible bool      // Line based prompts for screen readers and non-TTY input
	In         io.Reader // Defaults to stdin when nil
	Out        io.Writer // Defaults to stdout when nil
	NoColor    bool
}

// Input implements Prompter.
func (p HuhPrompter) Input(ctx context.Context, title, value string, validate func(string) error) (string, error) {
	answer := value
	field := huh.NewInput().
		Title(title).
		Value(&answer)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return answer, nil
}

// Confirm implements Prompter.
func (p HuhPrompter) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	answer := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)
	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return answer, nil
}

// Select implements Prompter.
func (p HuhPrompter) Select(ctx context.Context, title string, options []string, def string) (string, error) {
	var answer string
	if slices.Contains(options, def) {
		answer = def
	}
	// Static Options with no Height keeps the viewport sized to the option
	// list so the cursor never scrolls options out of view.
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&answer)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return answer, nil
}

func (p HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme()).
		WithAccessible(p.Accessible).
		WithShowHelp(false)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

func (p HuhPrompter) theme() *huh.Theme {
	if p.NoColor {
		return huh.ThemeBase()
	}
	return newSilenceTheme()
}

// newSilenceTheme creates a huh.Theme with the create-silence colors.
func newSilenceTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("❯ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
