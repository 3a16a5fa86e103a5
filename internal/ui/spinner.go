package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Symbols printed when a spinner ends.
const (
	SymbolSuccess = "✔"
	SymbolFailure = "✖"
)

// Spinner shows an indeterminate activity indicator. Stop, Succeed and Fail
// end the spinner; only the first of them has an effect.
type Spinner interface {
	// SetTitle replaces the text next to the spinner.
	SetTitle(title string)
	// Stop clears the spinner without a final line.
	Stop()
	// Succeed stops the spinner and prints msg with a success mark.
	Succeed(msg string)
	// Fail stops the spinner and prints msg with a failure mark.
	Fail(msg string)
}

// NewSpinner starts a spinner writing to w. In headless mode, or when the
// theme has no colors, the title is printed as a plain line.
func NewSpinner(theme *Theme, hm *HeadlessManager, w io.Writer, title string) Spinner {
	if hm.IsHeadless() || theme.NoColor {
		return newHeadlessSpinner(theme, title, w)
	}
	return newInteractiveSpinner(theme, title, w)
}

// finalLine formats the line printed when a spinner succeeds or fails.
func finalLine(theme *Theme, success bool, msg string) string {
	if success {
		return theme.style(theme.Colors.Success).Render(SymbolSuccess) + " " + msg
	}
	return theme.style(theme.Colors.Error).Render(SymbolFailure) + " " + msg
}

// --- interactiveSpinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = theme.style(theme.Colors.Primary)
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	theme   *Theme
	program *tea.Program
	writer  io.Writer
	once    sync.Once
}

// @MX:WARN: [AUTO] The render loop runs on its own goroutine until Stop sends spinnerStopMsg and waits.
// @MX:REASON: [AUTO] Output written before Stop returns would interleave with spinner frames
func newInteractiveSpinner(theme *Theme, title string, w io.Writer, opts ...tea.ProgramOption) *interactiveSpinner {
	m := newSpinnerModel(theme, title)
	// The spinner never reads keys so prompts keep sole ownership of stdin.
	opts = append([]tea.ProgramOption{tea.WithOutput(w), tea.WithInput(nil)}, opts...)
	p := tea.NewProgram(m, opts...)

	s := &interactiveSpinner{theme: theme, program: p, writer: w}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.finish(func() {})
}

// Succeed stops the spinner and prints a success line.
func (s *interactiveSpinner) Succeed(msg string) {
	s.finish(func() {
		_, _ = fmt.Fprintln(s.writer, finalLine(s.theme, true, msg))
	})
}

// Fail stops the spinner and prints a failure line.
func (s *interactiveSpinner) Fail(msg string) {
	s.finish(func() {
		_, _ = fmt.Fprintln(s.writer, finalLine(s.theme, false, msg))
	})
}

func (s *interactiveSpinner) finish(after func()) {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
		after()
	})
}

// --- headlessSpinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	theme   *Theme
	title   string
	writer  io.Writer
	stopped bool
}

// newHeadlessSpinner creates a headless spinner that prints the title.
func newHeadlessSpinner(theme *Theme, title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{
		theme:  theme,
		title:  title,
		writer: w,
	}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

// SetTitle updates the spinner title and prints a log line.
func (s *headlessSpinner) SetTitle(title string) {
	if s.stopped {
		return
	}
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

// Stop halts the spinner.
func (s *headlessSpinner) Stop() {
	s.stopped = true
}

// Succeed prints a success line.
func (s *headlessSpinner) Succeed(msg string) {
	s.end(true, msg)
}

// Fail prints a failure line.
func (s *headlessSpinner) Fail(msg string) {
	s.end(false, msg)
}

func (s *headlessSpinner) end(success bool, msg string) {
	if s.stopped {
		return
	}
	s.stopped = true
	_, _ = fmt.Fprintln(s.writer, finalLine(s.theme, success, msg))
}
