package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Terminal is the scrolling traffic view.
type Terminal struct {
	viewport  viewport.Model
	formatter *Formatter
	lines     []string
}

func NewTerminal(width, height int) *Terminal {
	return &Terminal{
		viewport:  viewport.New(width, height),
		formatter: NewFormatter(true, true),
	}
}

func (t *Terminal) SetSize(width, height int) {
	t.viewport.Width = width
	t.viewport.Height = height
}

func (t *Terminal) Width() int {
	return t.viewport.Width
}

func (t *Terminal) Append(msg FrameMsg) {
	t.lines = append(t.lines, t.formatter.FormatFrame(msg))
	t.viewport.SetContent(strings.Join(t.lines, "\n"))
	t.viewport.GotoBottom()
}

// Refresh re-renders all frames, used after a display-mode toggle.
func (t *Terminal) Refresh(frames []FrameMsg) {
	t.lines = t.formatter.FormatFrames(frames)
	t.viewport.SetContent(strings.Join(t.lines, "\n"))
	t.viewport.GotoBottom()
}

func (t *Terminal) Clear() {
	t.lines = nil
	t.viewport.SetContent("")
}

func (t *Terminal) ToggleHex()   { t.formatter.ToggleHex() }
func (t *Terminal) ToggleASCII() { t.formatter.ToggleASCII() }

func (t *Terminal) Update(msg tea.Msg) (viewport.Model, tea.Cmd) {
	// Only window resizes reach the viewport; key messages are handled by
	// the surrounding model so the bindings are not consumed here.
	switch msg.(type) {
	case tea.WindowSizeMsg:
		return t.viewport.Update(msg)
	default:
		return t.viewport, nil
	}
}

func (t *Terminal) View() string {
	return t.viewport.View()
}
