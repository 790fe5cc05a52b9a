package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/go-uart/internal/tui/colors"
	"github.com/allbin/go-uart/internal/tui/styles"
)

type SendMode int

const (
	SendModeASCII SendMode = iota
	SendModeHex
)

func (s SendMode) String() string {
	if s == SendModeHex {
		return "HEX"
	}
	return "ASCII"
}

// Input is the send field with ascii/hex modes and command history.
type Input struct {
	textInput    textinput.Model
	sendMode     SendMode
	history      []string
	historyIndex int
	pending      string // input saved while navigating history
}

func NewInput(placeholder string) *Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Prompt = ""
	return &Input{
		textInput:    ti,
		historyIndex: -1,
	}
}

func (i *Input) SetWidth(width int) {
	// leave room for the border and mode tag
	i.textInput.Width = width - 12
}

func (i *Input) Focus()             { i.textInput.Focus() }
func (i *Input) Blur()              { i.textInput.Blur() }
func (i *Input) Value() string      { return i.textInput.Value() }
func (i *Input) SetValue(v string)  { i.textInput.SetValue(v) }
func (i *Input) SendMode() SendMode { return i.sendMode }
func (i *Input) ToggleSendMode()    { i.sendMode = 1 - i.sendMode }

func (i *Input) AddToHistory(entry string) {
	if entry == "" {
		return
	}
	i.history = append(i.history, entry)
	i.historyIndex = -1
	i.pending = ""
}

func (i *Input) HistoryBack() {
	if len(i.history) == 0 {
		return
	}
	if i.historyIndex == -1 {
		i.pending = i.textInput.Value()
		i.historyIndex = len(i.history) - 1
	} else if i.historyIndex > 0 {
		i.historyIndex--
	}
	i.textInput.SetValue(i.history[i.historyIndex])
	i.textInput.CursorEnd()
}

func (i *Input) HistoryForward() {
	if i.historyIndex == -1 {
		return
	}
	i.historyIndex++
	if i.historyIndex >= len(i.history) {
		i.historyIndex = -1
		i.textInput.SetValue(i.pending)
	} else {
		i.textInput.SetValue(i.history[i.historyIndex])
	}
	i.textInput.CursorEnd()
}

func (i *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	var cmd tea.Cmd
	i.textInput, cmd = i.textInput.Update(msg)
	return i, cmd
}

func (i *Input) View(insertMode bool) string {
	tagColor := colors.Subtext0
	if insertMode {
		tagColor = colors.Peach
	}
	tag := lipgloss.NewStyle().
		Foreground(tagColor).
		Bold(true).
		Render(i.sendMode.String())

	field := styles.InputStyle.Render(i.textInput.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", tag)
}
