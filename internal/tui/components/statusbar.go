package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/go-uart"
	"github.com/allbin/go-uart/internal/tui/colors"
)

// StatusBar renders the bottom line: input mode, device, endpoint state,
// configuration summary and clock.
type StatusBar struct {
	portPath string
	state    uart.State
	config   uart.Config
	applyErr error
	err      error
	width    int
}

func NewStatusBar(portPath string, config uart.Config) *StatusBar {
	return &StatusBar{
		portPath: portPath,
		config:   config,
		state:    uart.StateClosed,
	}
}

func (sb *StatusBar) SetWidth(width int)      { sb.width = width }
func (sb *StatusBar) SetState(s uart.State)   { sb.state = s }
func (sb *StatusBar) SetError(err error)      { sb.err = err }
func (sb *StatusBar) SetApplyError(err error) { sb.applyErr = err }
func (sb *StatusBar) SetConfig(c uart.Config) { sb.config = c }

func (sb *StatusBar) stateIndicator() string {
	switch {
	case sb.err != nil:
		return lipgloss.NewStyle().Foreground(colors.Red).Render("✗")
	case sb.state == uart.StateOpen && sb.applyErr != nil:
		// open at the OS level, attributes rejected
		return lipgloss.NewStyle().Foreground(colors.Yellow).Render("●")
	case sb.state == uart.StateOpen:
		return lipgloss.NewStyle().Foreground(colors.Green).Render("●")
	case sb.state == uart.StateFailed:
		return lipgloss.NewStyle().Foreground(colors.Red).Render("○")
	default:
		return lipgloss.NewStyle().Foreground(colors.Yellow).Render("○")
	}
}

// View renders the full-width status line.
func (sb *StatusBar) View(inputMode, sendMode, clock string) string {
	width := sb.width
	if width <= 0 {
		width = 80
	}

	modeBg := colors.Blue
	if inputMode == "INSERT" {
		modeBg = colors.Green
	}
	mode := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(modeBg).
		Bold(true).
		Padding(0, 1).
		Render(inputMode)

	port := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1).
		Render(sb.portPath)

	divider := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1).
		Render("│")

	var sendInfo string
	if inputMode == "INSERT" {
		sendInfo = lipgloss.NewStyle().
			Foreground(colors.Peach).
			Bold(true).
			Padding(0, 1).
			Render(fmt.Sprintf("[%s] tab to toggle", sendMode))
	}

	details := fmt.Sprintf("⚡ %s %s", sb.config.Describe(), sb.state)
	if sb.applyErr != nil {
		details += " attrs!"
	}
	connDetails := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1).
		Render(details)

	clockView := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1).
		Render(clock)

	left := lipgloss.JoinHorizontal(lipgloss.Left, mode, port, sb.stateIndicator(), sendInfo, divider)
	right := lipgloss.JoinHorizontal(lipgloss.Left, connDetails, divider, clockView)

	spacerWidth := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	bar := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(width)

	return bar.Render(lipgloss.JoinHorizontal(lipgloss.Left, left, spacer, right))
}
