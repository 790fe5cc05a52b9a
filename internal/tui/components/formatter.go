package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/go-uart/internal/tui/colors"
)

// FrameMsg carries one chunk of serial traffic through the Bubble Tea
// update loop.
type FrameMsg struct {
	Timestamp time.Time
	Data      []byte
	Outbound  bool
	Failed    bool // for outbound frames: the write errored
}

type DisplayMode struct {
	ShowHex   bool
	ShowASCII bool
}

// Formatter renders frames as log lines with optional hex/ascii columns.
type Formatter struct {
	mode DisplayMode
}

func NewFormatter(showHex, showASCII bool) *Formatter {
	return &Formatter{mode: DisplayMode{ShowHex: showHex, ShowASCII: showASCII}}
}

func (f *Formatter) ToggleHex()   { f.mode.ShowHex = !f.mode.ShowHex }
func (f *Formatter) ToggleASCII() { f.mode.ShowASCII = !f.mode.ShowASCII }

func (f *Formatter) FormatFrame(msg FrameMsg) string {
	var indicator string
	switch {
	case msg.Outbound && msg.Failed:
		indicator = lipgloss.NewStyle().Foreground(colors.Red).Bold(true).Render("↗ TX ✗")
	case msg.Outbound:
		indicator = lipgloss.NewStyle().Foreground(colors.Peach).Bold(true).Render("↗ TX")
	default:
		indicator = lipgloss.NewStyle().Foreground(colors.Sky).Bold(true).Render("↙ RX")
	}

	var parts []string
	if f.mode.ShowHex {
		parts = append(parts, fmt.Sprintf("HEX: % X", msg.Data))
	}
	if f.mode.ShowASCII {
		var ascii strings.Builder
		for _, b := range msg.Data {
			if b >= 32 && b <= 126 {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}
		parts = append(parts, fmt.Sprintf("ASCII: %s", ascii.String()))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("BYTES: %d", len(msg.Data)))
	}

	timestamp := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Render(fmt.Sprintf("[%s]", msg.Timestamp.Format("15:04:05.000")))

	return fmt.Sprintf("%s %s: %s", timestamp, indicator, strings.Join(parts, "  "))
}

func (f *Formatter) FormatFrames(frames []FrameMsg) []string {
	formatted := make([]string, len(frames))
	for i, msg := range frames {
		formatted[i] = f.FormatFrame(msg)
	}
	return formatted
}
