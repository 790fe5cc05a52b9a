/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/allbin/go-uart"
	"github.com/allbin/go-uart/internal/tui/components"
	"github.com/allbin/go-uart/internal/tui/keys"
	"github.com/allbin/go-uart/internal/tui/models"
	"github.com/allbin/go-uart/internal/tui/styles"
)

// terminalCmd represents the terminal command
var terminalCmd = &cobra.Command{
	Use:   "terminal <port>",
	Short: "Interactive bidirectional terminal session",
	Long: `Open an interactive terminal session against a serial port.

Incoming data is streamed into a scrollback view with timestamps and
hex/ascii columns. A vim-like input field sends data back out, in ascii
or hex mode.

Example usage:
  uart terminal /dev/ttyUSB0
  uart terminal /dev/ttyUSB0 --baud 115200 --flow-control hardware`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		opts, err := endpointOptions(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := runTerminalTUI(portPath, opts...); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(terminalCmd)

	addEndpointFlags(terminalCmd)
}

// terminalModel is the Bubble Tea model for the terminal command
type terminalModel struct {
	*models.Session
	terminal  *components.Terminal
	statusBar *components.StatusBar
	input     *components.Input
	help      help.Model
	keys      keys.SessionKeys
	ready     bool
}

func runTerminalTUI(portPath string, opts ...uart.Option) error {
	ep, err := uart.NewEndpoint(portPath, opts...)
	if err != nil {
		return err
	}

	m := &terminalModel{
		Session:   models.NewSession(ep),
		terminal:  components.NewTerminal(0, 0),
		statusBar: components.NewStatusBar(portPath, ep.Config()),
		input:     components.NewInput("Type message and press Enter to send..."),
		help:      help.New(),
		keys:      keys.NewSessionKeys(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Open the endpoint and start the read loop in the background so the
	// UI comes up immediately.
	go func() {
		if err := ep.Open(); err != nil {
			p.Send(models.StatusMsg{Connected: false, Error: err})
			return
		}

		p.Send(models.StatusMsg{
			Connected: true,
			ApplyErr:  ep.LastApplyError(),
		})

		go func() {
			buffer := make([]byte, 1024)
			for {
				n, err := ep.ReadContext(m.Context(), buffer)
				if err != nil {
					if m.Context().Err() != nil {
						return
					}
					continue
				}
				if n > 0 {
					data := make([]byte, n)
					copy(data, buffer[:n])
					p.Send(components.FrameMsg{
						Timestamp: time.Now(),
						Data:      data,
					})
				}
			}
		}()
	}()

	_, err = p.Run()
	m.Cleanup()
	return err
}

func (m *terminalModel) Init() tea.Cmd {
	return nil
}

// sendInput dispatches the current input field contents to the endpoint
// and returns the command that reports the write outcome.
func (m *terminalModel) sendInput() tea.Cmd {
	inputStr := m.input.Value()
	if inputStr == "" || !m.IsConnected() {
		return nil
	}

	var payload []byte
	switch m.input.SendMode() {
	case components.SendModeHex:
		decoded, err := parseHexString(inputStr)
		if err != nil {
			m.terminal.Append(components.FrameMsg{
				Timestamp: time.Now(),
				Data:      []byte(fmt.Sprintf("invalid hex input: %v", err)),
			})
			return nil
		}
		payload = decoded
	default:
		payload = []byte(inputStr + "\n")
	}

	m.input.AddToHistory(inputStr)
	m.input.SetValue("")

	ep := m.Endpoint()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := ep.WriteContext(ctx, payload)
		return components.FrameMsg{
			Timestamp: time.Now(),
			Data:      payload,
			Outbound:  true,
			Failed:    err != nil,
		}
	}
}

func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// input field with border plus single-line status bar
		verticalMargin := 4
		m.terminal.SetSize(msg.Width, msg.Height-verticalMargin)
		m.input.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.ready = true

	case models.StatusMsg:
		m.SetConnected(msg.Connected)
		m.statusBar.SetState(m.Endpoint().State())
		m.statusBar.SetApplyError(msg.ApplyErr)
		if msg.Error != nil {
			m.SetError(msg.Error)
			m.statusBar.SetError(msg.Error)
		}

	case components.FrameMsg:
		if m.ready {
			m.AddFrame(msg)
			m.terminal.Append(msg)
		}

	case tea.KeyMsg:
		if m.IsInInsertMode() {
			switch {
			case key.Matches(msg, m.keys.Escape):
				m.SetInputMode(models.InputModeNormal)
				m.input.Blur()
				return m, nil
			case key.Matches(msg, m.keys.Enter):
				if cmd := m.sendInput(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				return m, tea.Batch(cmds...)
			case key.Matches(msg, m.keys.Up):
				m.input.HistoryBack()
				return m, nil
			case key.Matches(msg, m.keys.Down):
				m.input.HistoryForward()
				return m, nil
			case key.Matches(msg, m.keys.SendMode):
				m.input.ToggleSendMode()
				return m, nil
			}
		} else {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.Cleanup()
				return m, tea.Quit

			case key.Matches(msg, m.keys.InsertMode):
				m.SetInputMode(models.InputModeInsert)
				m.input.Focus()
				return m, nil

			case key.Matches(msg, m.keys.Clear):
				m.ClearFrames()
				m.terminal.Clear()

			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll

			case key.Matches(msg, m.keys.ToggleHex):
				m.terminal.ToggleHex()
				m.terminal.Refresh(m.Frames())

			case key.Matches(msg, m.keys.ToggleASCII):
				m.terminal.ToggleASCII()
				m.terminal.Refresh(m.Frames())

			case key.Matches(msg, m.keys.SendMode):
				m.input.ToggleSendMode()
			}
		}
	}

	var cmd tea.Cmd
	if m.IsInInsertMode() {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg.(type) {
	case tea.WindowSizeMsg:
		_, cmd = m.terminal.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *terminalModel) View() string {
	var content string
	if m.ready {
		content = m.terminal.View()
	} else {
		content = "Initializing..."
	}

	if err := m.Error(); err != nil {
		content += "\n" + styles.ErrorStyle.Render(err.Error())
	}

	input := m.input.View(m.IsInInsertMode())

	statusBar := m.statusBar.View(
		m.InputMode().String(),
		m.input.SendMode().String(),
		time.Now().Format("15:04:05"),
	)

	sections := []string{
		styles.ContentBorderStyle.Render(content),
		input,
	}
	if m.help.ShowAll {
		sections = append(sections, styles.HelpBoxStyle.Render(m.help.View(m.keys)))
	}
	sections = append(sections, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
