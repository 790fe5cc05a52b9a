/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"

	"github.com/allbin/go-uart"
	"github.com/allbin/go-uart/internal/tui/colors"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List all available serial ports on the system.

This command scans for communication-capable serial devices including USB
serial adapters (ttyUSB*), USB CDC/ACM devices (ttyACM*), standard serial
ports (ttyS*) and other platform-specific serial devices. Virtual terminals
and pseudo-terminals are excluded.

With --interactive, an arrow-key picker is shown and the selected port path
is printed to stdout, so the command composes with shell substitution:

  uart probe $(uart list --interactive)`,
	Run: func(cmd *cobra.Command, args []string) {
		ports, err := uart.ListPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		interactive, _ := cmd.Flags().GetBool("interactive")
		tableFormat, _ := cmd.Flags().GetBool("table")

		switch {
		case interactive:
			if err := runPortPicker(ports); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		case tableFormat:
			renderPortTable(ports)
		default:
			for _, port := range ports {
				fmt.Println(port)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
	listCmd.Flags().BoolP("interactive", "i", false, "Pick a port interactively and print its path")
}

// renderPortTable prints a static styled table of the discovered ports
func renderPortTable(ports []string) {
	fmt.Printf("Found %d serial port(s):\n\n", len(ports))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.Mauve).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colors.Surface2)

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-18s %-28s", "Port", "Description")))
	for _, port := range ports {
		info, err := uart.GetPortInfo(port)
		if err != nil {
			fmt.Printf("%-18s %-28s\n", port, fmt.Sprintf("error: %v", err))
			continue
		}
		fmt.Printf("%-18s %-28s\n", info.Name, info.Description)
	}
}

// portPicker is the Bubble Tea model for the interactive port table
type portPicker struct {
	table  table.Model
	chosen string
}

func newPortPicker(ports []string) portPicker {
	columns := []table.Column{
		table.NewColumn("port", "Port", 22),
		table.NewColumn("desc", "Description", 28),
	}

	rows := make([]table.Row, 0, len(ports))
	for _, port := range ports {
		desc := "Serial Port"
		if info, err := uart.GetPortInfo(port); err == nil {
			desc = info.Description
		}
		rows = append(rows, table.NewRow(table.RowData{
			"port": port,
			"desc": desc,
		}))
	}

	t := table.New(columns).
		WithRows(rows).
		Focused(true).
		WithPageSize(10).
		WithBaseStyle(lipgloss.NewStyle().
			BorderForeground(colors.Surface2).
			Foreground(colors.Text))

	return portPicker{table: t}
}

func (m portPicker) Init() tea.Cmd {
	return nil
}

func (m portPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			row := m.table.HighlightedRow()
			if port, ok := row.Data["port"].(string); ok {
				m.chosen = port
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m portPicker) View() string {
	hint := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Render("enter: select  q: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), hint)
}

// runPortPicker shows the picker and prints the chosen port path to stdout
func runPortPicker(ports []string) error {
	// The picker UI goes to stderr so the selected path is the only thing
	// on stdout.
	p := tea.NewProgram(newPortPicker(ports), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(portPicker); ok && m.chosen != "" {
		fmt.Println(m.chosen)
	}
	return nil
}
