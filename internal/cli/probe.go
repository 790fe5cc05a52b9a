/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/allbin/go-uart"
	"github.com/allbin/go-uart/internal/tui/colors"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe <port>",
	Short: "Open a port and report how the kernel took the configuration",
	Long: `Open a serial port with the given configuration and report the outcome.

probe walks the full endpoint lifecycle: it validates the configuration,
opens the device, applies the derived terminal attributes, then reads the
attributes back from the kernel and compares. An endpoint can be open while
its attributes were rejected (for example on a device that is not a real
tty); probe makes that divergence visible instead of failing.

Examples:
  uart probe /dev/ttyUSB0
  uart probe /dev/ttyUSB0 --baud 115200 --parity even --stop-bits 2
  uart probe /dev/ttyAMA0 --flow-control hardware`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		opts, err := endpointOptions(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ep, err := uart.NewEndpoint(portPath, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer ep.Close()

		okStyle := lipgloss.NewStyle().Foreground(colors.Green).Bold(true)
		warnStyle := lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true)
		errStyle := lipgloss.NewStyle().Foreground(colors.Red).Bold(true)

		if err := ep.Open(); err != nil {
			fmt.Printf("%s open failed: %v\n", errStyle.Render("✗"), err)
			fmt.Printf("  state: %s\n", ep.State())
			os.Exit(1)
		}

		fmt.Printf("%s opened %s (%s)\n", okStyle.Render("✓"), portPath, ep.Config().Describe())
		fmt.Printf("  state: %s\n", ep.State())

		if applyErr := ep.LastApplyError(); applyErr != nil {
			fmt.Printf("%s attributes not applied: %v\n", warnStyle.Render("!"), applyErr)
		}

		match, err := ep.VerifyAttributes()
		switch {
		case err != nil:
			fmt.Printf("%s cannot read back attributes: %v\n", warnStyle.Render("!"), err)
		case match:
			fmt.Printf("%s kernel attributes match configuration\n", okStyle.Render("✓"))
		default:
			fmt.Printf("%s kernel attributes DIVERGE from configuration\n", warnStyle.Render("!"))
		}

		if signals, err := ep.Signals(); err == nil {
			fmt.Printf("  signals: CTS=%v DSR=%v DCD=%v RI=%v RTS=%v DTR=%v\n",
				signals.CTS, signals.DSR, signals.DCD, signals.RI, signals.RTS, signals.DTR)
		}
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
	addEndpointFlags(probeCmd)
}
