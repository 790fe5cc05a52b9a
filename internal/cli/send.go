/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/allbin/go-uart"
	"github.com/allbin/go-uart/internal/tui/colors"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send [data] <port>",
	Short: "Send data to a serial port",
	Long: `Send data to a serial port.

Data can be provided as a command line argument or piped via stdin:
  uart send "AT+GMR" /dev/ttyUSB0 --newline
  echo "test" | uart send /dev/ttyUSB0
  uart send "48656c6c6f" /dev/ttyUSB0 --hex`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var data string
		var portPath string

		if len(args) == 1 {
			portPath = args[0]
			stdinData, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
				os.Exit(1)
			}
			data = strings.TrimRight(string(stdinData), "\r\n")
		} else {
			data = args[0]
			portPath = args[1]
		}

		hexMode, _ := cmd.Flags().GetBool("hex")
		addNewline, _ := cmd.Flags().GetBool("newline")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		payload := []byte(data)
		if hexMode {
			decoded, err := parseHexString(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid hex data: %v\n", err)
				os.Exit(1)
			}
			payload = decoded
		} else if addNewline {
			payload = append(payload, '\n')
		}

		opts, err := endpointOptions(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := sendData(portPath, payload, timeout, opts...); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	addEndpointFlags(sendCmd)
	sendCmd.Flags().BoolP("newline", "n", false, "Add newline character to the end of data")
	sendCmd.Flags().BoolP("hex", "x", false, "Interpret data as hexadecimal (e.g. '48656c6c6f' for 'Hello')")
	sendCmd.Flags().Duration("timeout", 5*time.Second, "Timeout for sending data")
}

// parseHexString decodes space/prefix tolerant hex input into raw bytes
func parseHexString(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("hex string must have even length")
	}
	return hex.DecodeString(s)
}

func sendData(portPath string, payload []byte, timeout time.Duration, opts ...uart.Option) error {
	infoStyle := lipgloss.NewStyle().Foreground(colors.Mauve).Bold(true)
	successStyle := lipgloss.NewStyle().Foreground(colors.Green).Bold(true)

	ep, err := uart.NewEndpoint(portPath, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("%s Opening %s...\n", infoStyle.Render("⚡"), portPath)
	if err := ep.Open(); err != nil {
		return err
	}
	defer ep.Close()

	if applyErr := ep.LastApplyError(); applyErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", applyErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := ep.WriteContext(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to send data: %w", err)
	}
	if err := ep.Drain(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: drain failed: %v\n", err)
	}

	fmt.Printf("%s Sent %d bytes\n", successStyle.Render("✓"), n)
	return nil
}
