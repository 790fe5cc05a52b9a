/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allbin/go-uart"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <port>",
	Short: "Display information about a serial port",
	Long: `Display information about a serial port device node.

Examples:
  uart info /dev/ttyUSB0
  uart info /dev/ttyACM0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		info, err := uart.GetPortInfo(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting port info: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Port Information: %s\n\n", info.Path)
		fmt.Printf("  Name:        %s\n", info.Name)
		fmt.Printf("  Description: %s\n", info.Description)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
