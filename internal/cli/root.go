/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/allbin/go-uart"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uart",
	Short: "Configure and exercise serial (UART) endpoints",
	Long: `uart configures serial devices and drives them through their lifecycle.

The tool wraps the go-uart library: it derives termios attributes from
semantic parameters (baud rate, framing, flow control), opens devices, and
reports how the kernel-side attributes relate to the requested
configuration.

Defaults for --baud and friends can be placed in $HOME/.uart.yaml or given
as UART_* environment variables.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.uart.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".uart")
	}

	viper.SetEnvPrefix("uart")
	viper.SetDefault("baud", 9600)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// addEndpointFlags registers the shared configuration flags on cmd.
func addEndpointFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("baud", "b", viper.GetInt("baud"), "Baud rate")
	cmd.Flags().Int("data-bits", 8, "Data bits: 5, 6, 7 or 8")
	cmd.Flags().Int("stop-bits", 1, "Stop bits: 1 or 2")
	cmd.Flags().StringP("parity", "p", "none", "Parity: none, even, odd")
	cmd.Flags().StringP("flow-control", "f", "none", "Flow control: none, hardware, software, both")
}

// endpointOptions translates the shared flags into endpoint options.
func endpointOptions(cmd *cobra.Command) ([]uart.Option, error) {
	baud, _ := cmd.Flags().GetInt("baud")
	if !cmd.Flags().Changed("baud") && viper.IsSet("baud") {
		baud = viper.GetInt("baud")
	}
	dataBits, _ := cmd.Flags().GetInt("data-bits")
	stopBits, _ := cmd.Flags().GetInt("stop-bits")
	parityName, _ := cmd.Flags().GetString("parity")
	flowName, _ := cmd.Flags().GetString("flow-control")

	parity, err := parseParity(parityName)
	if err != nil {
		return nil, err
	}

	opts := []uart.Option{
		uart.WithBaudRate(baud),
		uart.WithDataBits(dataBits),
		uart.WithStopBits(stopBits),
		uart.WithParity(parity),
	}

	switch strings.ToLower(flowName) {
	case "none", "":
	case "hardware", "rtscts":
		opts = append(opts, uart.WithHardwareFlowControl(true))
	case "software", "xonxoff":
		opts = append(opts, uart.WithSoftwareFlowControl(true))
	case "both":
		opts = append(opts,
			uart.WithHardwareFlowControl(true),
			uart.WithSoftwareFlowControl(true))
	default:
		return nil, fmt.Errorf("unknown flow control %q (use none, hardware, software or both)", flowName)
	}

	return opts, nil
}

func parseParity(name string) (uart.Parity, error) {
	switch strings.ToLower(name) {
	case "none", "n", "":
		return uart.ParityNone, nil
	case "even", "e":
		return uart.ParityEven, nil
	case "odd", "o":
		return uart.ParityOdd, nil
	default:
		return uart.ParityNone, fmt.Errorf("unknown parity %q (use none, even or odd)", name)
	}
}
