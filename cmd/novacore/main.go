package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "novacore",
	Short: "novacore - execution-to-trade derivation and analytics engine",
	Long: `novacore turns a stream of normalized broker executions into
round-trip trades (FIFO position matching across partial fills) and
computes derived performance analytics, including the Nova Score.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
