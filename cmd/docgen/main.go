package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	debugMode bool
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Generate novelty paystubs and bank statements",
	Long: `docgen computes paystub series and bank statement balances from a
YAML request file and renders them as console, HTML, CSV, or JSON output.

All documents are for novelty and educational purposes only.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if debugMode {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(paystubsCmd)
	rootCmd.AddCommand(statementCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
