package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/buelldocs/docgen/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example request file",
	Long:  "Writes a complete example YAML request covering both a paystub series and a linked bank statement.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "example_request.yaml"
		if len(args) == 1 {
			filename = args[0]
		}

		request := config.NewInputParser().CreateExampleRequest()
		data, err := yaml.Marshal(request)
		if err != nil {
			return fmt.Errorf("failed to marshal example request: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}

		logger.Info().Str("file", filename).Msg("wrote example request")
		return nil
	},
}
