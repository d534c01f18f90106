package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/client"
)

var (
	transferFormat string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the user's memories",
		Long:  longExport,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			export, err := sdk.Export(cmd.Context(), transferFormat)
			if err != nil {
				return err
			}

			if transferFormat == client.FormatCSV {
				fmt.Println(export.Data)
				return nil
			}

			return printJSON(export)
		},
	}

	importCmd = &cobra.Command{
		Use:   "import [file]",
		Short: "Import memories from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			result, err := sdk.Import(cmd.Context(), string(data), transferFormat)
			if err != nil {
				return err
			}

			log.Info("memories imported", "count", result.Imported)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVarP(&transferFormat, "format", "f", client.FormatJSON, "export format (json or csv)")
	importCmd.Flags().StringVarP(&transferFormat, "format", "f", client.FormatJSON, "import format (json or csv)")
}

var longExport = `
Export all of the configured user's memories for backup or migration.

Examples:
  memphora export > memories.json
  memphora export -f csv > memories.csv
`
