package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	gdprConfirm bool

	gdprCmd = &cobra.Command{
		Use:   "gdpr",
		Short: "GDPR data subject operations",
		Long:  `Export or erase everything the platform holds about the configured user`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	gdprExportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export all data held for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			data, err := sdk.ExportGDPR(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(data)
		},
	}

	gdprDeleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Erase all data held for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gdprConfirm {
				return fmt.Errorf("refusing to erase user data without --yes")
			}

			sdk, err := newSDK()
			if err != nil {
				return err
			}

			result, err := sdk.DeleteGDPR(cmd.Context())
			if err != nil {
				return err
			}

			log.Info("user data erased", "user", sdk.UserID(), "result", result)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(gdprCmd)
	gdprCmd.AddCommand(gdprExportCmd, gdprDeleteCmd)

	gdprDeleteCmd.Flags().BoolVarP(&gdprConfirm, "yes", "y", false, "confirm permanent erasure")
}
