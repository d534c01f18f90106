package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	growthDays int

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show memory statistics for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			stats, err := sdk.GetStatistics(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(stats)
		},
	}

	growthCmd = &cobra.Command{
		Use:   "growth",
		Short: "Show memory growth over time",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			growth, err := sdk.GetMemoryGrowth(cmd.Context(), growthDays)
			if err != nil {
				return err
			}

			return printJSON(growth)
		},
	}

	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check the availability of the Memphora API",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			health, err := sdk.Health(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("status: %s\n", health.Status)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(statsCmd, growthCmd, healthCmd)

	growthCmd.Flags().IntVarP(&growthDays, "days", "d", 30, "number of days to report")
}
