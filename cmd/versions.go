package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	versionsLimit int

	versionsCmd = &cobra.Command{
		Use:   "versions [memory-id]",
		Short: "Show a memory's version history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			versions, err := sdk.GetVersions(cmd.Context(), args[0], versionsLimit)
			if err != nil {
				return err
			}

			if len(versions) == 0 {
				fmt.Println("No versions found.")
				return nil
			}

			for _, version := range versions {
				fmt.Printf("v%d  %s  %s\n", version.Version, version.CreatedAt, version.Content)
			}
			return nil
		},
	}

	rollbackCmd = &cobra.Command{
		Use:   "rollback [memory-id] [version]",
		Short: "Roll a memory back to an earlier version",
		Long:  longRollback,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			target, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("version must be a number: %w", err)
			}

			result, err := sdk.Rollback(cmd.Context(), args[0], target)
			if err != nil {
				return err
			}

			log.Info("memory rolled back", "id", args[0], "version", result.TargetVersion)
			return nil
		},
	}

	diffCmd = &cobra.Command{
		Use:   "diff [version-id-1] [version-id-2]",
		Short: "Compare two versions of a memory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			diff, err := sdk.CompareVersions(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return printJSON(diff)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionsCmd, rollbackCmd, diffCmd)

	versionsCmd.Flags().IntVarP(&versionsLimit, "limit", "l", 20, "maximum number of versions to show")
}

var longRollback = `
Roll a memory back to an earlier version. The rollback itself is recorded
as a new version, so nothing is lost.

Examples:
  memphora rollback mem-1 3
`
