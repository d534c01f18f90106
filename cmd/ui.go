package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/ui"
)

var (
	uiCmd = &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive memory browser",
		Long:  longUI,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			path := os.Getenv("TEA_LOGFILE")
			if path != "" {
				f, err := tea.LogToFile(path, "memphora")
				if err != nil {
					log.Error("could not open logfile:", "error", err)
					os.Exit(1)
				}
				defer f.Close()
			}

			if _, err := tea.NewProgram(ui.New(sdk), tea.WithAltScreen()).Run(); err != nil {
				log.Error("Error while running program:", "error", err)
				os.Exit(1)
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var longUI = `
Launch the interactive memory browser.

Examples:
  # Browse and search your memories in the terminal.
  memphora ui
`
