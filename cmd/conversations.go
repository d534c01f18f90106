package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	conversationsLimit    int
	conversationsPlatform string

	conversationsCmd = &cobra.Command{
		Use:   "conversations",
		Short: "List recorded conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			conversations, err := sdk.GetConversations(cmd.Context(), conversationsPlatform, conversationsLimit)
			if err != nil {
				return err
			}

			if len(conversations) == 0 {
				fmt.Println("No conversations found.")
				return nil
			}

			for _, conversation := range conversations {
				fmt.Printf("%s  %s  %d message(s)\n", conversation.ID, conversation.Platform, len(conversation.Messages))
			}
			return nil
		},
	}

	summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Show the user's rolling conversation summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			summary, err := sdk.GetSummary(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(summary.Summary)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(conversationsCmd, summaryCmd)

	conversationsCmd.Flags().IntVarP(&conversationsLimit, "limit", "l", 20, "maximum number of conversations")
	conversationsCmd.Flags().StringVarP(&conversationsPlatform, "platform", "p", "", "filter by platform")
}
