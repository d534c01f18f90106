package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	webhookEvents []string
	webhookSecret string

	webhookCmd = &cobra.Command{
		Use:   "webhook",
		Short: "Webhook subscription management",
		Long:  `Register, inspect and remove webhook subscriptions for memory events`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	webhookCreateCmd = &cobra.Command{
		Use:   "create [url]",
		Short: "Register a webhook",
		Long:  longWebhookCreate,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			webhook, err := sdk.CreateWebhook(cmd.Context(), args[0], webhookEvents, webhookSecret)
			if err != nil {
				return err
			}

			log.Info("webhook created", "id", webhook.ID, "url", webhook.URL)
			return nil
		},
	}

	webhookListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			webhooks, err := sdk.ListWebhooks(cmd.Context())
			if err != nil {
				return err
			}

			if len(webhooks) == 0 {
				fmt.Println("No webhooks registered.")
				return nil
			}

			for _, webhook := range webhooks {
				fmt.Printf("%s  %s  events=%v active=%t\n", webhook.ID, webhook.URL, webhook.Events, webhook.Active)
			}
			return nil
		},
	}

	webhookDeleteCmd = &cobra.Command{
		Use:   "delete [webhook-id]",
		Short: "Remove a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			if err := sdk.DeleteWebhook(cmd.Context(), args[0]); err != nil {
				return err
			}

			log.Info("webhook deleted", "id", args[0])
			return nil
		},
	}

	webhookTestCmd = &cobra.Command{
		Use:   "test [webhook-id]",
		Short: "Send a test delivery to a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			result, err := sdk.TestWebhook(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}
)

func init() {
	rootCmd.AddCommand(webhookCmd)
	webhookCmd.AddCommand(webhookCreateCmd, webhookListCmd, webhookDeleteCmd, webhookTestCmd)

	webhookCreateCmd.Flags().StringSliceVarP(&webhookEvents, "events", "e", []string{"memory.created"}, "events to subscribe to")
	webhookCreateCmd.Flags().StringVarP(&webhookSecret, "secret", "s", "", "secret used to sign deliveries")
}

var longWebhookCreate = `
Register a webhook endpoint that receives memory events.

Examples:
  memphora webhook create https://example.com/hooks -e memory.created,memory.updated
`
