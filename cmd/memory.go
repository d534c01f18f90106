package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

var (
	storeMetadata string
	listLimit     int
	clearConfirm  bool

	memoryCmd = &cobra.Command{
		Use:   "memory",
		Short: "Memory operations",
		Long:  `Store, inspect, update and delete individual memories`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	storeCmd = &cobra.Command{
		Use:   "store [content]",
		Short: "Store a new memory",
		Long:  longStore,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			metadata, err := parseMetadata(storeMetadata)
			if err != nil {
				return err
			}

			memory, err := sdk.Store(cmd.Context(), strings.Join(args, " "), metadata)
			if err != nil {
				return err
			}

			log.Info("memory stored", "id", memory.ID)
			return nil
		},
	}

	getCmd = &cobra.Command{
		Use:   "get [memory-id]",
		Short: "Fetch a memory by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			memory, err := sdk.GetMemory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(memory)
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the user's memories",
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			memories, err := sdk.ListMemories(cmd.Context(), listLimit)
			if err != nil {
				return err
			}

			printMemories(memories)
			return nil
		},
	}

	updateCmd = &cobra.Command{
		Use:   "update [memory-id] [content]",
		Short: "Update a memory's content",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			content := strings.Join(args[1:], " ")
			memory, err := sdk.UpdateMemory(cmd.Context(), args[0], &content, nil)
			if err != nil {
				return err
			}

			log.Info("memory updated", "id", memory.ID, "version", memory.Version)
			return nil
		},
	}

	deleteCmd = &cobra.Command{
		Use:   "delete [memory-id]",
		Short: "Delete a memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			if err := sdk.DeleteMemory(cmd.Context(), args[0]); err != nil {
				return err
			}

			log.Info("memory deleted", "id", args[0])
			return nil
		},
	}

	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Delete all of the user's memories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearConfirm {
				return fmt.Errorf("refusing to delete all memories without --yes")
			}

			sdk, err := newSDK()
			if err != nil {
				return err
			}

			result, err := sdk.Clear(cmd.Context())
			if err != nil {
				return err
			}

			log.Info("memories cleared", "user", sdk.UserID(), "count", result.Count)
			return nil
		},
	}
)

// parseMetadata decodes the --metadata flag, which takes inline JSON.
func parseMetadata(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}

	var metadata map[string]any
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil, fmt.Errorf("invalid metadata JSON: %w", err)
	}

	return metadata, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func printMemories(memories []types.Memory) {
	if len(memories) == 0 {
		fmt.Println("No memories found.")
		return
	}

	for i, memory := range memories {
		fmt.Printf("%d. %s\n", i+1, memory.Content)
		if memory.Relevance() > 0 {
			fmt.Printf("   Relevance: %.2f\n", memory.Relevance())
		}
		if memory.ID != "" {
			fmt.Printf("   ID: %s\n", memory.ID)
		}
	}
	fmt.Printf("\n%d result(s)\n", len(memories))
}

func init() {
	rootCmd.AddCommand(memoryCmd)
	memoryCmd.AddCommand(storeCmd, getCmd, listCmd, updateCmd, deleteCmd, clearCmd)

	storeCmd.Flags().StringVarP(&storeMetadata, "metadata", "m", "", "metadata to attach, as inline JSON")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 50, "maximum number of memories to return")
	clearCmd.Flags().BoolVarP(&clearConfirm, "yes", "y", false, "confirm deletion of all memories")
}

var longStore = `
Store a new memory for the configured user.

Examples:
  # Store a plain memory.
  memphora memory store "Prefers dark roast coffee"

  # Attach metadata.
  memphora memory store "Lives in Amsterdam" -m '{"category":"location"}'
`
