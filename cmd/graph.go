package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/types"
)

var (
	linkRelationship string
	relatedLimit     int

	graphCmd = &cobra.Command{
		Use:   "graph",
		Short: "Memory graph operations",
		Long:  `Link memories together and walk the resulting relationship graph`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	linkCmd = &cobra.Command{
		Use:   "link [source-id] [target-id]",
		Short: "Link two memories",
		Long:  longLink,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			link, err := sdk.Link(cmd.Context(), args[0], args[1], linkRelationship)
			if err != nil {
				return err
			}

			log.Info("memories linked", "source", link.SourceID, "target", link.TargetID, "relationship", link.RelationshipType)
			return nil
		},
	}

	pathCmd = &cobra.Command{
		Use:   "path [source-id] [target-id]",
		Short: "Find the path between two memories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			path, err := sdk.FindPath(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if !path.Found {
				fmt.Println("No path found.")
				return nil
			}

			for i, memory := range path.Path {
				fmt.Printf("%d. %s (%s)\n", i+1, memory.Content, memory.ID)
			}
			return nil
		},
	}

	relatedCmd = &cobra.Command{
		Use:   "related [memory-id]",
		Short: "Show memories related to a memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			memories, err := sdk.GetRelatedMemories(cmd.Context(), args[0], relatedLimit)
			if err != nil {
				return err
			}

			printMemories(memories)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.AddCommand(linkCmd, pathCmd, relatedCmd)

	linkCmd.Flags().StringVarP(&linkRelationship, "relationship", "r", types.RelRelated, "relationship type for the link")
	relatedCmd.Flags().IntVarP(&relatedLimit, "limit", "l", 10, "maximum number of related memories")
}

var longLink = `
Create a typed link between two memories.

Examples:
  memphora graph link mem-1 mem-2 -r supports
  memphora graph link mem-1 mem-3 -r contradicts
`
