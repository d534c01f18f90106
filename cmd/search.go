package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchLimit  int
	searchRerank bool

	searchCmd = &cobra.Command{
		Use:   "search [query]",
		Short: "Search memories semantically",
		Long:  longSearch,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")

			if searchRerank {
				memories, err := sdk.SearchReranked(cmd.Context(), query, searchLimit, "")
				if err != nil {
					return err
				}
				printMemories(memories)
				return nil
			}

			memories, err := sdk.Search(cmd.Context(), query, searchLimit)
			if err != nil {
				return err
			}

			printMemories(memories)
			return nil
		},
	}

	contextCmd = &cobra.Command{
		Use:   "context [query]",
		Short: "Build a prompt-ready context block for a query",
		Long:  longContext,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}

			context, err := sdk.GetContext(cmd.Context(), strings.Join(args, " "), searchLimit)
			if err != nil {
				return err
			}

			fmt.Println(context)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(searchCmd, contextCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 5, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchRerank, "rerank", false, "rerank results with the configured reranking provider")
	contextCmd.Flags().IntVarP(&searchLimit, "limit", "l", 5, "maximum number of memories behind the context")
}

var longSearch = `
Search the configured user's memories by semantic similarity.

Examples:
  # Basic search.
  memphora search "coffee preferences"

  # Rerank the top results for higher precision.
  memphora search "coffee preferences" --rerank
`

var longContext = `
Build a context block suitable for injection into an LLM prompt.

Examples:
  memphora context "what does the user like to drink"
`
