package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cixtor/interview/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the archive (reserved)",
	Long: `Search records by content.

This command is reserved and currently matches nothing.

Examples:
  interview search golang`,
	Args: requireArg("query"),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		ctx := context.Background()

		searchCmd := commands.NewSearchCommand(repo, query)
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, r := range results {
			fmt.Println(r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
