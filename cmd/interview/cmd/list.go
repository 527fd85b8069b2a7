package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cixtor/interview/internal/application"
	"github.com/cixtor/interview/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list <company>",
	Short: "List every record of a company",
	Long: `List every record of a company, oldest first.

Unlike the other commands, list fails when a directory of the archive
cannot be read instead of silently skipping it.

Examples:
  interview list acme`,
	Args: requireArg("company"),
	RunE: func(cmd *cobra.Command, args []string) error {
		company := args[0]
		ctx := context.Background()

		listCmd := commands.NewListCommand(repo, company)
		records, err := listCmd.Execute(ctx)
		if err != nil {
			if errors.Is(err, application.ErrRecordNotFound) {
				printSuggestions(ctx, company)
			}
			return err
		}

		for _, r := range records {
			fmt.Println(r)
		}
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent records of the year",
	Long: `List the ten most recent records of the current year, oldest first.

Examples:
  interview recent`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		records, err := commands.NewRecentCommand(repo).Execute(ctx)
		if err != nil {
			return err
		}

		for _, r := range records {
			fmt.Println(r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(recentCmd)
}
