package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cixtor/interview/internal/application"
	"github.com/cixtor/interview/internal/application/commands"
)

var openCmd = &cobra.Command{
	Use:   "open <company>",
	Short: "Open the latest record of a company",
	Long: `Open the most recent record of a company in your editor.

The cursor is placed on the last multipart boundary line of the record,
right where the next section goes.

Examples:
  interview open acme`,
	Args: requireArg("company"),
	RunE: func(cmd *cobra.Command, args []string) error {
		company := args[0]
		ctx := context.Background()

		openCmd := commands.NewOpenCommand(repo, company)
		result, err := openCmd.Execute(ctx)
		if err != nil {
			if errors.Is(err, application.ErrRecordNotFound) {
				printSuggestions(ctx, company)
			}
			return err
		}
		fmt.Println(result.Path)

		return openRecord(result.Path, result.Line)
	},
}

func init() {
	openCmd.Flags().BoolVar(&copyPath, "copy", false, "copy the record path to the clipboard")
	rootCmd.AddCommand(openCmd)
}
