package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cixtor/interview/internal/adapters/clipboard"
	"github.com/cixtor/interview/internal/adapters/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a recent record interactively",
	Long: `Browse the most recent records of the current year.

Keys:
  j/k      move
  enter    open the record at its last boundary
  y        copy the record path
  r        reload
  q        quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tui.NewApp(repo, opener, clipboard.System{})

		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
