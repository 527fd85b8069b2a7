package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cixtor/interview/internal/adapters/clipboard"
	"github.com/cixtor/interview/internal/adapters/editor"
	"github.com/cixtor/interview/internal/adapters/filesystem"
	"github.com/cixtor/interview/internal/application"
	"github.com/cixtor/interview/internal/application/commands"
	"github.com/cixtor/interview/internal/config"
	"github.com/cixtor/interview/internal/ports"
)

var (
	rootPath   string
	configPath string
	verbose    bool
	copyPath   bool

	cfg    *config.Config
	logger *slog.Logger
	repo   ports.RecordRepository
	opener ports.EditorOpener
)

var rootCmd = &cobra.Command{
	Use:   "interview <company> [timestamp]",
	Short: "Manage an archive of interview notes",
	Long: `interview keeps one text record per company contact under a dated
directory tree and opens them in your editor.

Called with a company name it creates a new record, copying the company
metadata from the most recent record of that company.

Timestamps:
  today@HH:MM            today at the given time
  YYYY-MM-DDTHH:MM       explicit minute
  YYYY-MM-DDTHH:MM:SS    explicit second

Examples:
  interview acme                      # new record for Acme, now
  interview acme today@14:30          # new record for Acme, today at 14:30
  interview acme 2024-03-01T09:00     # new record at a given time`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		company := args[0]
		when := ""
		if len(args) == 2 {
			when = args[1]
		}
		ctx := context.Background()

		createCmd := commands.NewCreateCommand(repo, company, when).WithLogger(logger)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		return openRecord(result.Record.Path, result.Line)
	},
}

// Execute runs the root command
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, application.ErrMissingCommand) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "path to the archive (overrides config and $"+config.RootEnv+")")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug details to stderr")
	rootCmd.Flags().BoolVar(&copyPath, "copy", false, "copy the record path to the clipboard")
}

func setup() error {
	cfg = config.NewDefaultConfig()
	if err := config.Load(configPath, cfg); err != nil {
		return err
	}
	if rootPath != "" {
		cfg.Root = rootPath
	}

	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	repo = filesystem.NewRepository(cfg.Root, filesystem.WithLogger(logger))
	opener = editor.NewOpener(cfg.Editor)

	logger.Debug("configuration loaded",
		slog.String("config", configPath),
		slog.String("root", repo.Root()),
		slog.String("log_level", level.String()))
	return nil
}

// requireArg returns a validator for commands taking exactly one argument
func requireArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return &application.MissingArgumentError{Command: cmd.Name(), Argument: name}
		}
		return cobra.ExactArgs(1)(cmd, args)
	}
}

// openRecord hands the record to the editor and optionally copies its path
func openRecord(path string, line int) error {
	if err := opener.Open(path, line); err != nil {
		return err
	}
	logger.Debug("editor started", slog.String("target", editor.Target(path, line)))

	if copyPath {
		if err := (clipboard.System{}).WriteAll(path); err != nil {
			logger.Warn("failed to copy path", slog.String("error", err.Error()))
		}
	}
	return nil
}

// printSuggestions lists known companies close to a name that matched nothing
func printSuggestions(ctx context.Context, company string) {
	suggestions, err := commands.NewSuggestCommand(repo, company).Execute(ctx)
	if err != nil || len(suggestions) == 0 {
		return
	}

	fmt.Fprintln(os.Stderr, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(os.Stderr, "  %s\n", s.Company)
	}
}
