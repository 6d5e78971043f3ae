package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/sanmitsu/internal/client/config"
	"github.com/dmitrijs2005/sanmitsu/internal/logging"
)

// appFactory builds the App for a command. Tests replace it.
var appFactory = func(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	return NewApp(ctx, cfg, logger)
}

// NewRootCommand builds the client command tree. Without a subcommand the
// root starts the interactive shell.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sanmitsu",
		Short: "Local-first journal for morning and night practice entries",
		Long: `Local-first journal for morning and night practice entries.

Entries are kept in a local database and synced with the sanmitsu server
whenever a session exists and the server is reachable.

Run without arguments to start the interactive shell.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				a.Run(ctx)
				return nil
			})
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newSyncCommand(),
		newStatusCommand(),
		newListCommand(),
		newBackupCommand(),
	)
	return root
}

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push unsynced entries and pull remote changes",
		Long: `Push unsynced entries and pull remote changes.

Uses the session stored by the last online login; does nothing when there
is none.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error { return a.Sync(ctx) })
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session, unsynced entries and last sync checkpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error { return a.Status(ctx) })
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list [date]",
		Aliases: []string{"l"},
		Short:   "List the entries of a day (today by default)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			return withApp(cmd, func(ctx context.Context, a *App) error { return a.List(ctx, date) })
		},
	}
}

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload a snapshot of the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error { return a.Backup(ctx) })
		},
	}
}

// withApp loads the config from cmd's flags, opens the App and runs fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer := logging.NewFileLogger(logging.FileOptions{
		Path:       cfg.LogFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Level:      cfg.LogLevel,
	})
	defer closer.Close()

	a, err := appFactory(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("start client: %w", err)
	}
	defer func() {
		if err := a.Close(ctx); err != nil {
			logger.Warn(ctx, "closing client", "error", err)
		}
	}()

	a.out = cmd.OutOrStdout()
	a.reader = bufio.NewReader(cmd.InOrStdin())

	return fn(ctx, a)
}
