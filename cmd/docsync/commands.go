package main

import (
	"context"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// withApp открывает клиент на время команды; Ctrl+C отменяет контекст
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

var putCmd = &cobra.Command{
	Use:   "put <path> [content]",
	Short: "Create or update a document",
	Long: `Store a new revision of a document locally.
Content is taken from the argument, from --file, or from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContent(cmd, args)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunPut(ctx, args[0], content)
		})
	},
}

func readContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}

	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), nil
}

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show a document with its revision details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunShow(ctx, args[0])
		})
	},
}

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print document content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunCat(ctx, args[0])
		})
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List local documents",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunList(ctx)
		})
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunRemove(ctx, args[0])
		})
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push local changes, pull remote ones and resolve conflicts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunSync(ctx)
		})
	},
}

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "List deferred conflicts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunConflicts(ctx)
		})
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Reopen a deferred conflict",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunResolve(ctx, args[0])
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show login and sync status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunStatus(ctx)
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the device token issued by the server admin",
	Long: `Store the device token issued with 'docsync-server token --node <id>'.
The token is taken from --token, from DOCSYNC_TOKEN or the config file,
or asked for interactively.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			token = v.GetString("token")
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunLogin(ctx, token)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored device token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.cli.RunLogout(ctx)
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "docsync %s\n", Version)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		return nil
	},
}

func init() {
	putCmd.Flags().StringP("file", "f", "", "read content from file")
	loginCmd.Flags().String("token", "", "device token")

	rootCmd.AddCommand(
		putCmd,
		showCmd,
		catCmd,
		listCmd,
		rmCmd,
		syncCmd,
		conflictsCmd,
		resolveCmd,
		statusCmd,
		loginCmd,
		logoutCmd,
		versionCmd,
	)
}
