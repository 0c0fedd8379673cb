package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/modu-ai/liftoff/internal/i18n"
	"github.com/modu-ai/liftoff/pkg/version"
)

var rootCmd = newRootCmd()

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "liftoff",
		Short: "liftoff: game project generator",
		Long: `liftoff generates ready-to-build multi-platform libGDX projects.

It writes a multi-module Gradle tree with build scripts, launchers, source
directories and assets for the platforms, JVM languages and extensions you
choose, and can run Gradle on the result.`,
		Version:           version.GetVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: setupDependencies,
	}
	root.SetVersionTemplate(fmt.Sprintf("liftoff %s\n", version.GetVersion()))

	root.PersistentFlags().BoolP("verbose", "v", false, "Write debug diagnostics to stderr")
	root.PersistentFlags().String("locale", "", "Language for messages, such as en or ko (default: $LIFTOFF_LOCALE, then $LANG)")

	root.AddCommand(newNewCmd(), newListCmd(), newVersionCmd())
	return root
}

// Execute runs the root command. Generation stops between stages when ctx
// is cancelled.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setupDependencies wires the global dependencies before any command runs.
func setupDependencies(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if getBoolFlag(cmd, "verbose") {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if err := InitDependencies(logger); err != nil {
		return err
	}
	if getBoolFlag(cmd, "verbose") {
		deps.Logger = logger
	}
	return nil
}

// localizer picks the message locale: --locale, then envLocale, then the
// POSIX locale variables.
func localizer(cmd *cobra.Command, envLocale string) (*i18n.Localizer, error) {
	candidates := []string{getStringFlag(cmd, "locale"), envLocale}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		candidates = append(candidates, deps.getenv(key))
	}
	for _, c := range candidates {
		if c != "" && c != "C" && c != "POSIX" {
			return i18n.New(c)
		}
	}
	return i18n.New("")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringSliceFlag retrieves a string slice flag value from the command.
func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return val
}
