package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/shimmertea/shimmer/internal/config"
	"github.com/shimmertea/shimmer/internal/errors"
	"github.com/shimmertea/shimmer/internal/logger"
	"github.com/shimmertea/shimmer/internal/ui"
)

// Global flags available to all subcommands.
var (
	configFlag  string
	noColorFlag bool
)

// rootCmd is the base command for the shimmer CLI.
var rootCmd = &cobra.Command{
	Use:   "shimmer",
	Short: "Animated shimmer effects for terminal UIs",
	Long: `Shimmer renders an animated highlight band sweeping across text,
the terminal equivalent of the loading placeholders used in mobile apps.

The CLI is a showcase and test bench for the library at pkg/shimmer.
Use 'shimmer demo' to preview themes, 'shimmer skeleton' to print static
placeholder frames, and 'shimmer themes' to manage presets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag || os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: .shimmer.yaml, then ~/.config/shimmer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError renders a structured error with its suggestion, falling
// back to a plain message for errors from outside this codebase.
func printError(err error) {
	errStyle := lipgloss.NewStyle().Foreground(ui.ColorError).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		fmt.Fprintln(os.Stderr, errStyle.Render(ui.SymbolFail+" "+appErr.Message))
		if appErr.Cause != nil {
			fmt.Fprintln(os.Stderr, hintStyle.Render("  cause: "+appErr.Cause.Error()))
		}
		if appErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, hintStyle.Render("  "+appErr.Suggestion))
		}
		return
	}
	fmt.Fprintln(os.Stderr, errStyle.Render(ui.SymbolFail+" "+err.Error()))
}

// loadConfig resolves the effective config file for the current
// invocation. A nil config means builtin themes only.
func loadConfig() (*config.Config, error) {
	path, err := config.Find(configFlag)
	if err != nil {
		return nil, err
	}
	if path == "" {
		logger.Default().Debug("no config file found, using builtin themes")
		return nil, nil
	}
	logger.Default().Debug("loading config from %s", path)
	return config.Load(path)
}
