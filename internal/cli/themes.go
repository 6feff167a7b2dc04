package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shimmertea/shimmer/internal/config"
	"github.com/shimmertea/shimmer/internal/errors"
	"github.com/shimmertea/shimmer/internal/ui"
)

var themesInitForce bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available shimmer themes",
	Long: `List every theme visible to the current invocation: the builtins
plus any themes defined in your config file. User themes with a builtin
name shadow the builtin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ui.PrintHeader(ui.HeaderInfo{
			Version: formatVersion(version),
			Tagline: "Animated shimmer effects for terminal UIs",
		})
		fmt.Print(renderThemeList(cfg))
		return nil
	},
}

var themesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .shimmer.yaml",
	Long: `Write a starter configuration file to the current directory.

The generated file defines one example theme so the schema is easy to
copy from. Existing files are never overwritten unless --force is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return themesInitCommand(config.ConfigFileName, themesInitForce)
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesInitCmd)
	themesInitCmd.Flags().BoolVar(&themesInitForce, "force", false, "overwrite an existing config file")
}

// renderThemeList formats the theme table shown by 'shimmer themes'.
func renderThemeList(cfg *config.Config) string {
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorNeonCyan).Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	defaultName := config.DefaultThemeName
	if cfg != nil && cfg.Default != "" {
		defaultName = cfg.Default
	}

	out := ""
	for _, name := range config.ThemeNames(cfg) {
		theme, ok := config.ResolveTheme(cfg, name)
		if !ok {
			continue
		}
		marker := "  "
		if name == defaultName {
			marker = defaultStyle.Render(ui.SymbolActive) + " "
		}
		line := marker + nameStyle.Render(fmt.Sprintf("%-10s", name))
		if theme.Description != "" {
			line += " " + descStyle.Render(theme.Description)
		}
		out += line + "\n"
	}
	return out
}

// starterConfig is the config written by 'shimmer themes init'.
func starterConfig() *config.Config {
	return &config.Config{
		Version: config.CurrentConfigVersion,
		Default: "glint",
		Themes: map[string]config.Theme{
			"glint": {
				Description: "Example theme: tweak freely",
				BandColor:   "#e0def4",
				Band:        0.3,
				Ease:        "inOutQuad",
			},
		},
	}
}

func themesInitCommand(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			path+" already exists",
			"Pass --force to overwrite it")
	}

	data, err := yaml.Marshal(starterConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# Shimmer theme configuration
# Themes defined here are available to 'shimmer demo --theme <name>'
# and shadow builtins of the same name.
#
# Timing fields accept Go duration strings, e.g. "duration: 1200ms".

`
	if err := os.WriteFile(path, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, path)
	fmt.Println("Next steps:")
	fmt.Println("  shimmer themes            - List themes (yours included)")
	fmt.Println("  shimmer demo --theme glint - Preview the example theme")
	return nil
}
