package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shimmertea/shimmer/internal/config"
	"github.com/shimmertea/shimmer/internal/errors"
	"github.com/shimmertea/shimmer/internal/logger"
	"github.com/shimmertea/shimmer/internal/ui"
	"github.com/shimmertea/shimmer/pkg/shimmer"
)

// demoFlags collects the per-invocation overrides for the demo command.
// Only flags the user actually set override the resolved theme.
type demoFlags struct {
	Theme       string
	Text        string
	Duration    time.Duration
	Delay       time.Duration
	Band        float64
	Mode        string
	Blend       string
	Direction   string
	Ease        string
	FPS         int
	Bounce      bool
	Interactive bool
}

var demoFlagValues demoFlags

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Preview a shimmer theme in an interactive TUI",
	Long: `Run a full-screen preview of the shimmer effect.

The demo loads a theme (builtin or from your config file) and sweeps the
band across sample content. Any flag you pass overrides the matching
theme field for this run only.

Examples:
  shimmer demo
  shimmer demo --theme neon
  shimmer demo --mode overlay --blend screen
  shimmer demo --text "loading the good stuff" --bounce --ease spring
  shimmer demo --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoCommand(cmd, demoFlagValues)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	f := demoCmd.Flags()
	f.StringVar(&demoFlagValues.Theme, "theme", "", "theme name (builtin or from config)")
	f.StringVar(&demoFlagValues.Text, "text", "", "content to shimmer instead of the sample card")
	f.DurationVar(&demoFlagValues.Duration, "duration", 0, "sweep duration (e.g. 1500ms, 2s)")
	f.DurationVar(&demoFlagValues.Delay, "delay", 0, "pause before each sweep starts")
	f.Float64Var(&demoFlagValues.Band, "band", 0, "band margin beyond the content edges (0..1)")
	f.StringVar(&demoFlagValues.Mode, "mode", "", "compositing mode: mask, overlay, background")
	f.StringVar(&demoFlagValues.Blend, "blend", "", "overlay blend: sourceAtop, screen, multiply")
	f.StringVar(&demoFlagValues.Direction, "direction", "", "sweep direction: ltr, rtl")
	f.StringVar(&demoFlagValues.Ease, "ease", "", "easing curve (linear, inOutQuad, spring, ...)")
	f.IntVar(&demoFlagValues.FPS, "fps", 0, "redraw rate")
	f.BoolVar(&demoFlagValues.Bounce, "bounce", false, "reverse at each end instead of wrapping")
	f.BoolVarP(&demoFlagValues.Interactive, "interactive", "i", false, "pick the theme from a menu")
}

func demoCommand(cmd *cobra.Command, flags demoFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	themeName := flags.Theme
	if flags.Interactive {
		if !ui.IsInteractive() {
			return errors.New(errors.ErrConfig,
				"Interactive picker needs a terminal",
				"Pass --theme instead when running non-interactively")
		}
		themeName, err = pickTheme(cfg)
		if err != nil {
			return err
		}
	}

	theme, ok := config.ResolveTheme(cfg, themeName)
	if !ok {
		return errors.New(errors.ErrTheme,
			"Unknown theme: "+themeName,
			"Run 'shimmer themes' to list available themes")
	}
	theme = applyOverrides(theme, flags, cmd.Flags().Changed)

	effectCfg, err := theme.EffectConfig()
	if err != nil {
		return err
	}
	effect, err := shimmer.New(effectCfg)
	if err != nil {
		return err
	}
	logger.Default().Debug("demo: theme=%s mode=%s fps=%d duration=%s",
		displayThemeName(cfg, themeName), effectCfg.Strategy.Mode, effectCfg.FPS, effectCfg.Timing.Duration)

	model := newDemoModel(effect, demoContent(flags.Text), displayThemeName(cfg, themeName))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// pickTheme shows the huh-based theme picker.
func pickTheme(cfg *config.Config) (string, error) {
	names := config.ThemeNames(cfg)
	items := make([]ui.PickItem, 0, len(names))
	for _, name := range names {
		theme, _ := config.ResolveTheme(cfg, name)
		items = append(items, ui.PickItem{Key: name, Label: name, Detail: theme.Description})
	}
	return ui.Pick("Pick a theme", items)
}

// applyOverrides copies flag values onto the theme for every flag the
// user explicitly set. changed reports whether a flag was passed.
func applyOverrides(theme config.Theme, flags demoFlags, changed func(string) bool) config.Theme {
	if changed("duration") {
		theme.Duration = flags.Duration
	}
	if changed("delay") {
		theme.Delay = flags.Delay
	}
	if changed("band") {
		theme.Band = flags.Band
	}
	if changed("mode") {
		theme.Mode = flags.Mode
	}
	if changed("blend") {
		theme.Blend = flags.Blend
	}
	if changed("direction") {
		theme.Direction = flags.Direction
	}
	if changed("ease") {
		theme.Ease = flags.Ease
	}
	if changed("fps") {
		theme.FPS = flags.FPS
	}
	if changed("bounce") {
		theme.Bounce = flags.Bounce
	}
	return theme
}

// displayThemeName resolves the name shown in the demo header when the
// user did not name a theme explicitly.
func displayThemeName(cfg *config.Config, name string) string {
	if name != "" {
		return name
	}
	if cfg != nil && cfg.Default != "" {
		return cfg.Default
	}
	return config.DefaultThemeName
}

// demoContent builds the sample card the band sweeps across.
func demoContent(text string) string {
	if text != "" {
		return text
	}
	rows := shimmer.PlaceholderRows(3, 38, 30, 34)
	return strings.Join([]string{
		"Fetching workspace",
		"",
		rows[0],
		rows[1],
		rows[2],
	}, "\n")
}

// demoKeys are the key bindings shown in the demo help bar.
type demoKeys struct {
	Toggle  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k demoKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Restart, k.Quit}
}

func (k demoKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Restart, k.Quit}}
}

func newDemoKeys() demoKeys {
	return demoKeys{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart sweep"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// demoModel wraps the shimmer component with chrome: a header, a help
// bar, and pause/restart key bindings.
type demoModel struct {
	shimmer shimmer.Model
	help    help.Model
	keys    demoKeys
	theme   string
	active  bool
	width   int
}

func newDemoModel(effect *shimmer.Effect, content, theme string) demoModel {
	return demoModel{
		shimmer: shimmer.NewModel(effect, content),
		help:    help.New(),
		keys:    newDemoKeys(),
		theme:   theme,
		active:  true,
	}
}

func (m demoModel) Init() tea.Cmd {
	return m.shimmer.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.active = !m.active
			var cmd tea.Cmd
			m.shimmer, cmd = m.shimmer.SetActive(m.active)
			return m, cmd
		case key.Matches(msg, m.keys.Restart):
			m.shimmer, _ = m.shimmer.SetActive(false)
			var cmd tea.Cmd
			m.shimmer, cmd = m.shimmer.SetActive(true)
			m.active = true
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.shimmer, cmd = m.shimmer.Update(msg)
	return m, cmd
}

func (m demoModel) View() string {
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	status := ui.SymbolActive + " sweeping"
	if !m.active {
		status = ui.SymbolPaused + " paused"
	}

	var b strings.Builder
	b.WriteString(ui.GradientText("shimmer demo"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  theme: %s  %s", m.theme, status)))
	b.WriteString("\n\n")
	b.WriteString(m.shimmer.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
