package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shimmertea/shimmer/internal/config"
	"github.com/shimmertea/shimmer/internal/errors"
	"github.com/shimmertea/shimmer/pkg/shimmer"
)

var (
	skeletonWidth    int
	skeletonLines    int
	skeletonTheme    string
	skeletonProgress float64
	skeletonRedact   string
)

var skeletonCmd = &cobra.Command{
	Use:   "skeleton",
	Short: "Print a static skeleton placeholder frame",
	Long: `Render placeholder blocks styled by a theme, frozen at a single
point of the sweep. Useful for scripting and for eyeballing a theme's
colors without the animation.

With --redact, the given text is blanked out into placeholder blocks
first, so real layouts can be previewed without their contents.

Examples:
  shimmer skeleton
  shimmer skeleton --lines 5 --width 60
  shimmer skeleton --theme neon --progress 0.5
  shimmer skeleton --redact "$(git log --oneline -3)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return skeletonCommand(cmd.OutOrStdout().Write)
	},
}

func init() {
	rootCmd.AddCommand(skeletonCmd)
	f := skeletonCmd.Flags()
	f.IntVar(&skeletonWidth, "width", 0, "placeholder width (default: terminal width, capped at 60)")
	f.IntVar(&skeletonLines, "lines", 3, "number of placeholder lines")
	f.StringVar(&skeletonTheme, "theme", "", "theme name (builtin or from config)")
	f.Float64Var(&skeletonProgress, "progress", 0.35, "freeze the sweep at this progress (0..1)")
	f.StringVar(&skeletonRedact, "redact", "", "blank out this text instead of generating placeholder lines")
}

func skeletonCommand(write func([]byte) (int, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme, ok := config.ResolveTheme(cfg, skeletonTheme)
	if !ok {
		return errors.New(errors.ErrTheme,
			"Unknown theme: "+skeletonTheme,
			"Run 'shimmer themes' to list available themes")
	}

	frame, err := renderSkeletonFrame(theme, skeletonFrameOptions{
		Width:    skeletonWidth,
		Lines:    skeletonLines,
		Progress: skeletonProgress,
		Redact:   skeletonRedact,
	})
	if err != nil {
		return err
	}

	_, err = write([]byte(frame + "\n"))
	return err
}

// skeletonFrameOptions shape a single static frame.
type skeletonFrameOptions struct {
	Width    int
	Lines    int
	Progress float64
	Redact   string
}

// renderSkeletonFrame produces one styled frame of placeholder content.
func renderSkeletonFrame(theme config.Theme, opts skeletonFrameOptions) (string, error) {
	if opts.Progress < 0 || opts.Progress > 1 {
		return "", errors.New(errors.ErrRender,
			fmt.Sprintf("Progress %.2f is outside [0, 1]", opts.Progress),
			"Pass --progress between 0 and 1")
	}
	if opts.Lines < 1 {
		return "", errors.New(errors.ErrRender,
			"At least one placeholder line is required",
			"Pass --lines 1 or more")
	}

	content := opts.Redact
	if content != "" {
		content = shimmer.Redact(content)
	} else {
		content = shimmer.PlaceholderParagraph(skeletonContentWidth(opts.Width), opts.Lines)
	}

	effectCfg, err := theme.EffectConfig()
	if err != nil {
		return "", err
	}
	effect, err := shimmer.New(effectCfg)
	if err != nil {
		return "", err
	}
	return effect.RenderAt(content, opts.Progress), nil
}

// skeletonContentWidth picks a sensible width when the flag is unset:
// the terminal width capped at 60, or 40 when not attached to a tty.
func skeletonContentWidth(flag int) int {
	if flag > 0 {
		return flag
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return min(w, 60)
	}
	return 40
}
