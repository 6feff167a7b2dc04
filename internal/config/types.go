package config

import (
	"strings"
	"time"

	"github.com/shimmertea/shimmer/internal/errors"
	"github.com/shimmertea/shimmer/pkg/shimmer"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .shimmer.yaml configuration file.
type Config struct {
	Version int              `yaml:"version" mapstructure:"version"`
	Default string           `yaml:"default" mapstructure:"default"`
	Themes  map[string]Theme `yaml:"themes" mapstructure:"themes"`
}

// Theme is a named shimmer preset: colors, band geometry, timing, and
// compositing mode. Zero-valued fields fall back to the library defaults.
type Theme struct {
	// Description is shown by 'shimmer themes'.
	Description string `yaml:"description,omitempty" mapstructure:"description"`

	// BaseColor, BandColor, and BackdropColor are hex colors for the
	// content foreground, the band highlight, and the assumed terminal
	// background.
	BaseColor     string `yaml:"base_color,omitempty" mapstructure:"base_color"`
	BandColor     string `yaml:"band_color,omitempty" mapstructure:"band_color"`
	BackdropColor string `yaml:"backdrop_color,omitempty" mapstructure:"backdrop_color"`

	// Band is the extra margin beyond the unit interval (0 = default).
	Band float64 `yaml:"band,omitempty" mapstructure:"band"`

	// Mode is the compositing strategy: mask, overlay, or background.
	Mode string `yaml:"mode,omitempty" mapstructure:"mode"`
	// Blend is the overlay blend mode: sourceAtop, screen, or multiply.
	Blend string `yaml:"blend,omitempty" mapstructure:"blend"`
	// Direction is the reading order: ltr or rtl.
	Direction string `yaml:"direction,omitempty" mapstructure:"direction"`

	// Duration and Delay accept Go duration strings ("1500ms", "2s").
	Duration time.Duration `yaml:"duration,omitempty" mapstructure:"duration"`
	Delay    time.Duration `yaml:"delay,omitempty" mapstructure:"delay"`
	// Bounce reverses the sweep at each end instead of wrapping.
	Bounce bool `yaml:"bounce,omitempty" mapstructure:"bounce"`
	// Ease names a curve from the supported set (see 'shimmer demo --help').
	Ease string `yaml:"ease,omitempty" mapstructure:"ease"`
	// FPS is the redraw rate (0 = default).
	FPS int `yaml:"fps,omitempty" mapstructure:"fps"`

	// EdgeOpacity and CenterOpacity shape the canonical three-stop band.
	// Ignored when Stops is set.
	EdgeOpacity   float64 `yaml:"edge_opacity,omitempty" mapstructure:"edge_opacity"`
	CenterOpacity float64 `yaml:"center_opacity,omitempty" mapstructure:"center_opacity"`

	// Stops is an optional explicit stop list overriding the
	// edge/center opacities.
	Stops []ThemeStop `yaml:"stops,omitempty" mapstructure:"stops"`
}

// ThemeStop mirrors shimmer.Stop in the config schema.
type ThemeStop struct {
	Position float64 `yaml:"position" mapstructure:"position"`
	Opacity  float64 `yaml:"opacity" mapstructure:"opacity"`
	Color    string  `yaml:"color,omitempty" mapstructure:"color"`
}

// EffectConfig converts the theme into a validated shimmer configuration.
func (t Theme) EffectConfig() (shimmer.Config, error) {
	cfg := shimmer.DefaultConfig()
	cfg.BaseColor = t.BaseColor
	cfg.BandColor = t.BandColor
	cfg.BackdropColor = t.BackdropColor

	if t.Band != 0 {
		cfg.Band = t.Band
	}
	if t.FPS != 0 {
		cfg.FPS = t.FPS
	}

	mode, err := ParseMode(t.Mode)
	if err != nil {
		return shimmer.Config{}, err
	}
	blend, err := ParseBlend(t.Blend)
	if err != nil {
		return shimmer.Config{}, err
	}
	cfg.Strategy = shimmer.Strategy{Mode: mode, Blend: blend}

	cfg.Direction, err = ParseDirection(t.Direction)
	if err != nil {
		return shimmer.Config{}, err
	}

	easeFn, err := shimmer.EaseByName(t.Ease)
	if err != nil {
		return shimmer.Config{}, errors.WrapWithCode(err, errors.ErrTheme,
			"Unknown ease in theme",
			"Pick one of: "+joinEaseNames())
	}
	duration := t.Duration
	if duration == 0 {
		duration = shimmer.DefaultTiming().Duration
	}
	cfg.Timing = shimmer.Timing{
		Duration:    duration,
		Delay:       t.Delay,
		AutoReverse: t.Bounce,
		Repeat:      true,
		Ease:        easeFn,
	}

	gradient, err := t.gradient()
	if err != nil {
		return shimmer.Config{}, err
	}
	cfg.Gradient = gradient

	return cfg, nil
}

func (t Theme) gradient() (shimmer.Gradient, error) {
	if len(t.Stops) > 0 {
		stops := make([]shimmer.Stop, len(t.Stops))
		for i, s := range t.Stops {
			stops[i] = shimmer.Stop{Position: s.Position, Opacity: s.Opacity, Color: s.Color}
		}
		g, err := shimmer.NewGradientStops(stops)
		if err != nil {
			return shimmer.Gradient{}, errors.WrapWithCode(err, errors.ErrTheme,
				"Invalid gradient stops in theme",
				"Positions must be non-decreasing within [0,1] and opacities within [0,1]")
		}
		return g, nil
	}

	edge := t.EdgeOpacity
	center := t.CenterOpacity
	if edge == 0 && center == 0 {
		return shimmer.DefaultGradient(), nil
	}
	if center == 0 {
		center = shimmer.DefaultCenterOpacity
	}
	g, err := shimmer.NewGradient(edge, center)
	if err != nil {
		return shimmer.Gradient{}, errors.WrapWithCode(err, errors.ErrTheme,
			"Invalid gradient opacities in theme",
			"edge_opacity and center_opacity must be within [0,1]")
	}
	return g, nil
}

// ParseMode maps a config/flag string onto a compositing mode.
// Empty input means mask.
func ParseMode(s string) (shimmer.Mode, error) {
	switch s {
	case "", "mask":
		return shimmer.Mask, nil
	case "overlay":
		return shimmer.Overlay, nil
	case "background":
		return shimmer.Background, nil
	default:
		return 0, errors.New(errors.ErrTheme,
			"Unknown compositing mode: "+s,
			"Use mask, overlay, or background")
	}
}

// ParseBlend maps a config/flag string onto an overlay blend mode.
// Empty input means sourceAtop.
func ParseBlend(s string) (shimmer.BlendMode, error) {
	switch s {
	case "", "sourceAtop":
		return shimmer.BlendSourceAtop, nil
	case "screen":
		return shimmer.BlendScreen, nil
	case "multiply":
		return shimmer.BlendMultiply, nil
	default:
		return 0, errors.New(errors.ErrTheme,
			"Unknown blend mode: "+s,
			"Use sourceAtop, screen, or multiply")
	}
}

// ParseDirection maps a config/flag string onto a sweep direction.
// Empty input means ltr.
func ParseDirection(s string) (shimmer.Direction, error) {
	switch s {
	case "", "ltr":
		return shimmer.LeftToRight, nil
	case "rtl":
		return shimmer.RightToLeft, nil
	default:
		return 0, errors.New(errors.ErrTheme,
			"Unknown direction: "+s,
			"Use ltr or rtl")
	}
}

func joinEaseNames() string {
	return strings.Join(shimmer.EaseNames(), ", ")
}
