package config

// BuiltinThemes are the presets available without any config file.
// A user theme with the same name overrides the builtin.
var BuiltinThemes = map[string]Theme{
	"classic": {
		Description: "Default mask shimmer over dimmed content",
	},
	"neon": {
		Description: "Cyan band on a dark backdrop",
		BandColor:   "#00e5ff",
		BaseColor:   "#9aa5ce",
		EdgeOpacity: 0.2,
	},
	"sheen": {
		Description: "Overlay screen-blend lighting sweep",
		Mode:        "overlay",
		Blend:       "screen",
		BandColor:   "#ffffff",
	},
	"ghost": {
		Description: "Band glides behind the content",
		Mode:        "background",
		BandColor:   "#b15fff",
	},
	"pulse": {
		Description: "Spring-eased bounce",
		Bounce:      true,
		Ease:        "spring",
	},
}

// DefaultThemeName is used when neither flag nor config names a theme.
const DefaultThemeName = "classic"

// ResolveTheme finds a theme by name, letting user themes from cfg
// shadow builtins. cfg may be nil when no config file was found.
func ResolveTheme(cfg *Config, name string) (Theme, bool) {
	if name == "" {
		if cfg != nil && cfg.Default != "" {
			name = cfg.Default
		} else {
			name = DefaultThemeName
		}
	}
	if cfg != nil {
		if t, ok := cfg.Themes[name]; ok {
			return t, true
		}
	}
	t, ok := BuiltinThemes[name]
	return t, ok
}

// ThemeNames returns the names visible to the user: builtins plus any
// themes from cfg, deduplicated.
func ThemeNames(cfg *Config) []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(BuiltinThemes))
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	// Stable, curated order for the builtins.
	for _, n := range []string{"classic", "neon", "sheen", "ghost", "pulse"} {
		add(n)
	}
	if cfg != nil {
		for n := range cfg.Themes {
			add(n)
		}
	}
	return names
}
