package config

import (
	"fmt"

	"github.com/shimmertea/shimmer/internal/errors"
)

// Validate checks the loaded config for structural problems. Theme
// contents are validated by building the effect configuration, which is
// where band sizes, colors, and stop lists are actually checked.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config version %d is newer than this build supports (%d)",
				cfg.Version, CurrentConfigVersion),
			"Update shimmer or lower the version field")
	}

	if cfg.Default != "" {
		if _, ok := cfg.Themes[cfg.Default]; !ok {
			if _, ok := BuiltinThemes[cfg.Default]; !ok {
				return errors.New(errors.ErrConfig,
					"Default theme not found: "+cfg.Default,
					"Define it under themes: or use a builtin name")
			}
		}
	}

	for name, theme := range cfg.Themes {
		if _, err := theme.EffectConfig(); err != nil {
			return errors.WrapWithCode(err, errors.ErrTheme,
				"Theme '"+name+"' is invalid",
				"Fix the theme definition or remove it")
		}
	}
	return nil
}
