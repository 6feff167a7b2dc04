package shimmer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fogleman/ease"
)

// Timing construction errors.
var (
	ErrDuration    = errors.New("shimmer: timing duration must be positive")
	ErrDelay       = errors.New("shimmer: timing delay cannot be negative")
	ErrUnknownEase = errors.New("shimmer: unknown ease name")
)

// EaseFunc maps normalized sweep progress [0, 1] to eased progress.
// The functions from github.com/fogleman/ease satisfy this shape directly.
type EaseFunc func(float64) float64

// Timing is the explicit value curve driving the shimmer phase: the host
// tick loop supplies elapsed wall time, Timing turns it into progress.
// It owns no clock and no scheduler.
type Timing struct {
	// Duration of one sweep across the content.
	Duration time.Duration
	// Delay before the first sweep starts. Progress holds at 0 until then.
	Delay time.Duration
	// AutoReverse makes the band bounce back instead of wrapping around.
	AutoReverse bool
	// Repeat loops the sweep indefinitely. When false the curve clamps
	// at its final value once the (single) sweep completes.
	Repeat bool
	// Ease shapes each sweep leg. Nil means linear.
	Ease EaseFunc
}

// DefaultTiming is a 1.5s linear sweep repeating forever.
func DefaultTiming() Timing {
	return Timing{
		Duration: 1500 * time.Millisecond,
		Repeat:   true,
		Ease:     ease.Linear,
	}
}

// LegacyTiming maps the historical (duration, bounce, delay) convenience
// parameters onto the explicit curve: linear easing, autoreverse when
// bounce is set, and infinite repeat.
func LegacyTiming(duration time.Duration, bounce bool, delay time.Duration) Timing {
	return Timing{
		Duration:    duration,
		Delay:       delay,
		AutoReverse: bounce,
		Repeat:      true,
		Ease:        ease.Linear,
	}
}

func (t Timing) validate() error {
	if t.Duration <= 0 {
		return fmt.Errorf("%w: got %v", ErrDuration, t.Duration)
	}
	if t.Delay < 0 {
		return fmt.Errorf("%w: got %v", ErrDelay, t.Delay)
	}
	return nil
}

// Value returns the sweep progress in [0, 1] at the given elapsed time
// since the animation was triggered. Pure function; calling it with the
// same elapsed always yields the same progress.
func (t Timing) Value(elapsed time.Duration) float64 {
	if t.Duration <= 0 {
		return 0
	}
	if elapsed <= t.Delay {
		return t.apply(0)
	}
	cycles := float64(elapsed-t.Delay) / float64(t.Duration)

	period := 1.0
	if t.AutoReverse {
		period = 2.0
	}
	if !t.Repeat && cycles >= period {
		if t.AutoReverse {
			return t.apply(0)
		}
		return t.apply(1)
	}

	pos := math.Mod(cycles, period)
	if t.AutoReverse && pos > 1 {
		pos = 2 - pos
	}
	return t.apply(pos)
}

func (t Timing) apply(leg float64) float64 {
	if t.Ease == nil {
		return leg
	}
	v := t.Ease(leg)
	// Overshooting eases (elastic, back) are clamped so layout coordinates
	// never leave the resting/running envelope.
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// eases maps theme/flag names to easing functions, in the camelCase
// naming of the fogleman/ease package.
var eases = map[string]EaseFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inOutQuart": ease.InOutQuart,
	"outExpo":    ease.OutExpo,
	"outElastic": ease.OutElastic,
	"outBounce":  ease.OutBounce,
}

// EaseByName resolves an easing function by its camelCase name.
// "spring" resolves to a sampled harmonica spring with default parameters.
func EaseByName(name string) (EaseFunc, error) {
	if name == "" || name == "linear" {
		return ease.Linear, nil
	}
	if name == "spring" {
		return SpringEase(DefaultSpringFrequency, DefaultSpringDamping), nil
	}
	fn, ok := eases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return fn, nil
}

// EaseNames returns the supported ease names for help output, in no
// particular order aside from linear and spring first.
func EaseNames() []string {
	names := []string{"linear", "spring"}
	for name := range eases {
		if name == "linear" {
			continue
		}
		names = append(names, name)
	}
	return names
}
