package shimmer

import "github.com/charmbracelet/harmonica"

// Default spring parameters, tuned to settle within one sweep without
// visible oscillation at terminal cell granularity.
const (
	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 0.8
)

// springSampleRate is the internal resolution the spring is sampled at.
const springSampleRate = 120

// SpringEase returns an easing function backed by a harmonica spring
// simulation from 0 to 1. The spring is sampled once up front at a fixed
// rate; the returned function interpolates between samples, so it is pure
// and safe to share across effects.
func SpringEase(frequency, damping float64) EaseFunc {
	spring := harmonica.NewSpring(harmonica.FPS(springSampleRate), frequency, damping)

	samples := make([]float64, springSampleRate+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSampleRate; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = clamp01(pos)
	}
	// The simulation may stop just shy of the target; pin the end so a
	// completed sweep always reaches the running coordinates.
	samples[springSampleRate] = 1

	return func(t float64) float64 {
		t = clamp01(t)
		scaled := t * springSampleRate
		i := int(scaled)
		if i >= springSampleRate {
			return samples[springSampleRate]
		}
		frac := scaled - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
