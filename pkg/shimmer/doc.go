// Package shimmer provides an animated loading decoration for terminal
// content: a translucent gradient band sweeping across text to signal
// in-progress state, usually over skeleton placeholder content.
//
// The effect is assembled from small pure parts:
//
//	Gradient        - the band's opacity/color profile as ordered stops
//	Timing          - explicit value curve (duration, delay, repeat,
//	                  autoreverse, easing) turning elapsed time into progress
//	PhaseController - the discrete resting/running latch triggered after
//	                  the first layout pass
//	Coordinates     - direction-aware start/end placement of the band in
//	                  the unit square (LTR and RTL reading orders)
//	Strategy        - how the gradient composites with content: mask,
//	                  overlay with a blend mode, or background
//	Effect          - the orchestrator tying the above together
//
// Bubble Tea is the host animation engine. Model wraps an Effect as a
// component: the first tea.WindowSizeMsg acts as the post-layout event that
// starts the animation, and tick messages drive redraws while it runs.
//
// # Basic usage
//
//	eff, err := shimmer.New(shimmer.DefaultConfig())
//	if err != nil { ... }
//	model := shimmer.NewModel(eff, shimmer.PlaceholderParagraph(40, 3))
//	// compose model into a parent tea.Model
//
// For one-off frames without a program loop, Effect.Frame renders content
// at a fixed elapsed time.
//
// All configuration is validated when New runs; an Effect that exists
// cannot fail at render time.
package shimmer
