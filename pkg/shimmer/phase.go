package shimmer

import "time"

// State is the discrete position of the phase controller.
type State int

const (
	// Resting is the initial state: the band sits off-screen at its
	// starting coordinates and nothing animates.
	Resting State = iota
	// Running means the one-shot start transition has fired and the host
	// tick loop is interpolating the sweep.
	Running
)

// String returns the state name for logs and test output.
func (s State) String() string {
	switch s {
	case Resting:
		return "resting"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// PhaseController latches the discrete pre/post animation states of one
// effect instance. It deliberately owns no clock: the Running transition
// records when it fired, and the host tick loop derives progress from that
// timestamp. All methods must be called from the single goroutine driving
// the effect (the Bubble Tea update loop); the controller is exclusively
// owned by its effect and needs no locking.
type PhaseController struct {
	state     State
	startedAt time.Time
}

// NewPhaseController returns a controller in the Resting state.
func NewPhaseController() *PhaseController {
	return &PhaseController{state: Resting}
}

// TriggerLayout performs the one-shot Resting to Running transition and
// reports whether it fired. The trigger is deferred to the first layout
// event rather than construction so the transition itself is what gets
// interpolated; calling it again while Running is a no-op, which makes
// repeated layout events (resizes) safe.
func (c *PhaseController) TriggerLayout(now time.Time) bool {
	if c.state == Running {
		return false
	}
	c.state = Running
	c.startedAt = now
	return true
}

// Deactivate returns the controller to Resting, forgetting the start
// timestamp. Idempotent: deactivating a resting controller does nothing,
// so rapid active/inactive flips always land on the last-applied state.
func (c *PhaseController) Deactivate() {
	c.state = Resting
	c.startedAt = time.Time{}
}

// State returns the current discrete state.
func (c *PhaseController) State() State {
	return c.state
}

// Running reports whether the start transition has fired.
func (c *PhaseController) Running() bool {
	return c.state == Running
}

// Elapsed returns the time since the Running transition fired, or zero
// while resting.
func (c *PhaseController) Elapsed(now time.Time) time.Duration {
	if c.state != Running || c.startedAt.IsZero() {
		return 0
	}
	d := now.Sub(c.startedAt)
	if d < 0 {
		return 0
	}
	return d
}
