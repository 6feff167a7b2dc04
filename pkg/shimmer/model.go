package shimmer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the shimmer animation clock. The Model schedules one
// tick per frame at the configured FPS while the effect is running. The
// unexported tag lets the model drop ticks from superseded loops, the same
// trick the Bubbles spinner uses, so rapid active/inactive flips never
// leave two loops running.
type TickMsg struct {
	Time time.Time
	tag  int
}

// Model wraps an Effect as a Bubble Tea component, designed to be composed
// into larger models rather than run standalone. The first WindowSizeMsg
// plays the role of the post-layout lifecycle event: it fires the phase
// controller's one-shot start transition and boots the tick loop. Animating
// only after layout avoids the visible jump of sweeping content that has
// not settled yet.
type Model struct {
	effect  *Effect
	content string
	tag     int
}

// NewModel attaches an effect to the given content.
func NewModel(effect *Effect, content string) Model {
	return Model{effect: effect, content: content}
}

// Init returns no initial command: the model waits for the first
// WindowSizeMsg before animating.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles layout and tick messages. Other messages are ignored, so
// the model composes cheaply into a parent Update.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.effect.Layout(time.Now()) {
			return m.startTicking()
		}
		return m, nil
	case TickMsg:
		if msg.tag != m.tag {
			return m, nil
		}
		if !m.effect.Active() || !m.effect.controller.Running() {
			return m, nil
		}
		return m, m.scheduleTick()
	}
	return m, nil
}

// View renders the wrapped content through the effect.
func (m Model) View() string {
	return m.effect.View(m.content, time.Now())
}

// SetContent swaps the wrapped content. The sweep position is unaffected.
func (m *Model) SetContent(content string) {
	m.content = content
}

// Content returns the wrapped content.
func (m Model) Content() string {
	return m.content
}

// Effect returns the wrapped effect.
func (m Model) Effect() *Effect {
	return m.effect
}

// SetActive toggles the effect and returns the command needed to resume
// the tick loop on reactivation, or nil when deactivating.
func (m Model) SetActive(active bool) (Model, tea.Cmd) {
	m.effect.SetActive(active)
	if !active || !m.effect.controller.Running() {
		return m, nil
	}
	return m.startTicking()
}

// startTicking begins a fresh tick loop, invalidating any loop still in
// flight by bumping the tag.
func (m Model) startTicking() (Model, tea.Cmd) {
	m.tag++
	return m, m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	tag := m.tag
	return tea.Tick(time.Second/time.Duration(m.effect.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, tag: tag}
	})
}
