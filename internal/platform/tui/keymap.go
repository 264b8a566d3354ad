package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-jumper/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space", "start/jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InputRouter turns key presses into per-tick input frames.
//
// Terminals report presses but not releases, so a movement key stays
// held for holdTicks frames after its most recent press. Auto-repeat
// from a key kept down refreshes the window before it runs out.
// Jump, start and restart are edges that last for a single frame.
type InputRouter struct {
	keys      KeyMap
	holdTicks uint64

	frame      uint64
	leftUntil  uint64
	rightUntil uint64
	edges      core.InputFrame
}

// NewInputRouter creates a router with the given bindings and hold window.
func NewInputRouter(keys KeyMap, holdTicks int) *InputRouter {
	return &InputRouter{
		keys:      keys,
		holdTicks: uint64(max(1, holdTicks)),
		edges:     core.NewInputFrame(),
	}
}

// HandleKey records a key press. Returns true if the key was a quit request.
func (r *InputRouter) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, r.keys.Quit):
		return true
	case key.Matches(msg, r.keys.Left):
		r.leftUntil = r.frame + r.holdTicks
		r.rightUntil = 0
	case key.Matches(msg, r.keys.Right):
		r.rightUntil = r.frame + r.holdTicks
		r.leftUntil = 0
	case key.Matches(msg, r.keys.Jump):
		r.edges.Set(core.ActionStart)
		r.edges.Set(core.ActionJump)
	case key.Matches(msg, r.keys.Restart):
		r.edges.Set(core.ActionRestart)
	}
	return false
}

// Frame returns the input for the next tick and advances the router clock.
func (r *InputRouter) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, on := range r.edges.Actions {
		if on {
			f.Set(a)
		}
	}
	if r.frame < r.leftUntil {
		f.Set(core.ActionLeft)
	}
	if r.frame < r.rightUntil {
		f.Set(core.ActionRight)
	}

	r.edges.Clear()
	r.frame++
	return f
}

// Release drops every held direction and pending edge.
func (r *InputRouter) Release() {
	r.leftUntil = 0
	r.rightUntil = 0
	r.edges.Clear()
}
