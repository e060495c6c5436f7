package tui

import (
	"time"

	"github.com/vovakirdan/falling-up/internal/core"
)

// DefaultHoldWindow is used when no hold window is configured.
const DefaultHoldWindow = 150 * time.Millisecond

// IsHeldAction reports whether an action is a held state rather than an edge.
func IsHeldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// HeldInput turns the key-press stream of a terminal into per-tick frames.
// Terminals send no key-up events, so a held action stays active for the
// hold window after its last key repeat. Edge actions fire on exactly one
// frame.
type HeldInput struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	edges    core.InputFrame
}

// NewHeldInput creates a tracker with the given hold window.
func NewHeldInput(window time.Duration) *HeldInput {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldInput{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		edges:    core.NewInputFrame(),
	}
}

// Window returns the hold window.
func (h *HeldInput) Window() time.Duration {
	return h.window
}

// Press records a key press at the given time.
func (h *HeldInput) Press(a core.Action, at time.Time) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}
	if !IsHeldAction(a) {
		h.edges.Set(a)
		return
	}
	h.lastSeen[a] = at
	// Pressing one direction releases the other.
	switch a {
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
	}
}

// Frame returns the input for a tick at time now and consumes pending edges.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := h.edges.Clone()
	h.edges.Clear()
	for a, at := range h.lastSeen {
		if now.Sub(at) > h.window {
			delete(h.lastSeen, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Reset forgets held keys and pending edges.
func (h *HeldInput) Reset() {
	clear(h.lastSeen)
	h.edges.Clear()
}
