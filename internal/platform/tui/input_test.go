package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/falling-up/internal/core"
)

func TestHeldInputHoldWindow(t *testing.T) {
	h := NewHeldInput(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionLeft, t0)

	tests := []struct {
		after time.Duration
		held  bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{100 * time.Millisecond, true},
		{101 * time.Millisecond, false},
		{50 * time.Millisecond, false}, // expired keys stay released
	}
	for _, tt := range tests {
		if got := h.Frame(t0.Add(tt.after)).Has(core.ActionLeft); got != tt.held {
			t.Errorf("Left held at +%v = %v, expected %v", tt.after, got, tt.held)
		}
	}
}

func TestHeldInputRepeatsExtendHold(t *testing.T) {
	h := NewHeldInput(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	for i := 0; i < 5; i++ {
		h.Press(core.ActionJump, t0.Add(time.Duration(i)*80*time.Millisecond))
	}
	if !h.Frame(t0.Add(400 * time.Millisecond)).Has(core.ActionJump) {
		t.Error("key repeats should keep Jump held")
	}
}

func TestHeldInputEdgesFireOnce(t *testing.T) {
	h := NewHeldInput(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionConfirm, t0)

	first := h.Frame(t0)
	if !first.Has(core.ActionPause) || !first.Has(core.ActionConfirm) {
		t.Errorf("first frame should carry both edges, got %v", first.Actions)
	}
	if second := h.Frame(t0); second.Has(core.ActionPause) || second.Has(core.ActionConfirm) {
		t.Errorf("edges fired twice: %v", second.Actions)
	}
}

func TestHeldInputOppositeDirectionReleases(t *testing.T) {
	h := NewHeldInput(time.Second)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("expected only Right held, got %v", f.Actions)
	}
}

func TestHeldInputIgnoresQuitAndReset(t *testing.T) {
	h := NewHeldInput(0)
	if h.Window() != DefaultHoldWindow {
		t.Errorf("Window() = %v, expected default %v", h.Window(), DefaultHoldWindow)
	}
	t0 := time.Unix(0, 0)

	h.Press(core.ActionQuit, t0)
	h.Press(core.ActionNone, t0)
	h.Press(core.ActionJump, t0)
	h.Press(core.ActionRestart, t0)
	h.Reset()

	if f := h.Frame(t0); f.Mask() != 0 || f.Has(core.ActionQuit) {
		t.Errorf("frame after Reset = %v, expected empty", f.Actions)
	}
}
