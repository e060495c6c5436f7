package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameMask(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
	}{
		{"empty", nil},
		{"jump only", []Action{ActionJump}},
		{"left and jump", []Action{ActionLeft, ActionJump}},
		{"menu actions", []Action{ActionConfirm, ActionBack, ActionRestart, ActionPause}},
		{"right", []Action{ActionRight}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}

			got := FrameFromMask(f.Mask())
			for _, a := range recordedActions {
				if got.Has(a) != f.Has(a) {
					t.Errorf("action %s: got %v, expected %v", a, got.Has(a), f.Has(a))
				}
			}
		})
	}
}

func TestInputFrameMaskIgnoresQuit(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	if f.Mask() != 0 {
		t.Errorf("Quit should not be recorded, mask = %08b", f.Mask())
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionPause.String() != "Pause" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify to Unknown")
	}
}
