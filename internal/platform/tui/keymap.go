package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falling-up/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"left":   core.ActionLeft,
		"a":      core.ActionLeft,
		"h":      core.ActionLeft,
		"right":  core.ActionRight,
		"d":      core.ActionRight,
		"l":      core.ActionRight,
		" ":      core.ActionJump,
		"space":  core.ActionJump,
		"up":     core.ActionJump,
		"w":      core.ActionJump,
		"k":      core.ActionJump,
		"enter":  core.ActionConfirm,
		"b":      core.ActionBack,
		"esc":    core.ActionBack,
		"p":      core.ActionPause,
		"r":      core.ActionRestart,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}
