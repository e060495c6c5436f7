// Package scene provides the scene stack that drives Falling Up screens.
// Only the top scene of a Stack receives updates and render calls.
package scene

import (
	"errors"

	"github.com/vovakirdan/falling-up/internal/core"
)

// ErrEmptyStack is the panic value raised when the last scene is popped.
var ErrEmptyStack = errors.New("scene: stack would be empty")

// Scene is one screen of the application (menu, play, game over).
type Scene interface {
	// Name identifies the scene for logs and game state.
	Name() string

	// Update advances the scene by one fixed tick.
	Update(dt float64, in core.InputFrame)

	// Render draws the scene into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// Dispose releases whatever the scene acquired.
	// Called synchronously when the scene leaves the stack.
	Dispose()
}

// Stack is an ordered collection of scenes; the last element is active.
// It is not safe for concurrent use.
type Stack struct {
	scenes  []Scene
	carried float64
}

// NewStack creates a stack with an initial scene.
func NewStack(initial Scene) *Stack {
	return &Stack{scenes: []Scene{initial}}
}

// Push makes s the active scene; the previous top stays underneath.
func (st *Stack) Push(s Scene) {
	st.scenes = append(st.scenes, s)
}

// ReplaceTop disposes the active scene and installs s in its place.
// carried is stored for the incoming scene to read through Carried.
func (st *Stack) ReplaceTop(s Scene, carried float64) {
	st.carried = carried
	if n := len(st.scenes); n > 0 {
		st.scenes[n-1].Dispose()
		st.scenes[n-1] = s
		return
	}
	st.scenes = append(st.scenes, s)
}

// Pop disposes and removes the active scene.
// Popping the last scene is a programming error and panics with ErrEmptyStack.
func (st *Stack) Pop() {
	n := len(st.scenes)
	if n <= 1 {
		panic(ErrEmptyStack)
	}
	top := st.scenes[n-1]
	st.scenes[n-1] = nil
	st.scenes = st.scenes[:n-1]
	top.Dispose()
}

// Top returns the active scene.
func (st *Stack) Top() Scene {
	if len(st.scenes) == 0 {
		return nil
	}
	return st.scenes[len(st.scenes)-1]
}

// Len returns the number of scenes on the stack.
func (st *Stack) Len() int {
	return len(st.scenes)
}

// Carried returns the payload of the most recent ReplaceTop.
func (st *Stack) Carried() float64 {
	return st.carried
}

// Update dispatches a tick to the active scene.
func (st *Stack) Update(dt float64, in core.InputFrame) {
	if top := st.Top(); top != nil {
		top.Update(dt, in)
	}
}

// Render draws the active scene.
func (st *Stack) Render(dst *core.Screen) {
	if top := st.Top(); top != nil {
		top.Render(dst)
	}
}

// Clear disposes every scene from the top down, leaving the stack empty.
// Used when the owning game shuts down or restarts from scratch.
func (st *Stack) Clear() {
	for i := len(st.scenes) - 1; i >= 0; i-- {
		st.scenes[i].Dispose()
		st.scenes[i] = nil
	}
	st.scenes = st.scenes[:0]
	st.carried = 0
}
