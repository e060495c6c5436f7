package fallingup

import (
	"fmt"

	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/scene"
)

var instructions = []string{
	"Use the arrow keys to move and the",
	"space bar to jump. Your goal is to",
	"avoid the sun at all costs, but be",
	"careful... everything will begin to",
	"move faster!",
}

// MenuScene is the title screen.
type MenuScene struct {
	env    *env
	camera *scene.Camera
}

func newMenuScene(e *env) *MenuScene {
	return &MenuScene{
		env:    e,
		camera: scene.NewCamera(e.cfg.World.Width, e.cfg.World.Height),
	}
}

// Name identifies the scene.
func (m *MenuScene) Name() string { return "menu" }

// Update starts a run on Confirm or Jump.
func (m *MenuScene) Update(dt float64, in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		m.env.startRun()
	}
}

// Render draws the title, instructions and the play prompt.
func (m *MenuScene) Render(dst *core.Screen) {
	h := dst.Height()
	top := core.Max((h-len(instructions)-6)/2, 0)

	dst.DrawTextCenteredColored(top, "F A L L I N G   U P", core.ColorBrightYellow)
	for i, line := range instructions {
		dst.DrawTextCentered(top+2+i, line)
	}
	dst.DrawTextCenteredColored(top+3+len(instructions), "[ Play ]", core.ColorBrightGreen)
	dst.DrawTextCenteredColored(top+5+len(instructions),
		fmt.Sprintf("Enter/Space: play  |  Q: quit  |  %s", m.env.presetLabel()), core.ColorGray)
}

// Dispose does nothing; the menu holds no resources.
func (m *MenuScene) Dispose() {}

// Camera exposes the scene camera.
func (m *MenuScene) Camera() *scene.Camera { return m.camera }
