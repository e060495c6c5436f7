package fallingup

import (
	"fmt"

	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/scene"
)

// GameOverScene shows the final survival time and offers Retry / Main Menu.
type GameOverScene struct {
	env    *env
	camera *scene.Camera
	score  float64
}

func newGameOverScene(e *env, score float64) *GameOverScene {
	return &GameOverScene{
		env:    e,
		camera: scene.NewCamera(e.cfg.World.Width, e.cfg.World.Height),
		score:  score,
	}
}

// Name identifies the scene.
func (g *GameOverScene) Name() string { return "gameover" }

// Score returns the score this scene was created with.
func (g *GameOverScene) Score() float64 { return g.score }

// Update handles the Retry and Main Menu actions.
func (g *GameOverScene) Update(dt float64, in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
		g.env.startRun()
	case in.Has(core.ActionBack):
		g.env.stack.ReplaceTop(newMenuScene(g.env), 0)
	}
}

// Render draws the game-over box.
func (g *GameOverScene) Render(dst *core.Screen) {
	drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Your Score: %.2f", g.score))
	y := dst.Height()/2 + 4
	dst.DrawTextCenteredColored(y, "[R] Retry    [B] Main Menu", core.ColorBrightGreen)
}

// Dispose does nothing; the game-over screen holds no resources.
func (g *GameOverScene) Dispose() {}

// Camera exposes the scene camera.
func (g *GameOverScene) Camera() *scene.Camera { return g.camera }
