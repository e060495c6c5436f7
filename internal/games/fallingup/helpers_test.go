package fallingup

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/scene"
)

// recordingSounds counts every cue it receives.
type recordingSounds struct {
	jumps, gameOvers, starts, stops int
}

func (r *recordingSounds) Jump()       { r.jumps++ }
func (r *recordingSounds) GameOver()   { r.gameOvers++ }
func (r *recordingSounds) StartMusic() { r.starts++ }
func (r *recordingSounds) StopMusic()  { r.stops++ }

// flatConfig returns the default config with every block at offset zero,
// so the right bar always sits under the player's start position.
func flatConfig() config.FallingConfig {
	cfg := config.DefaultFallingConfig()
	cfg.Obstacles.OffsetMax = 0
	return cfg
}

// newTestPlay builds a run on its own stack with recording sounds.
func newTestPlay(t *testing.T, cfg config.FallingConfig, seed int64) (*PlayScene, *env, *recordingSounds) {
	t.Helper()
	snd := &recordingSounds{}
	e := newEnv(cfg, "", core.RuntimeConfig{TickRate: 60, Seed: seed}, snd, log.New(io.Discard), nil)
	play := newPlayScene(e, seed)
	e.stack = scene.NewStack(play)
	return play, e, snd
}

// tick matches RuntimeConfig.TickSeconds at 60 ticks per second
var tick = 1.0 / 60.0

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func inputOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
