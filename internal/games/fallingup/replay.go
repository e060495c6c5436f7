package fallingup

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/scene"
)

// ErrRunNotFinished is returned by Replay when the inputs run out before
// the player loses.
var ErrRunNotFinished = errors.New("fallingup: replay inputs ended before the run was lost")

// Replay re-simulates a recorded run headlessly. Each input mask drives one
// tick of a fresh run seeded with seed. It returns the summary produced when
// the run is lost, or the partial summary and ErrRunNotFinished.
func Replay(cfg config.FallingConfig, seed int64, tickRate int, inputs []byte) (core.RunSummary, error) {
	var result *core.RunSummary
	e := newEnv(cfg, "", core.RuntimeConfig{TickRate: tickRate, Seed: seed}, NopSounds{}, log.New(io.Discard),
		func(sum core.RunSummary) { result = &sum })

	play := newPlayScene(e, seed)
	e.stack = scene.NewStack(play)
	dt := 1.0 / float64(e.tickRate)

	for _, m := range inputs {
		e.stack.Update(dt, core.FrameFromMask(m))
		if result != nil {
			return *result, nil
		}
	}
	return play.Summary(), ErrRunNotFinished
}
