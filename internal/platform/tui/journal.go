package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/storage"
)

// RunRecorder is implemented by games that report finished runs.
type RunRecorder interface {
	OnRunEnd(fn func(core.RunSummary))
}

// runJournal returns a callback that writes finished runs to the store.
// Saving is best-effort: a failure is logged and play continues.
func runJournal(store *storage.Store, gameID, preset, origin string, logger *log.Logger) func(core.RunSummary) {
	return func(sum core.RunSummary) {
		if store == nil {
			return
		}
		id, err := store.SaveRun(storage.Run{
			GameID:     gameID,
			Seed:       sum.Seed,
			TickRate:   sum.TickRate,
			Preset:     preset,
			Ticks:      sum.Ticks,
			Score:      sum.Score,
			Thresholds: sum.Thresholds,
			Inputs:     sum.Inputs,
			Origin:     origin,
		})
		if err != nil {
			logger.Warn("could not save run", "err", err)
			return
		}
		logger.Info("run saved", "id", id, "score", sum.Score, "ticks", sum.Ticks, "origin", origin)
	}
}
