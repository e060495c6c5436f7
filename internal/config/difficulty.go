package config

import "math"

// ScrollRamp counts the score thresholds a run has crossed.
// The count is recomputed from the score on every call rather than latched
// on a narrow score window, so a long frame can never skip a threshold.
type ScrollRamp struct {
	cfg     DifficultyConfig
	crossed int
}

// NewScrollRamp creates a ramp with no thresholds crossed.
func NewScrollRamp(cfg DifficultyConfig) *ScrollRamp {
	return &ScrollRamp{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (r *ScrollRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Ramp.Period > 0
}

// ThresholdsAt returns how many thresholds lie at or below score.
func (r *ScrollRamp) ThresholdsAt(score float64) int {
	if !r.IsEnabled() || score < r.cfg.Ramp.Offset {
		return 0
	}
	return int(math.Floor((score-r.cfg.Ramp.Offset)/r.cfg.Ramp.Period)) + 1
}

// Advance moves the ramp to score and returns how many thresholds were
// newly crossed since the previous call. Scores never move backwards in a
// run; a lower score reports zero and keeps the count.
func (r *ScrollRamp) Advance(score float64) int {
	n := r.ThresholdsAt(score)
	if n <= r.crossed {
		return 0
	}
	newly := n - r.crossed
	r.crossed = n
	return newly
}

// Crossed returns the number of thresholds crossed so far.
func (r *ScrollRamp) Crossed() int {
	return r.crossed
}

// Reset clears the crossed count for a new run.
func (r *ScrollRamp) Reset() {
	r.crossed = 0
}
