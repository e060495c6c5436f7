// Package fallingup implements Falling Up, a vertical scroller where a
// falling circle hops between offset bars while the camera sinks ever faster.
// The player loses when the bars carry it up past the sun line.
package fallingup

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/registry"
	"github.com/vovakirdan/falling-up/internal/scene"
)

// ID is the registry identifier of the game.
const ID = "fallingup"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives game events; silent unless the CLI installs one
var logger = log.New(io.Discard)

// defaultSounds is the audio sink given to new games
var defaultSounds Sounds = NopSounds{}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config as loaded.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "preset", preset, "err", err)
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetSounds sets the audio sink used by new games.
func SetSounds(s Sounds) {
	if s == nil {
		s = NopSounds{}
	}
	defaultSounds = s
}

// RunRecorder is implemented by games that report finished runs.
type RunRecorder interface {
	OnRunEnd(fn func(core.RunSummary))
}

// env is the state shared by the scenes of one game.
type env struct {
	cfg      config.FallingConfig
	preset   config.DifficultyPreset
	tickRate int
	stack    *scene.Stack
	seeds    *rand.Rand
	sounds   Sounds
	log      *log.Logger
	onRunEnd func(core.RunSummary)
}

// startRun replaces the active scene with a fresh run.
func (e *env) startRun() {
	e.stack.ReplaceTop(newPlayScene(e, e.seeds.Int63()), 0)
}

func (e *env) runEnded(sum core.RunSummary) {
	if e.onRunEnd != nil {
		e.onRunEnd(sum)
	}
}

func (e *env) presetLabel() string {
	if e.preset == "" {
		return "difficulty: config"
	}
	return "difficulty: " + string(e.preset)
}

// Game adapts the scene stack to the registry.Game contract.
type Game struct {
	env     *env
	runtime core.RuntimeConfig
	sounds  Sounds
	hook    func(core.RunSummary)
}

// New creates a new Falling Up game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Falling Up"
}

// OnRunEnd registers a callback invoked when a run is lost.
func (g *Game) OnRunEnd(fn func(core.RunSummary)) {
	g.hook = fn
	if g.env != nil {
		g.env.onRunEnd = fn
	}
}

// SetSounds overrides the package audio sink for this instance.
// Takes effect on the next Reset.
func (g *Game) SetSounds(s Sounds) {
	g.sounds = s
}

// Reset loads the configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFalling(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultFallingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	if g.env != nil && g.env.stack != nil {
		g.env.stack.Clear()
	}
	g.env = newEnv(cfg, difficultyPreset, runtime, g.soundSink(), logger, g.hook)
	g.env.stack = scene.NewStack(newMenuScene(g.env))
	logger.Debug("game reset", "seed", runtime.Seed, "tick_rate", runtime.TickRate, "preset", difficultyPreset)
}

func (g *Game) soundSink() Sounds {
	if g.sounds != nil {
		return g.sounds
	}
	return defaultSounds
}

func newEnv(cfg config.FallingConfig, preset config.DifficultyPreset, runtime core.RuntimeConfig,
	sounds Sounds, l *log.Logger, hook func(core.RunSummary)) *env {
	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return &env{
		cfg:      cfg,
		preset:   preset,
		tickRate: tickRate,
		seeds:    rand.New(rand.NewSource(runtime.Seed)),
		sounds:   sounds,
		log:      l,
		onRunEnd: hook,
	}
}

// Step advances the active scene by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.env == nil {
		g.Reset(core.DefaultConfig())
	}
	before := g.env.stack.Top()
	g.env.stack.Update(g.runtime.TickSeconds(), in)
	if after := g.env.stack.Top(); after != before {
		logger.Debug("scene changed", "from", before.Name(), "to", after.Name(), "carried", g.env.stack.Carried())
	}
	return core.StepResult{State: g.State()}
}

// Render draws the active scene.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.env == nil {
		return
	}
	g.env.stack.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.env == nil {
		return core.GameState{}
	}
	st := core.GameState{Scene: g.env.stack.Top().Name()}
	switch s := g.env.stack.Top().(type) {
	case *PlayScene:
		st.Score = s.Score()
		st.Paused = s.Paused()
		st.ScrollSpeed = s.ScrollSpeed()
	case *GameOverScene:
		st.Score = s.Score()
		st.GameOver = true
	}
	return st
}

// Stack exposes the scene stack.
func (g *Game) Stack() *scene.Stack {
	if g.env == nil {
		return nil
	}
	return g.env.stack
}

// Close disposes every scene. The next Step starts over from Reset.
func (g *Game) Close() {
	if g.env != nil {
		g.env.stack.Clear()
		g.env = nil
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
