package fallingup

import (
	"fmt"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/scene"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	BarChar    = '█'
	DashChar   = '-'
	SunChar    = '☼'
	StarChar   = '·'
)

// PlayScene is a single run: scrolling camera, recycled blocks and the player.
type PlayScene struct {
	env  *env
	seed int64

	camera      *scene.Camera
	lossLine    float64 // world y; the run ends when the player's top passes it
	player      *Player
	blocks      *BlockPool
	ramp        *config.ScrollRamp
	scrollSpeed float64
	score       float64
	paused      bool
	ended       bool

	ticks  int
	inputs []byte
}

func newPlayScene(e *env, seed int64) *PlayScene {
	cfg := e.cfg
	cam := scene.NewCamera(cfg.World.Width, cfg.World.Height)
	s := &PlayScene{
		env:         e,
		seed:        seed,
		camera:      cam,
		lossLine:    cam.Y + cfg.Scroll.LossOffset,
		player:      NewPlayer(cfg.Player, cfg.Physics, e.sounds),
		blocks:      NewBlockPool(cfg.Obstacles, seed),
		ramp:        config.NewScrollRamp(cfg.Difficulty),
		scrollSpeed: cfg.Scroll.InitialSpeed,
		inputs:      make([]byte, 0, 60*60),
	}
	e.sounds.StartMusic()
	e.log.Debug("run started", "seed", seed, "speed", s.scrollSpeed)
	return s
}

// Name identifies the scene.
func (s *PlayScene) Name() string { return "play" }

// Update advances the run by one tick.
func (s *PlayScene) Update(dt float64, in core.InputFrame) {
	if s.ended {
		return
	}
	s.inputs = append(s.inputs, in.Mask())
	s.ticks++

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	cfg := s.env.cfg

	// Scroll the camera and the loss line together.
	s.camera.Scroll(-s.scrollSpeed)
	s.lossLine -= s.scrollSpeed

	if n := s.ramp.Advance(s.score); n > 0 {
		s.scrollSpeed += float64(n) * cfg.Scroll.SpeedIncrement
		s.env.log.Debug("scroll speed raised", "score", s.score, "speed", s.scrollSpeed, "thresholds", s.ramp.Crossed())
	}

	s.blocks.Recycle(s.camera.Top())
	if s.player.Bounds().Top() > s.lossLine {
		s.lose()
		return
	}

	s.camera.Update()
	s.score += dt

	s.wrap()
	s.player.Update(dt)
	s.collide()

	if in.Has(core.ActionLeft) {
		s.player.MoveLeft(dt)
	}
	if in.Has(core.ActionRight) {
		s.player.MoveRight(dt)
	}
	if in.Has(core.ActionJump) {
		s.player.Jump()
	}
}

// lose ends the run and hands the score to the game-over scene.
func (s *PlayScene) lose() {
	s.ended = true
	s.env.sounds.StopMusic()
	s.env.sounds.GameOver()
	s.env.log.Info("run lost", "score", fmt.Sprintf("%.2f", s.score), "ticks", s.ticks, "thresholds", s.ramp.Crossed())
	s.env.runEnded(s.Summary())
	s.env.stack.ReplaceTop(newGameOverScene(s.env, s.score), s.score)
}

// wrap moves the player across the horizontal edges and keeps it from
// falling out of reach below the camera.
func (s *PlayScene) wrap() {
	p := s.player
	right := s.env.cfg.Obstacles.RightBound
	floor := s.camera.Y - s.env.cfg.Scroll.FloorOffset
	switch {
	case p.X() > right:
		p.SetPosition(-p.Width(), p.Y())
	case p.X()+p.Width() < 0:
		p.SetPosition(right, p.Y())
	case p.Y() < floor:
		p.SetPosition(p.X(), floor)
	}
}

// collide resolves the player against both bars of every block.
func (s *PlayScene) collide() {
	p := s.player
	sink := s.env.cfg.Player.RestSink
	for _, b := range s.blocks.Blocks() {
		left := b.LeftBar()
		switch side := p.TestCollision(left); side {
		case SideBottom:
			p.ResolveCollision(side, p.X(), left.Top()-sink)
		case SideLeft:
			p.ResolveCollision(side, left.Right(), p.Y())
		case SideTop:
			p.ResolveCollision(side, p.X(), left.Y-p.Height())
		}

		right := b.RightBar()
		switch side := p.TestCollision(right); side {
		case SideBottom:
			p.ResolveCollision(side, p.X(), right.Top()-sink)
		case SideRight:
			p.ResolveCollision(side, right.X-p.Width(), p.Y())
		case SideTop:
			p.ResolveCollision(side, p.X(), right.Y-p.Height())
		}
	}
}

// Render draws the run from the camera's point of view.
func (s *PlayScene) Render(dst *core.Screen) {
	cols, rows := dst.Width(), dst.Height()
	cam := s.camera

	// Fixed star field in screen space.
	for y := 2; y < rows; y += 3 {
		for x := (y * 7) % 11; x < cols; x += 11 {
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}

	// Sun above the loss line.
	_, lossRow := cam.Project(0, s.lossLine, cols, rows)
	dst.DrawTextCenteredColored(sunRow(lossRow, rows), string([]rune{SunChar, SunChar, SunChar}), core.ColorBrightYellow)
	for x := 0; x < cols; x += 2 {
		dst.SetColored(x, lossRow, DashChar, core.ColorOrange)
	}

	for _, b := range s.blocks.Blocks() {
		dst.DrawRectColored(cam.ProjectBox(b.LeftBar(), cols, rows), BarChar, core.ColorCyan)
		dst.DrawRectColored(cam.ProjectBox(b.RightBar(), cols, rows), BarChar, core.ColorCyan)
	}

	dst.DrawRectColored(cam.ProjectBox(s.player.Bounds(), cols, rows), PlayerChar, core.ColorBrightRed)

	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score = %.2f ", s.score), core.ColorBrightWhite)
	speed := fmt.Sprintf(" Speed %.1f ", s.scrollSpeed)
	dst.DrawTextColored(cols-len(speed)-1, 0, speed, core.ColorGray)

	if s.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// sunRow places the sun two rows above the loss line, kept below the HUD
// row and on screen.
func sunRow(lossRow, rows int) int {
	return core.Clamp(lossRow-2, 1, core.Max(rows-1, 1))
}

// Dispose stops the background track if the run is still playing.
func (s *PlayScene) Dispose() {
	if !s.ended {
		s.env.sounds.StopMusic()
	}
	s.ended = true
}

// Summary describes the run so far.
func (s *PlayScene) Summary() core.RunSummary {
	inputs := make([]byte, len(s.inputs))
	copy(inputs, s.inputs)
	return core.RunSummary{
		Seed:       s.seed,
		TickRate:   s.env.tickRate,
		Ticks:      s.ticks,
		Score:      s.score,
		Thresholds: s.ramp.Crossed(),
		Inputs:     inputs,
	}
}

// Score returns the elapsed survival time.
func (s *PlayScene) Score() float64 { return s.score }

// ScrollSpeed returns the current camera speed in units per tick.
func (s *PlayScene) ScrollSpeed() float64 { return s.scrollSpeed }

// Paused reports whether the run is paused.
func (s *PlayScene) Paused() bool { return s.paused }

// Player exposes the player entity.
func (s *PlayScene) Player() *Player { return s.player }

// Blocks exposes the obstacle pool.
func (s *PlayScene) Blocks() *BlockPool { return s.blocks }

// Camera exposes the scene camera.
func (s *PlayScene) Camera() *scene.Camera { return s.camera }

// LossLine returns the world y of the loss boundary.
func (s *PlayScene) LossLine() float64 { return s.lossLine }
