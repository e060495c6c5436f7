package fallingup

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
)

func TestBlockBarSpacing(t *testing.T) {
	cfg := config.DefaultFallingConfig().Obstacles
	rng := rand.New(rand.NewSource(7))
	want := cfg.Gap + cfg.BarWidth

	for i := 0; i < 50; i++ {
		b := NewBlock(float64(i)*75, cfg, rng)
		check := func(stage string) {
			l, r := b.LeftBar(), b.RightBar()
			if r.X-l.X != want {
				t.Fatalf("%s: right.X-left.X = %v, expected %v", stage, r.X-l.X, want)
			}
			if l.Y != r.Y {
				t.Fatalf("%s: bars on different lanes: %v vs %v", stage, l.Y, r.Y)
			}
		}
		check("create")
		b.Reposition(b.Y() - 600)
		check("reposition")
	}
}

func TestBlockOffsetRange(t *testing.T) {
	cfg := config.DefaultFallingConfig().Obstacles
	b := NewBlock(0, cfg, rand.New(rand.NewSource(1)))

	seen := make(map[float64]bool)
	for i := 0; i < 2000; i++ {
		b.Reposition(0)
		off := b.XOffset()
		if off < -float64(cfg.OffsetMax) || off > 0 {
			t.Fatalf("xOffset %v outside [-%d, 0]", off, cfg.OffsetMax)
		}
		if off != float64(int(off)) {
			t.Fatalf("xOffset %v is not a whole unit", off)
		}
		seen[off] = true
	}
	if len(seen) < 20 {
		t.Errorf("Reposition drew only %d distinct offsets; expected a re-roll each time", len(seen))
	}
}

func TestBlockCollidesWith(t *testing.T) {
	cfg := config.DefaultFallingConfig().Obstacles
	cfg.OffsetMax = 0
	b := NewBlock(100, cfg, rand.New(rand.NewSource(1)))
	// left bar [0,150]x[100,120], right bar [180,330]x[100,120]

	tests := []struct {
		name     string
		box      core.Box
		expected bool
	}{
		{"inside left", core.NewBox(10, 105, 5, 5), true},
		{"inside right", core.NewBox(200, 105, 5, 5), true},
		{"in the gap", core.NewBox(155, 105, 20, 5), false},
		{"above", core.NewBox(10, 120, 5, 5), false},
		{"straddles gap edge", core.NewBox(170, 110, 20, 20), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CollidesWith(tc.box); got != tc.expected {
				t.Errorf("CollidesWith(%+v) = %v, expected %v", tc.box, got, tc.expected)
			}
		})
	}
}

func TestBlockPoolLayout(t *testing.T) {
	cfg := config.DefaultFallingConfig().Obstacles
	pool := NewBlockPool(cfg, 42)

	blocks := pool.Blocks()
	if len(blocks) != cfg.PoolSize {
		t.Fatalf("pool has %d blocks, expected %d", len(blocks), cfg.PoolSize)
	}
	for i, b := range blocks {
		if want := float64(i) * (cfg.BarHeight + cfg.Spacing); b.Y() != want {
			t.Errorf("block %d at y=%v, expected %v", i, b.Y(), want)
		}
	}
	if pool.Lowest() != blocks[0] {
		t.Error("Lowest() should be the first lane before any recycling")
	}
}

func TestBlockPoolRecycle(t *testing.T) {
	cfg := config.DefaultFallingConfig().Obstacles
	pool := NewBlockPool(cfg, 42)
	span := (cfg.BarHeight + cfg.Spacing) * float64(cfg.PoolSize)

	before := make(map[*Block]float64)
	for _, b := range pool.Blocks() {
		before[b] = b.Y()
	}

	// Lanes at 375, 450 and 525 have tops above 390.
	moved := pool.Recycle(390)
	if moved != 3 {
		t.Fatalf("Recycle moved %d blocks, expected 3", moved)
	}

	for b, y := range before {
		switch {
		case y+cfg.BarHeight > 390:
			if b.Y() != y-span {
				t.Errorf("recycled lane %v moved to %v, expected %v", y, b.Y(), y-span)
			}
			if off := b.XOffset(); off < -float64(cfg.OffsetMax) || off > 0 {
				t.Errorf("recycled lane drew offset %v outside range", off)
			}
		default:
			if b.Y() != y {
				t.Errorf("lane %v should not move, now at %v", y, b.Y())
			}
		}
	}

	if pool.Lowest().Y() != 375-span {
		t.Errorf("Lowest() = %v, expected %v", pool.Lowest().Y(), 375-span)
	}
}

func TestBlockPoolDeterminism(t *testing.T) {
	cfg := config.DefaultFallingConfig().Obstacles
	a := NewBlockPool(cfg, 99)
	b := NewBlockPool(cfg, 99)

	for round := 0; round < 5; round++ {
		top := 400 - float64(round)*75
		a.Recycle(top)
		b.Recycle(top)
		for i := range a.Blocks() {
			if a.Blocks()[i].XOffset() != b.Blocks()[i].XOffset() || a.Blocks()[i].Y() != b.Blocks()[i].Y() {
				t.Fatalf("round %d block %d diverged", round, i)
			}
		}
	}

	a.Reset(99)
	c := NewBlockPool(cfg, 99)
	for i := range a.Blocks() {
		if a.Blocks()[i].XOffset() != c.Blocks()[i].XOffset() {
			t.Fatalf("Reset(seed) should reproduce a fresh pool, block %d differs", i)
		}
	}
}
