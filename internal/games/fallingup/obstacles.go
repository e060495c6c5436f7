package fallingup

import (
	"math/rand"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
)

// Block is a pair of bars sharing one lane, separated by a fixed gap.
// Bar boxes are computed from (xOffset, y) on demand.
type Block struct {
	y       float64
	xOffset float64

	barW, barH float64
	gap        float64
	offsetMax  int
	rng        *rand.Rand
}

// NewBlock creates a block at laneY with an offset drawn from rng.
func NewBlock(laneY float64, cfg config.ObstacleConfig, rng *rand.Rand) *Block {
	b := &Block{
		barW:      cfg.BarWidth,
		barH:      cfg.BarHeight,
		gap:       cfg.Gap,
		offsetMax: cfg.OffsetMax,
		rng:       rng,
	}
	b.Reposition(laneY)
	return b
}

// drawOffset returns an integer uniformly drawn from [-offsetMax, 0].
func (b *Block) drawOffset() float64 {
	return float64(b.rng.Intn(b.offsetMax+1) - b.offsetMax)
}

// Reposition moves the block to newY with a freshly drawn offset.
func (b *Block) Reposition(newY float64) {
	b.y = newY
	b.xOffset = b.drawOffset()
}

// Y returns the lane coordinate (bottom edge of both bars).
func (b *Block) Y() float64 {
	return b.y
}

// XOffset returns the left bar's x position.
func (b *Block) XOffset() float64 {
	return b.xOffset
}

// LeftBar returns the left bar's box.
func (b *Block) LeftBar() core.Box {
	return core.NewBox(b.xOffset, b.y, b.barW, b.barH)
}

// RightBar returns the right bar's box, gap+barW to the right of the left bar.
func (b *Block) RightBar() core.Box {
	return core.NewBox(b.xOffset+b.gap+b.barW, b.y, b.barW, b.barH)
}

// Top returns the lane's upper edge.
func (b *Block) Top() float64 {
	return b.y + b.barH
}

// CollidesWith reports whether box overlaps either bar.
func (b *Block) CollidesWith(box core.Box) bool {
	return b.LeftBar().Overlaps(box) || b.RightBar().Overlaps(box)
}

// BlockPool is the fixed set of blocks recycled for the whole run.
type BlockPool struct {
	blocks []*Block
	rng    *rand.Rand
	cfg    config.ObstacleConfig
}

// NewBlockPool creates PoolSize blocks spaced by BarHeight+Spacing from y=0.
func NewBlockPool(cfg config.ObstacleConfig, seed int64) *BlockPool {
	p := &BlockPool{cfg: cfg}
	p.Reset(seed)
	return p
}

// Reset reseeds the pool and rebuilds every lane.
func (p *BlockPool) Reset(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
	p.blocks = p.blocks[:0]
	for i := 0; i < p.cfg.PoolSize; i++ {
		p.blocks = append(p.blocks, NewBlock(float64(i)*p.LaneStride(), p.cfg, p.rng))
	}
}

// LaneStride is the vertical distance between consecutive lanes.
func (p *BlockPool) LaneStride() float64 {
	return p.cfg.BarHeight + p.cfg.Spacing
}

// Recycle moves every block whose top has scrolled above windowTop to the
// bottom of the pool and returns how many were moved.
func (p *BlockPool) Recycle(windowTop float64) int {
	moved := 0
	span := p.LaneStride() * float64(len(p.blocks))
	for _, b := range p.blocks {
		if windowTop < b.Top() {
			b.Reposition(b.y - span)
			moved++
		}
	}
	return moved
}

// Blocks returns the pool's blocks. Callers must not retain the slice
// across Reset.
func (p *BlockPool) Blocks() []*Block {
	return p.blocks
}

// Lowest returns the block with the smallest lane coordinate.
func (p *BlockPool) Lowest() *Block {
	var lowest *Block
	for _, b := range p.blocks {
		if lowest == nil || b.y < lowest.y {
			lowest = b
		}
	}
	return lowest
}
