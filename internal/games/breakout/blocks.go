package breakout

import (
	"iter"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Block is a single brick of the grid.
type Block struct {
	core.Rect
	Row, Col int
	Active   bool
}

// Bounds implements Collidable.
func (b *Block) Bounds() core.Rect {
	return b.Rect
}

// BlockGrid is the fixed rows x columns layout of blocks, centered on the
// field. Blocks are never added or removed; only their active flag changes.
type BlockGrid struct {
	Rows    int
	Columns int
	blocks  []Block
}

// NewBlockGrid lays out the grid. Block origins are pitch apart and the
// whole grid is centered in the field.
func NewBlockGrid(cfg config.GridConfig, field core.Rect) *BlockGrid {
	g := &BlockGrid{
		Rows:    cfg.Rows,
		Columns: cfg.Columns,
		blocks:  make([]Block, 0, cfg.Rows*cfg.Columns),
	}
	offsetX := field.X + (field.W-cfg.PitchX*float64(cfg.Columns))/2
	offsetY := field.Y + (field.H-cfg.PitchY*float64(cfg.Rows))/2

	for row := range cfg.Rows {
		for col := range cfg.Columns {
			g.blocks = append(g.blocks, Block{
				Rect: core.NewRect(
					cfg.PitchX*float64(col)+offsetX,
					cfg.PitchY*float64(row)+offsetY,
					cfg.BlockWidth,
					cfg.BlockHeight,
				),
				Row:    row,
				Col:    col,
				Active: true,
			})
		}
	}
	return g
}

// Len returns the total number of blocks, active or not.
func (g *BlockGrid) Len() int {
	return len(g.blocks)
}

// At returns the block at index i (row-major).
func (g *BlockGrid) At(i int) *Block {
	return &g.blocks[i]
}

// Each calls fn for every block.
func (g *BlockGrid) Each(fn func(i int, b *Block)) {
	for i := range g.blocks {
		fn(i, &g.blocks[i])
	}
}

// Active iterates over the blocks still in play. Blocks deactivated during
// the iteration are skipped from then on.
func (g *BlockGrid) Active() iter.Seq2[int, *Block] {
	return func(yield func(int, *Block) bool) {
		for i := range g.blocks {
			if !g.blocks[i].Active {
				continue
			}
			if !yield(i, &g.blocks[i]) {
				return
			}
		}
	}
}

// CountActive returns the number of blocks still in play.
func (g *BlockGrid) CountActive() int {
	n := 0
	for i := range g.blocks {
		if g.blocks[i].Active {
			n++
		}
	}
	return n
}
