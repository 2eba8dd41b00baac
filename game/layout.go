package game

import (
	"math"

	"github.com/faiface/pixel"
)

// Layout places the board on a drawing surface. Screen coordinates grow
// rightwards and downwards, and Origin is the top-left corner of the board.
type Layout struct {
	Origin   pixel.Vec
	CellSize float64
}

// Size is the width (and height) of the whole board
func (layout Layout) Size() float64 {
	return layout.CellSize * BoardSize
}

func (layout Layout) Bounds() pixel.Rect {
	return pixel.Rect{
		Min: layout.Origin,
		Max: layout.Origin.Add(pixel.V(layout.Size(), layout.Size())),
	}
}

// MapPixelToCell returns the cell under pos, or false when pos lies outside
// the board
func (layout Layout) MapPixelToCell(pos pixel.Vec) (Position, bool) {
	if layout.CellSize <= 0 {
		return Position{}, false
	}

	rel := pos.Sub(layout.Origin)
	size := layout.Size()
	if rel.X < 0 || rel.Y < 0 || rel.X >= size || rel.Y >= size {
		return Position{}, false
	}

	return Position{
		Row: clampIndex(math.Floor(rel.Y / layout.CellSize)),
		Col: clampIndex(math.Floor(rel.X / layout.CellSize)),
	}, true
}

// CellOrigin is the top-left corner of the cell at pos
func (layout Layout) CellOrigin(pos Position) pixel.Vec {
	return layout.Origin.Add(pixel.V(float64(pos.Col), float64(pos.Row)).Scaled(layout.CellSize))
}

func (layout Layout) CellBounds(pos Position) pixel.Rect {
	origin := layout.CellOrigin(pos)
	return pixel.Rect{
		Min: origin,
		Max: origin.Add(pixel.V(layout.CellSize, layout.CellSize)),
	}
}

func (layout Layout) CellCenter(pos Position) pixel.Vec {
	return layout.CellBounds(pos).Center()
}

func clampIndex(index float64) int {
	return int(math.Min(math.Max(index, 0), BoardSize-1))
}
