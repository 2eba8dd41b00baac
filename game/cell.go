package game

import (
	"fmt"
)

// Cell is either empty or occupied by a single player. The zero value is an
// empty cell.
type Cell struct {
	occupant Player
	occupied bool
}

// Occupied returns a cell holding player's mark
func Occupied(player Player) Cell {
	return Cell{occupant: player, occupied: true}
}

func (cell Cell) IsEmpty() bool {
	return !cell.occupied
}

// Occupant returns the player holding the cell, and false if the cell is empty
func (cell Cell) Occupant() (Player, bool) {
	return cell.occupant, cell.occupied
}

func (cell Cell) String() string {
	return cell.serialize()
}

func (cell Cell) serialize() string {
	if !cell.occupied {
		return "."
	}
	return cell.occupant.String()
}

func deserializeCell(c rune) (Cell, bool) {
	switch c {
	case '.':
		return Cell{}, true
	case 'X', 'x':
		return Occupied(PlayerA), true
	case 'O', 'o':
		return Occupied(PlayerB), true
	default:
		return Cell{}, false
	}
}

// Position addresses a cell by 0-indexed row and column
type Position struct {
	Row, Col int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

func (pos Position) inBounds() bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// Positions lists every cell of the board in row-major order
var Positions = func() []Position {
	positions := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}()
