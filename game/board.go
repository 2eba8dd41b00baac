package game

import (
	"fmt"

	"github.com/earthtraveller1/tictactoe/util/collections"
)

// Lines checked for a winner, in scan order: rows, then columns, then the
// main diagonal and the anti-diagonal.
var lines = [][BoardSize]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

type Board struct {
	cells [BoardSize][BoardSize]Cell

	turn     Player
	winner   Player
	state    BoardState
	numMoves int
}

// MoveOutcome describes an accepted move
type MoveOutcome struct {
	Position Position
	Player   Player

	winner  Player
	decided bool
}

// Winner returns the player who won with this move, if any
func (outcome MoveOutcome) Winner() (Player, bool) {
	return outcome.winner, outcome.decided
}

// NewBoard returns an empty board with PlayerA to move
func NewBoard() *Board {
	return &Board{
		turn:  PlayerA,
		state: InProgress,
	}
}

// CellAt returns the cell at pos. Positions outside the board read as empty.
func (board *Board) CellAt(pos Position) Cell {
	if !pos.inBounds() {
		return Cell{}
	}
	return board.cells[pos.Row][pos.Col]
}

func (board *Board) Turn() Player {
	return board.turn
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) NumMoves() int {
	return board.numMoves
}

// Winner returns the player who completed a line, and false while undecided
func (board *Board) Winner() (Player, bool) {
	return board.winner, board.state == Decided
}

// Full reports whether every cell is occupied. A full board without a
// winner stays InProgress.
func (board *Board) Full() bool {
	return board.numMoves == BoardSize*BoardSize
}

func (board *Board) canPlay() bool {
	return board.state == InProgress
}

// ApplyMove places the current player's mark at pos, passes the turn to the
// other player and recomputes the winner. A rejected move leaves the board
// untouched.
func (board *Board) ApplyMove(pos Position) (MoveOutcome, error) {
	if !board.canPlay() {
		return MoveOutcome{}, fmt.Errorf("%w: %s won", ErrGameAlreadyOver, board.winner)
	}
	if !pos.inBounds() {
		return MoveOutcome{}, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if !board.cells[pos.Row][pos.Col].IsEmpty() {
		return MoveOutcome{}, fmt.Errorf("%w: %s", ErrCellOccupied, pos)
	}

	player := board.turn
	board.setCell(pos, Occupied(player))
	board.turn = player.Other()
	board.updateWinner()

	outcome := MoveOutcome{
		Position: pos,
		Player:   player,
	}
	outcome.winner, outcome.decided = board.Winner()
	return outcome, nil
}

// ComputeWinner scans every line and returns the occupant of the first one
// completely held by a single player.
func (board *Board) ComputeWinner() (Player, bool) {
	line, ok := board.WinningLine()
	if !ok {
		return 0, false
	}
	return board.CellAt(line[0]).Occupant()
}

// WinningLine returns the first completed line, in the same scan order as
// ComputeWinner
func (board *Board) WinningLine() ([BoardSize]Position, bool) {
	for _, line := range lines {
		if board.lineOwner(line) != nil {
			return line, true
		}
	}
	return [BoardSize]Position{}, false
}

// WinningCells returns the cells of the winning line, or an empty set
func (board *Board) WinningCells() collections.Set[Position] {
	line, ok := board.WinningLine()
	if !ok {
		return collections.NewSet[Position]()
	}
	return collections.NewSet(line[:]...)
}

func (board *Board) lineOwner(line [BoardSize]Position) *Player {
	first, ok := board.CellAt(line[0]).Occupant()
	if !ok {
		return nil
	}
	for _, pos := range line[1:] {
		if board.CellAt(pos) != Occupied(first) {
			return nil
		}
	}
	return &first
}

func (board *Board) updateWinner() {
	if winner, ok := board.ComputeWinner(); ok {
		board.winner = winner
		board.state = Decided
	}
}

func (board *Board) setCell(pos Position, cell Cell) {
	if board.cells[pos.Row][pos.Col].IsEmpty() && !cell.IsEmpty() {
		board.numMoves++
	}
	board.cells[pos.Row][pos.Col] = cell
}

func (board *Board) countMarks() map[Player]int {
	counts := make(map[Player]int, len(Players))
	for _, pos := range Positions {
		if player, ok := board.CellAt(pos).Occupant(); ok {
			counts[player]++
		}
	}
	return counts
}

func (board *Board) String() string {
	return board.Snapshot().SerializedBoard
}
