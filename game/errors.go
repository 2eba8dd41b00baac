package game

import "errors"

var (
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrOutOfBounds     = errors.New("cell is outside the board")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrInvalidSnapshot = errors.New("invalid board snapshot")
	ErrInvalidConfig   = errors.New("invalid game config")
)
