package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the YAML form of a board position: one row per line,
// with X, O or . for each cell.
type BoardSnapshot struct {
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		var builder strings.Builder
		for col := 0; col < BoardSize; col++ {
			builder.WriteString(board.cells[row][col].serialize())
		}
		rows[row] = builder.String()
	}
	return &BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the position. The turn is derived from the number of
// marks, X always moving first.
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidSnapshot, BoardSize, len(rows))
	}

	board := NewBoard()
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len([]rune(row)) != BoardSize {
			return nil, fmt.Errorf("%w: row %d must have %d cells: %q", ErrInvalidSnapshot, y, BoardSize, row)
		}

		for x, c := range []rune(row) {
			cell, ok := deserializeCell(c)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidSnapshot, c, y, x)
			}
			board.setCell(Position{Row: y, Col: x}, cell)
		}
	}

	counts := board.countMarks()
	switch counts[PlayerA] - counts[PlayerB] {
	case 0:
		board.turn = PlayerA
	case 1:
		board.turn = PlayerB
	default:
		return nil, fmt.Errorf("%w: %d X marks and %d O marks", ErrInvalidSnapshot, counts[PlayerA], counts[PlayerB])
	}

	owners := make(map[Player]struct{})
	for _, line := range lines {
		if owner := board.lineOwner(line); owner != nil {
			owners[*owner] = struct{}{}
		}
	}
	if len(owners) > 1 {
		return nil, fmt.Errorf("%w: both players hold a line", ErrInvalidSnapshot)
	}

	board.updateWinner()
	if winner, ok := board.Winner(); ok && winner == board.turn {
		// The winner always made the last move, so the turn must have passed.
		return nil, fmt.Errorf("%w: %s won but is also to move", ErrInvalidSnapshot, winner)
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return LoadSnapshot(string(contents))
}
