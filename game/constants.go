package game

type Player int
type BoardState int

const (
	PlayerA Player = iota
	PlayerB
)

var Players = []Player{
	PlayerA,
	PlayerB,
}

const (
	InProgress BoardState = iota
	Decided
)

const (
	BoardSize = 3
)

var playerSymbols = map[Player]string{
	PlayerA: "X",
	PlayerB: "O",
}

func (player Player) String() string {
	if symbol, ok := playerSymbols[player]; ok {
		return symbol
	}
	return "?"
}

// Other returns the opponent of player
func (player Player) Other() Player {
	if player == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (state BoardState) String() string {
	switch state {
	case InProgress:
		return "in progress"
	case Decided:
		return "decided"
	default:
		return "unknown"
	}
}
