package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/earthtraveller1/tictactoe/game"
)

const (
	// Terminal cells are about twice as tall as they are wide, so a board cell
	// spans twice as many columns as rows.
	cellRows    = 3
	cellColumns = 2 * cellRows

	// Lines above the board: the status line and a blank line
	headerLines = 2
)

var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	WinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	FullBoardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	cellStyle = lipgloss.NewStyle().
			Width(cellColumns).
			Height(cellRows).
			Align(lipgloss.Center, lipgloss.Center).
			Bold(true)

	lightCellColor   = lipgloss.Color("#3C3C3C")
	darkCellColor    = lipgloss.Color("#262626")
	lastMoveColor    = lipgloss.Color("#7D6B00")
	winningLineColor = lipgloss.Color("#2E7D32")

	playerColors = map[game.Player]lipgloss.Color{
		game.PlayerA: lipgloss.Color("#FF6B6B"),
		game.PlayerB: lipgloss.Color("#4FC3F7"),
	}
)
