package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/earthtraveller1/tictactoe/game"
	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
)

// Layout places the board below the status line. Mouse columns are halved
// before mapping, so board cells are square in layout units.
var Layout = game.Layout{
	Origin:   pixel.V(0, headerLines),
	CellSize: cellRows,
}

var mouseButtons = map[tea.MouseButton]game.Button{
	tea.MouseButtonLeft:   game.ButtonLeft,
	tea.MouseButtonRight:  game.ButtonRight,
	tea.MouseButtonMiddle: game.ButtonMiddle,
}

// refreshMsg redraws the board once a move highlight has expired
type refreshMsg struct{}

// Model is the bubbletea model playing a session in the terminal
type Model struct {
	session *game.Session
	logger  *logrus.Entry
	help    help.Model

	quitting bool
}

func NewModel(session *game.Session, logger *logrus.Entry) *Model {
	return &Model{
		session: session,
		logger:  logger.WithField("component", "tui"),
		help:    help.New(),
	}
}

// Run plays session in the terminal until the player quits
func Run(session *game.Session, logger *logrus.Entry) error {
	program := tea.NewProgram(
		NewModel(session, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.NewGame):
			m.session.Reset()
		case key.Matches(msg, keys.Place):
			index := int(msg.String()[0] - '1')
			pos := game.Position{Row: index / game.BoardSize, Col: index % game.BoardSize}
			if m.session.Play(pos) {
				return m, m.expireHighlight()
			}
		}

	case tea.MouseMsg:
		button, ok := mouseButtons[msg.Button]
		if !ok || msg.Action != tea.MouseActionPress {
			break
		}
		if m.session.Press(button, terminalToLayout(msg.X, msg.Y)) {
			return m, m.expireHighlight()
		}

	case refreshMsg:
		m.logger.Trace("Highlight expired")
	}

	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	board := m.session.Board()

	statusStyle := StatusStyle
	if _, decided := board.Winner(); decided {
		statusStyle = WinnerStyle
	} else if board.Full() {
		statusStyle = FullBoardStyle
	}

	lastMoves := make(map[game.Position]bool)
	for _, annotation := range m.session.Annotations() {
		if annotation.Type == game.AnnotateLastMove {
			lastMoves[annotation.Position] = true
		}
	}
	winningCells := board.WinningCells()

	rows := make([][]string, game.BoardSize)
	for _, pos := range game.Positions {
		background := lightCellColor
		if (pos.Row+pos.Col)%2 == 1 {
			background = darkCellColor
		}
		switch {
		case winningCells.Contains(pos):
			background = winningLineColor
		case lastMoves[pos]:
			background = lastMoveColor
		}

		style := cellStyle.Background(background)
		mark := ""
		if player, ok := board.CellAt(pos).Occupant(); ok {
			style = style.Foreground(playerColors[player])
			mark = player.String()
		}
		rows[pos.Row] = append(rows[pos.Row], style.Render(mark))
	}

	renderedRows := make([]string, len(rows))
	for i, row := range rows {
		renderedRows[i] = lipgloss.JoinHorizontal(lipgloss.Top, row...)
	}

	var view strings.Builder
	view.WriteString(statusStyle.Render(m.session.Status()))
	view.WriteString(strings.Repeat("\n", headerLines))
	view.WriteString(lipgloss.JoinVertical(lipgloss.Left, renderedRows...))
	view.WriteString("\n\n")
	view.WriteString(m.help.View(keys))
	return view.String()
}

func (m *Model) expireHighlight() tea.Cmd {
	duration := m.session.HighlightDuration()
	if duration <= 0 {
		return nil
	}
	return tea.Tick(duration+10*time.Millisecond, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

// terminalToLayout converts a terminal cell coordinate to layout units
func terminalToLayout(x, y int) pixel.Vec {
	return pixel.V(float64(x)*cellRows/cellColumns, float64(y))
}
