package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/faiface/pixel"
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

type AnnotationType int

const (
	AnnotateLastMove AnnotationType = iota
	AnnotateWinningLine
)

// Annotation highlights a cell for the renderers. Last-move highlights
// expire after the session's highlight duration; winning-line highlights
// stay until the next game.
type Annotation struct {
	Type     AnnotationType
	Position Position
	// Time since the annotation was first shown
	Age time.Duration

	firstShown time.Time
}

func (annotation Annotation) Persistent() bool {
	return annotation.Type == AnnotateWinningLine
}

// Session owns the board of the game being played and turns input events
// into moves
type Session struct {
	board  *Board
	layout Layout

	clock             quartz.Clock
	logger            *logrus.Entry
	highlightDuration time.Duration
	annotations       deque.Deque

	onGameEnd func(*Board)
}

type SessionOption func(*Session)

func WithClock(clock quartz.Clock) SessionOption {
	return func(session *Session) {
		session.clock = clock
	}
}

func WithLogger(logger *logrus.Entry) SessionOption {
	return func(session *Session) {
		session.logger = logger
	}
}

func WithHighlightDuration(duration time.Duration) SessionOption {
	return func(session *Session) {
		session.highlightDuration = duration
	}
}

// WithGameEndHandler registers a callback run once when a move decides the
// game
func WithGameEndHandler(onGameEnd func(*Board)) SessionOption {
	return func(session *Session) {
		session.onGameEnd = onGameEnd
	}
}

func NewSession(board *Board, layout Layout, opts ...SessionOption) *Session {
	session := &Session{
		board:             board,
		layout:            layout,
		clock:             quartz.NewReal(),
		logger:            logrus.NewEntry(logrus.StandardLogger()),
		highlightDuration: NewGameConfig().HighlightDuration,
	}
	for _, opt := range opts {
		opt(session)
	}
	session.logger = session.logger.WithField("component", "session")
	return session
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Layout() Layout {
	return session.layout
}

func (session *Session) HighlightDuration() time.Duration {
	return session.highlightDuration
}

// Press handles a pointer press at pos, in the layout's screen coordinates.
// Only the left button places marks. Presses that do not produce a move are
// ignored; the return value reports whether the board changed.
func (session *Session) Press(button Button, pos pixel.Vec) bool {
	if button != ButtonLeft {
		return false
	}

	cellPos, ok := session.layout.MapPixelToCell(pos)
	if !ok {
		session.logger.WithField("pos", pos).Debug("Press outside of board")
		return false
	}

	return session.Play(cellPos)
}

// Play applies a move for the player holding the turn. Rejected moves are
// logged and leave the board unchanged.
func (session *Session) Play(pos Position) bool {
	outcome, err := session.board.ApplyMove(pos)
	if err != nil {
		logger := session.logger.WithError(err).WithField("cell", pos)
		if errors.Is(err, ErrOutOfBounds) {
			logger.Warn("Move outside of board")
		} else {
			logger.Debug("Move rejected")
		}
		return false
	}

	session.logger.WithFields(logrus.Fields{
		"cell":   pos,
		"player": outcome.Player,
	}).Debug("Move applied")

	now := session.clock.Now()
	session.annotations.PushBack(Annotation{
		Type:       AnnotateLastMove,
		Position:   pos,
		firstShown: now,
	})

	if winner, decided := outcome.Winner(); decided {
		line, _ := session.board.WinningLine()
		for _, linePos := range line {
			session.annotations.PushBack(Annotation{
				Type:       AnnotateWinningLine,
				Position:   linePos,
				firstShown: now,
			})
		}

		session.logger.WithFields(logrus.Fields{
			"winner": winner,
			"moves":  session.board.NumMoves(),
		}).Info("Game over")

		if session.onGameEnd != nil {
			session.onGameEnd(session.board)
		}
	} else if session.board.Full() {
		session.logger.Info("Board full without a winner")
	}

	return true
}

// Reset starts a new game on a fresh board
func (session *Session) Reset() {
	session.board = NewBoard()
	session.annotations = deque.Deque{}
	session.logger.Debug("New game")
}

// Annotations drops expired highlights and returns the live ones, oldest
// first
func (session *Session) Annotations() []Annotation {
	now := session.clock.Now()

	for session.annotations.Len() > 0 {
		front := session.annotations.Front().(Annotation)
		if front.Persistent() || now.Sub(front.firstShown) <= session.highlightDuration {
			break
		}
		session.annotations.PopFront()
	}

	annotations := make([]Annotation, session.annotations.Len())
	for i := range annotations {
		annotation := session.annotations.At(i).(Annotation)
		annotation.Age = now.Sub(annotation.firstShown)
		annotations[i] = annotation
	}
	return annotations
}

// Status is the one-line summary shown above the board
func (session *Session) Status() string {
	board := session.board
	if winner, ok := board.Winner(); ok {
		return fmt.Sprintf("Winner: %s", winner)
	}
	if board.Full() {
		return "No moves left"
	}
	return fmt.Sprintf("Turn: %s", board.Turn())
}
