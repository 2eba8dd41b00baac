package game

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = Layout{Origin: pixel.V(0, 50), CellSize: 100}

func newTestSession(t *testing.T, opts ...SessionOption) (*Session, *quartz.Mock, *test.Hook) {
	t.Helper()

	clock := quartz.NewMock(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	opts = append([]SessionOption{
		WithClock(clock),
		WithLogger(logrus.NewEntry(logger)),
		WithHighlightDuration(200 * time.Millisecond),
	}, opts...)
	return NewSession(NewBoard(), testLayout, opts...), clock, hook
}

// cellPoint returns a point inside the cell at pos
func cellPoint(pos Position) pixel.Vec {
	return testLayout.CellCenter(pos)
}

func TestSession_Press(t *testing.T) {
	t.Run("Left click places the current player's mark", func(t *testing.T) {
		session, _, _ := newTestSession(t)

		accepted := session.Press(ButtonLeft, pixel.V(150, 150))

		assert.True(t, accepted)
		assert.Equal(t, Occupied(PlayerA), session.Board().CellAt(Position{Row: 1, Col: 1}))
		assert.Equal(t, "Turn: O", session.Status())
	})

	t.Run("Other buttons are ignored", func(t *testing.T) {
		session, _, _ := newTestSession(t)

		assert.False(t, session.Press(ButtonRight, cellPoint(Position{0, 0})))
		assert.False(t, session.Press(ButtonMiddle, cellPoint(Position{0, 0})))
		assert.Equal(t, 0, session.Board().NumMoves())
	})

	t.Run("Clicks outside the board are ignored", func(t *testing.T) {
		session, _, _ := newTestSession(t)

		assert.False(t, session.Press(ButtonLeft, pixel.V(150, 10)))
		assert.False(t, session.Press(ButtonLeft, pixel.V(301, 150)))
		assert.Equal(t, *NewBoard(), *session.Board())
	})

	t.Run("Clicks on occupied cells are absorbed", func(t *testing.T) {
		session, _, hook := newTestSession(t)
		require.True(t, session.Press(ButtonLeft, cellPoint(Position{0, 0})))
		before := *session.Board()

		accepted := session.Press(ButtonLeft, cellPoint(Position{0, 0}))

		assert.False(t, accepted)
		assert.Equal(t, before, *session.Board())
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.DebugLevel, entry.Level)
		assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), ErrCellOccupied)
	})
}

func TestSession_EndToEnd(t *testing.T) {
	// Given: a session which records finished games
	var finished []*Board
	session, _, hook := newTestSession(t, WithGameEndHandler(func(board *Board) {
		finished = append(finished, board)
	}))

	// When: X completes the top row by clicking
	for _, pos := range []Position{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}} {
		require.True(t, session.Press(ButtonLeft, cellPoint(pos)), "move %s", pos)
	}

	// Then: X wins and the game-end handler ran once
	assert.Equal(t, "Winner: X", session.Status())
	require.Len(t, finished, 1)
	assert.Same(t, session.Board(), finished[0])

	var gameOver *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Game over" {
			gameOver = entry
		}
	}
	require.NotNil(t, gameOver)
	assert.Equal(t, PlayerA, gameOver.Data["winner"])

	// Then: a sixth click on an empty cell changes nothing
	before := *session.Board()
	assert.False(t, session.Press(ButtonLeft, cellPoint(Position{2, 0})))
	assert.Equal(t, before, *session.Board())
	assert.Len(t, finished, 1)
}

func TestSession_Annotations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("Last move highlight fades after the highlight duration", func(t *testing.T) {
		session, clock, _ := newTestSession(t)
		session.Play(Position{1, 1})

		clock.Advance(150 * time.Millisecond).MustWait(ctx)
		annotations := session.Annotations()
		require.Len(t, annotations, 1)
		assert.Equal(t, AnnotateLastMove, annotations[0].Type)
		assert.Equal(t, Position{1, 1}, annotations[0].Position)
		assert.Equal(t, 150*time.Millisecond, annotations[0].Age)

		clock.Advance(100 * time.Millisecond).MustWait(ctx)
		assert.Empty(t, session.Annotations())
	})

	t.Run("Winning line stays highlighted", func(t *testing.T) {
		session, clock, _ := newTestSession(t)
		for _, pos := range []Position{{0, 0}, {1, 1}, {1, 0}, {2, 2}, {2, 0}} {
			require.True(t, session.Play(pos))
		}

		clock.Advance(time.Second).MustWait(ctx)
		annotations := session.Annotations()

		require.Len(t, annotations, 3)
		for i, pos := range []Position{{0, 0}, {1, 0}, {2, 0}} {
			assert.Equal(t, AnnotateWinningLine, annotations[i].Type)
			assert.Equal(t, pos, annotations[i].Position)
			assert.True(t, annotations[i].Persistent())
		}
	})

	t.Run("Reset starts a fresh game", func(t *testing.T) {
		session, _, _ := newTestSession(t)
		for _, pos := range []Position{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}} {
			require.True(t, session.Play(pos))
		}

		session.Reset()

		assert.Equal(t, *NewBoard(), *session.Board())
		assert.Empty(t, session.Annotations())
		assert.Equal(t, "Turn: X", session.Status())
	})
}

func TestSession_StatusOnFullBoard(t *testing.T) {
	session, _, _ := newTestSession(t)
	for _, pos := range []Position{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {2, 1}, {2, 0}, {0, 2}, {1, 2}, {1, 0}} {
		require.True(t, session.Play(pos))
	}

	assert.Equal(t, "No moves left", session.Status())
	assert.Equal(t, InProgress, session.Board().State())
}
