package tictactoe

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.MarkEmpty
)

func newController(t *testing.T) *GameController {
	t.Helper()

	return NewGameController(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func play(t *testing.T, game *GameController, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.True(t, game.ApplyMove(cell), "move on cell %d rejected", cell)
	}
}

func TestNewGameController(t *testing.T) {
	// Given: a new game
	game := newController(t)

	// Then: the game state should correspond to the expected initial state
	expected := entity.Snapshot{
		Board:      entity.Board{},
		Step:       0,
		HistoryLen: 1,
		NextMark:   entity.MarkX,
		Status:     entity.GameStatus{State: entity.StateInProgress},
		CanUndo:    false,
		CanRedo:    false,
	}

	require.Equal(t, expected, game.Snapshot())
}

func TestGameController_ApplyMove(t *testing.T) {
	t.Run("ApplyMove", func(t *testing.T) {
		// Given: a new game
		game := newController(t)

		// When: X plays the centre
		accepted := game.ApplyMove(4)

		// Then: the board holds X and it is O's turn
		require.True(t, accepted)
		assert.Equal(t, entity.Board{e, e, e, e, x, e, e, e, e}, game.Board())
		assert.Equal(t, entity.MarkO, game.NextMark())
		assert.Equal(t, 1, game.Step())
		assert.Equal(t, 2, game.HistoryLen())
	})

	t.Run("Occupied cell is a no-op", func(t *testing.T) {
		// Given: X has played the centre
		game := newController(t)
		play(t, game, 4)
		before := game.Snapshot()

		// When: O tries to play the same cell
		accepted := game.ApplyMove(4)

		// Then: nothing changes, X is still on 4 and it is still O's turn
		assert.False(t, accepted)
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, entity.MarkX, game.Board()[4])
		assert.Equal(t, entity.MarkO, game.NextMark())
	})

	t.Run("Out of range cells are a no-op", func(t *testing.T) {
		// Given: a new game
		game := newController(t)
		before := game.Snapshot()

		// When: invalid cells are played
		// Then: every move is rejected and the state is untouched
		for _, cell := range []int{-1, 9, 20} {
			assert.False(t, game.ApplyMove(cell), "cell %d", cell)
		}
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Moves after a win are a no-op", func(t *testing.T) {
		// Given: X has won
		game := newController(t)
		play(t, game, 0, 1, 4, 2, 8)
		before := game.Snapshot()

		// When: O tries to keep playing
		accepted := game.ApplyMove(3)

		// Then: the move is rejected
		assert.False(t, accepted)
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Moves on a drawn board are a no-op", func(t *testing.T) {
		// Given: a drawn game
		game := newController(t)
		play(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)
		before := game.Snapshot()

		// When: any cell is played
		// Then: nothing changes
		for cell := range entity.BoardSize {
			assert.False(t, game.ApplyMove(cell))
		}
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("New move after undo discards the redo branch", func(t *testing.T) {
		// Given: three moves, two of them undone
		game := newController(t)
		play(t, game, 0, 1, 2)
		require.True(t, game.Undo())
		require.True(t, game.Undo())
		require.True(t, game.CanRedo())

		// When: O plays somewhere else
		accepted := game.ApplyMove(8)

		// Then: history is cut after step 1 and the new board is appended
		require.True(t, accepted)
		assert.Equal(t, 2, game.Step())
		assert.Equal(t, 3, game.HistoryLen())
		assert.False(t, game.CanRedo())
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, o}, game.Board())
	})
}

func TestGameController_HistoryInvariants(t *testing.T) {
	// Given: a full game without a winner
	game := newController(t)
	previous := game.Board()

	for i, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		expectedMark := game.NextMark()

		// When: the next move is applied
		play(t, game, cell)

		// Then: history grows by one, the turn alternates and exactly one cell changes
		assert.Equal(t, game.Step()+1, game.HistoryLen())
		assert.Equal(t, entity.MarkForStep(i), expectedMark)
		assert.Equal(t, entity.MarkForStep(i+1), game.NextMark())

		current := game.Board()
		changed := 0
		for idx := range current {
			if current[idx] != previous[idx] {
				changed++
				assert.True(t, previous[idx].IsEmpty())
				assert.Equal(t, expectedMark, current[idx])
			}
		}
		assert.Equal(t, 1, changed)

		previous = current
	}
}

func TestGameController_UndoRedo(t *testing.T) {
	t.Run("Undo at the first step is a no-op", func(t *testing.T) {
		game := newController(t)

		assert.False(t, game.CanUndo())
		assert.False(t, game.Undo())
		assert.Equal(t, 0, game.Step())
	})

	t.Run("Redo at the last step is a no-op", func(t *testing.T) {
		game := newController(t)
		play(t, game, 0)

		assert.False(t, game.CanRedo())
		assert.False(t, game.Redo())
		assert.Equal(t, 1, game.Step())
	})

	t.Run("Undo then redo restores the board", func(t *testing.T) {
		// Given: two moves
		game := newController(t)
		play(t, game, 0, 4)
		before := game.Snapshot()

		// When: undo followed by redo
		require.True(t, game.Undo())
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, e}, game.Board())
		assert.Equal(t, entity.MarkO, game.NextMark())
		require.True(t, game.Redo())

		// Then: the exact prior state is back
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Undo back to the start and replay", func(t *testing.T) {
		// Given: three moves
		game := newController(t)
		play(t, game, 0, 4, 8)
		afterThree := game.Board()

		// When: everything is undone
		require.True(t, game.Undo())
		require.True(t, game.Undo())
		assert.Equal(t, 1, game.Step())
		require.True(t, game.Undo())

		// Then: the board is empty at step 0 and X is next
		assert.Equal(t, entity.Board{}, game.Board())
		assert.Equal(t, 0, game.Step())
		assert.Equal(t, entity.MarkX, game.NextMark())
		assert.Equal(t, 4, game.HistoryLen())

		// When: everything is redone
		require.True(t, game.Redo())
		require.True(t, game.Redo())
		require.True(t, game.Redo())

		// Then: the board matches the third step exactly
		assert.Equal(t, afterThree, game.Board())
		assert.Equal(t, 3, game.Step())
		assert.False(t, game.Redo())
	})

	t.Run("Undo is locked after a win", func(t *testing.T) {
		// Given: X has won on the main diagonal
		game := newController(t)
		play(t, game, 0, 1, 4, 2, 8)
		before := game.Snapshot()

		// When: undo and redo are attempted
		undone := game.Undo()
		redone := game.Redo()

		// Then: both are rejected and the state is unchanged
		assert.False(t, undone)
		assert.False(t, redone)
		assert.False(t, game.CanUndo())
		assert.False(t, game.CanRedo())
		assert.Equal(t, before, game.Snapshot())
		assert.ErrorIs(t, game.validateUndo(), apperror.ErrHistoryLocked)
	})

	t.Run("Undo is allowed after a draw", func(t *testing.T) {
		// Given: a drawn game
		game := newController(t)
		play(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)
		drawn := game.Board()
		require.Equal(t, entity.StateDrawn, game.Status().State)
		require.True(t, game.CanUndo())

		// When: the last move is undone
		require.True(t, game.Undo())

		// Then: the game is in progress again with X to play the last cell
		assert.Equal(t, entity.StateInProgress, game.Status().State)
		assert.Equal(t, entity.MarkX, game.NextMark())
		assert.True(t, game.CanRedo())

		// When: the draw is redone
		require.True(t, game.Redo())

		// Then: the drawn board is back
		assert.Equal(t, drawn, game.Board())
		assert.Equal(t, entity.StateDrawn, game.Status().State)
	})
}

func TestGameController_Restart(t *testing.T) {
	// Given: a game with moves and undos
	game := newController(t)
	play(t, game, 0, 4, 8, 2)
	require.True(t, game.Undo())

	// When: the game is restarted
	game.Restart()

	// Then: the game is back to its initial state
	assert.Equal(t, entity.Board{}, game.Board())
	assert.Equal(t, 0, game.Step())
	assert.Equal(t, 1, game.HistoryLen())
	assert.Equal(t, entity.MarkX, game.NextMark())
	assert.Equal(t, entity.GameStatus{State: entity.StateInProgress}, game.Status())
	assert.False(t, game.CanUndo())
	assert.False(t, game.CanRedo())
}

func TestGameController_Scenarios(t *testing.T) {
	t.Run("X wins on the main diagonal", func(t *testing.T) {
		// Given: a new game
		game := newController(t)

		// When: X@0, O@1, X@4, O@2, X@8
		play(t, game, 0, 1, 4, 2, 8)

		// Then: X has won
		assert.Equal(t, entity.GameStatus{State: entity.StateWon, Winner: entity.MarkX}, game.Status())
		assert.Equal(t, entity.Board{x, o, o, e, x, e, e, e, x}, game.Board())
	})

	t.Run("Board fills without a line", func(t *testing.T) {
		// Given: a new game
		game := newController(t)

		// When: the board is filled as X O X / X O O / O X X
		play(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is drawn and nobody won
		assert.Equal(t, entity.Board{x, o, x, x, o, o, o, x, x}, game.Board())
		assert.Equal(t, entity.GameStatus{State: entity.StateDrawn}, game.Status())
		assert.True(t, entity.IsDraw(game.Board()))
	})
}

func TestGameController_validateMove(t *testing.T) {
	game := newController(t)
	play(t, game, 4)

	assert.ErrorIs(t, game.validateMove(-1), apperror.ErrInvalidCell)
	assert.ErrorIs(t, game.validateMove(4), apperror.ErrCellOccupied)
	assert.NoError(t, game.validateMove(0))

	play(t, game, 0, 2, 1, 6)
	assert.ErrorIs(t, game.validateMove(3), apperror.ErrGameFinished)
}
