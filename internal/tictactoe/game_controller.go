package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// GameController - owns the move history of a single game and enforces the rules.
// It is not safe for concurrent use.
type GameController struct {
	logger *slog.Logger

	// history[0] is always the empty board; step indexes the board on display.
	history []entity.Board
	step    int
}

func NewGameController(logger *slog.Logger) *GameController {
	that := &GameController{
		logger: logger.With("component", "game_controller"),
	}
	that.reset()

	return that
}

// ApplyMove - places the next mark on cell. Reports false and leaves the game untouched when the move is not allowed.
func (that *GameController) ApplyMove(cell int) bool {
	log := that.logger.With("method", "ApplyMove", "cell", cell, "step", that.step)

	if err := that.validateMove(cell); err != nil {
		log.Debug("move rejected", "reason", err)
		return false
	}

	mark := that.NextMark()
	board := that.Board()
	board[cell] = mark

	// a new move drops every board after the current one
	that.history = append(that.history[:that.step+1], board)
	that.step = len(that.history) - 1

	log.Debug("move applied", "mark", mark)

	return true
}

// Undo - steps back one move. Not allowed at the first step or while the current board has a winner.
func (that *GameController) Undo() bool {
	log := that.logger.With("method", "Undo", "step", that.step)

	if err := that.validateUndo(); err != nil {
		log.Debug("undo rejected", "reason", err)
		return false
	}

	that.step--

	return true
}

// Redo - steps forward one move. Not allowed at the last step or while the current board has a winner.
func (that *GameController) Redo() bool {
	log := that.logger.With("method", "Redo", "step", that.step)

	if err := that.validateRedo(); err != nil {
		log.Debug("redo rejected", "reason", err)
		return false
	}

	that.step++

	return true
}

// Restart - drops the history and starts a new game.
func (that *GameController) Restart() {
	that.reset()
	that.logger.Debug("game restarted")
}

// Board - returns a copy of the board at the current step.
func (that *GameController) Board() entity.Board {
	return that.history[that.step]
}

func (that *GameController) NextMark() entity.Mark {
	return entity.MarkForStep(that.step)
}

func (that *GameController) Status() entity.GameStatus {
	return entity.StatusOf(that.Board())
}

func (that *GameController) CanUndo() bool {
	return that.validateUndo() == nil
}

func (that *GameController) CanRedo() bool {
	return that.validateRedo() == nil
}

func (that *GameController) Step() int {
	return that.step
}

func (that *GameController) HistoryLen() int {
	return len(that.history)
}

// Snapshot - collects every query into a single view.
func (that *GameController) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board:      that.Board(),
		Step:       that.step,
		HistoryLen: len(that.history),
		NextMark:   that.NextMark(),
		Status:     that.Status(),
		CanUndo:    that.CanUndo(),
		CanRedo:    that.CanRedo(),
	}
}

func (that *GameController) reset() {
	that.history = []entity.Board{{}}
	that.step = 0
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	board := that.Board()
	if entity.StatusOf(board).IsOver() {
		return apperror.ErrGameFinished
	}

	if !board[cell].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// the winner lock is evaluated on the board on display, so a draw never blocks navigation
func (that *GameController) validateUndo() error {
	if that.step == 0 {
		return apperror.ErrNothingToUndo
	}

	if !entity.EvaluateWinner(that.Board()).IsEmpty() {
		return apperror.ErrHistoryLocked
	}

	return nil
}

func (that *GameController) validateRedo() error {
	if that.step >= len(that.history)-1 {
		return apperror.ErrNothingToRedo
	}

	if !entity.EvaluateWinner(that.Board()).IsEmpty() {
		return apperror.ErrHistoryLocked
	}

	return nil
}
