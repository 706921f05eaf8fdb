package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// GameUseCase - the operations a frontend may call. The bool result reports whether the gesture changed the game.
type GameUseCase interface {
	State(ctx context.Context) entity.Snapshot

	MakeTurn(ctx context.Context, cell int) (entity.Snapshot, bool)
	Undo(ctx context.Context) (entity.Snapshot, bool)
	Redo(ctx context.Context) (entity.Snapshot, bool)
	Restart(ctx context.Context) entity.Snapshot
}

type gameController interface {
	ApplyMove(cell int) bool
	Undo() bool
	Redo() bool
	Restart()
	Snapshot() entity.Snapshot
}

type gameUseCase struct {
	logger *slog.Logger

	mu         sync.Mutex
	controller gameController
}

func NewGameUseCase(logger *slog.Logger, controller gameController) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "game_usecase"),
		controller: controller,
	}
}

func (that *gameUseCase) State(_ context.Context) entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.controller.Snapshot()
}

func (that *gameUseCase) MakeTurn(ctx context.Context, cell int) (entity.Snapshot, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	accepted := that.controller.ApplyMove(cell)
	game := that.controller.Snapshot()

	log := that.logger.With("method", "MakeTurn", "cell", cell, "accepted", accepted, "step", game.Step)
	if accepted && game.Status.IsOver() {
		log.InfoContext(ctx, "game over", "state", game.Status.State, "winner", game.Status.Winner)
	} else {
		log.DebugContext(ctx, "turn processed")
	}

	return game, accepted
}

func (that *gameUseCase) Undo(ctx context.Context) (entity.Snapshot, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	accepted := that.controller.Undo()
	game := that.controller.Snapshot()

	that.logger.DebugContext(ctx, "undo processed", "method", "Undo", "accepted", accepted, "step", game.Step)

	return game, accepted
}

func (that *gameUseCase) Redo(ctx context.Context) (entity.Snapshot, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	accepted := that.controller.Redo()
	game := that.controller.Snapshot()

	that.logger.DebugContext(ctx, "redo processed", "method", "Redo", "accepted", accepted, "step", game.Step)

	return game, accepted
}

func (that *gameUseCase) Restart(ctx context.Context) entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.controller.Restart()
	that.logger.InfoContext(ctx, "game restarted", "method", "Restart")

	return that.controller.Snapshot()
}
