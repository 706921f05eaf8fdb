package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game usecase.GameUseCase
}

// New - returns a context bound to the test and a use case over a fresh game.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Game:   usecase.NewGameUseCase(logger, tictactoe.NewGameController(logger)),
	}
}

// Play - applies every cell in order and fails the test on the first rejected move.
func (that *Suite) Play(ctx context.Context, cells ...int) {
	that.Helper()

	for _, cell := range cells {
		if _, accepted := that.Game.MakeTurn(ctx, cell); !accepted {
			that.Fatalf("move on cell %d rejected", cell)
		}
	}
}
