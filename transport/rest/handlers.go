package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type GameHandler interface {
	GetGame(ctx echo.Context) error
	MakeTurn(ctx echo.Context) error
	Undo(ctx echo.Context) error
	Redo(ctx echo.Context) error
	Restart(ctx echo.Context) error
}

type gameUseCase interface {
	State(ctx context.Context) entity.Snapshot
	MakeTurn(ctx context.Context, cell int) (entity.Snapshot, bool)
	Undo(ctx context.Context) (entity.Snapshot, bool)
	Redo(ctx context.Context) (entity.Snapshot, bool)
	Restart(ctx context.Context) entity.Snapshot
}

// TurnRequest - body of POST /game/turn.
type TurnRequest struct {
	Cell *int `json:"cell"`
}

// Response - every mutating endpoint answers with the resulting game and whether the gesture was applied.
type Response struct {
	Accepted bool            `json:"accepted"`
	Game     entity.Snapshot `json:"game"`
	Status   string          `json:"status_text"`
}

type gameHandler struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewGameHandler(logger *slog.Logger, game gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

func (that *gameHandler) GetGame(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, that.game.State(ctx.Request().Context()))
}

func (that *gameHandler) MakeTurn(ctx echo.Context) error {
	log := that.logger.With("method", "MakeTurn")

	var req TurnRequest
	if err := ctx.Bind(&req); err != nil {
		log.Warn("failed to bind request", "error", err)
		return ctx.String(http.StatusBadRequest, "Invalid request body")
	}

	if req.Cell == nil {
		log.Warn("cell is missing in request")
		return ctx.String(http.StatusBadRequest, "Cell is required")
	}

	game, accepted := that.game.MakeTurn(ctx.Request().Context(), *req.Cell)

	return respond(ctx, game, accepted)
}

func (that *gameHandler) Undo(ctx echo.Context) error {
	game, accepted := that.game.Undo(ctx.Request().Context())

	return respond(ctx, game, accepted)
}

func (that *gameHandler) Redo(ctx echo.Context) error {
	game, accepted := that.game.Redo(ctx.Request().Context())

	return respond(ctx, game, accepted)
}

func (that *gameHandler) Restart(ctx echo.Context) error {
	game := that.game.Restart(ctx.Request().Context())

	return respond(ctx, game, true)
}

func respond(ctx echo.Context, game entity.Snapshot, accepted bool) error {
	return ctx.JSON(http.StatusOK, Response{
		Accepted: accepted,
		Game:     game,
		Status:   game.StatusText(),
	})
}
