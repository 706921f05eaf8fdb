package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - registers every route on a fresh echo instance.
func NewRouter(ping PingHandler, game GameHandler) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.GET("/ping", ping.Ping)

	games := router.Group("/game")
	games.GET("", game.GetGame)
	games.POST("/turn", game.MakeTurn)
	games.POST("/undo", game.Undo)
	games.POST("/redo", game.Redo)
	games.POST("/restart", game.Restart)

	return router
}

// Start - serves router on port until ctx is canceled.
func Start(ctx context.Context, port string, router *echo.Echo) error {
	router.Server.ReadTimeout = 10 * time.Second
	router.Server.WriteTimeout = 10 * time.Second
	router.Server.IdleTimeout = 30 * time.Second

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Start(":" + port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
