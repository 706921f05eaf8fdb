package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/rest"
	"github.com/rocketscienceinc/tictactoe-local/ui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController(logger)
	gameUseCase := usecase.NewGameUseCase(logger, gameController)

	if conf.IsHTTP() {
		return runHTTP(ctx, log, conf, logger, gameUseCase)
	}

	return runTUI(ctx, log, logger, gameUseCase)
}

func runHTTP(ctx context.Context, log *slog.Logger, conf *config.Config, logger *slog.Logger, game usecase.GameUseCase) error {
	router := rest.NewRouter(rest.NewPingHandler(), rest.NewGameHandler(logger, game))

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}

func runTUI(ctx context.Context, log *slog.Logger, logger *slog.Logger, game usecase.GameUseCase) error {
	app := tview.NewApplication()
	board := ui.NewBoard(app, logger, game)
	app.SetRoot(board.Root(), true).SetInputCapture(board.HandleKey)

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	log.Info("Starting terminal UI")
	if err := app.Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Terminal UI stopped")

	return nil
}
