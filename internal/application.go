package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/service"
	"github.com/rocketscienceinc/connectfour/internal/transport/console"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

// RunApp - runs the application on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play wires one game session to the given console streams and runs it to completion.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "session", uuid.NewString())

	display := console.NewDisplay(conf.Display)
	input := console.NewInput(in, out, display)
	defer input.Close()
	output := console.NewOutput(out, display)

	gameController, err := connectfour.NewGameController(
		connectfour.WithBotService(service.NewBotService(nil)),
	)
	if err != nil {
		return fmt.Errorf("failed to create game controller: %w", err)
	}

	session, err := usecase.NewSession(log, gameController, input, output, conf.Game.PlayAgainstBot())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished", "scores", gameController.Scores())

	return nil
}
