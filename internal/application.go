package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/rest"
	"github.com/rocketscienceinc/tictactoe-solo/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := conf.Opponent.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bot := service.NewBotService(entity.BotMark, rand.New(rand.NewSource(seed))) //nolint: gosec // game randomness
	gameManager := usecase.NewGameManager(logger, bot, tictactoe.ClockScheduler{}, conf.Opponent.Delay)
	defer gameManager.CloseAll()

	wsServer := websocket.New(logger, gameManager, conf.WebSocket)
	router := rest.NewRouter(logger, wsServer)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "opponentDelay", conf.Opponent.Delay)

	if err := rest.Start(ctx, conf.HTTPAddr(), router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
