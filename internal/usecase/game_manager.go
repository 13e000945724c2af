package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

// GameManager keeps one game controller per connected client.
type GameManager struct {
	logger    *slog.Logger
	bot       service.BotService
	scheduler tictactoe.Scheduler
	delay     time.Duration

	mu       sync.Mutex
	sessions map[string]*tictactoe.GameController
}

func NewGameManager(logger *slog.Logger, bot service.BotService, scheduler tictactoe.Scheduler, delay time.Duration) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		bot:       bot,
		scheduler: scheduler,
		delay:     delay,
		sessions:  make(map[string]*tictactoe.GameController),
	}
}

// CreateSession registers a controller rendering through presentation.
func (that *GameManager) CreateSession(presentation tictactoe.Presentation) (string, *tictactoe.GameController) {
	sessionID := uuid.NewString()
	controller := tictactoe.NewGameController(
		that.logger.With("sessionID", sessionID),
		that.bot,
		presentation,
		that.scheduler,
		that.delay,
	)

	that.mu.Lock()
	that.sessions[sessionID] = controller
	that.mu.Unlock()

	that.logger.Info("session created", "sessionID", sessionID)

	return sessionID, controller
}

func (that *GameManager) Get(sessionID string) (*tictactoe.GameController, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, ok := that.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionID)
	}

	return controller, nil
}

// Close stops the session's controller and forgets it.
func (that *GameManager) Close(sessionID string) error {
	that.mu.Lock()
	controller, ok := that.sessions[sessionID]
	delete(that.sessions, sessionID)
	that.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionID)
	}

	controller.Close()

	that.logger.Info("session closed", "sessionID", sessionID)

	return nil
}

func (that *GameManager) CloseAll() {
	that.mu.Lock()
	sessions := that.sessions
	that.sessions = make(map[string]*tictactoe.GameController)
	that.mu.Unlock()

	for _, controller := range sessions {
		controller.Close()
	}

	that.logger.Info("all sessions closed", "count", len(sessions))
}

func (that *GameManager) Count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.sessions)
}
