package tictactoe

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
)

type Phase uint8

const (
	AwaitingHuman Phase = iota
	AwaitingOpponent
	Ended
)

func (that Phase) String() string {
	switch that {
	case AwaitingHuman:
		return "awaiting_human"
	case AwaitingOpponent:
		return "awaiting_opponent"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("phase(%d)", uint8(that))
	}
}

type Move struct {
	Number int
	Cell   int
	Mark   entity.Mark
}

// State is a copy of the controller's game, safe to read without locking.
type State struct {
	Board      entity.Board
	Phase      Phase
	MoveNumber int
	Outcome    entity.Outcome
	History    []Move
	Started    bool
}

// GameController runs one human-versus-bot game at a time. Human moves come
// in through HandleClick; the bot answers after a fixed delay.
type GameController struct {
	logger       *slog.Logger
	bot          service.BotService
	presentation Presentation
	scheduler    Scheduler
	delay        time.Duration

	mu         sync.Mutex
	board      entity.Board
	phase      Phase
	moveNumber int
	outcome    entity.Outcome
	history    []Move
	started    bool
	closed     bool
	generation uint64
	cancel     func() bool
}

func NewGameController(
	logger *slog.Logger,
	bot service.BotService,
	presentation Presentation,
	scheduler Scheduler,
	delay time.Duration,
) *GameController {
	return &GameController{
		logger:       logger.With("component", "game_controller"),
		bot:          bot,
		presentation: presentation,
		scheduler:    scheduler,
		delay:        delay,
		moveNumber:   1,
	}
}

// Start begins the first game.
func (that *GameController) Start() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrGameClosed
	}

	if that.started {
		return apperror.ErrGameAlreadyStarted
	}

	that.started = true
	that.newGame()

	that.logger.Info("game started")

	return nil
}

// Reset abandons the current game, including a pending bot move, and starts a new one.
func (that *GameController) Reset() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrGameClosed
	}

	if !that.started {
		return apperror.ErrGameIsNotStarted
	}

	that.newGame()

	that.logger.Info("game reset", "generation", that.generation)

	return nil
}

// Close cancels a pending bot move and rejects all further input.
func (that *GameController) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	that.stopPending()
	that.generation++

	that.logger.Debug("game closed")
}

// HandleClick plays the human's mark on cell. A rejected click changes
// nothing and reaches no Presentation method.
func (that *GameController) HandleClick(cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrGameClosed
	}

	if !that.started {
		return apperror.ErrGameIsNotStarted
	}

	switch that.phase {
	case Ended:
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	case AwaitingOpponent:
		return apperror.ErrNotYourTurn
	case AwaitingHuman:
	}

	if err := that.board.ApplyMove(cell, entity.HumanMark); err != nil {
		return fmt.Errorf("failed to apply human move: %w", err)
	}

	that.recordMove(cell, entity.HumanMark)
	if that.phase == Ended {
		return nil
	}

	that.phase = AwaitingOpponent
	that.scheduleOpponent()

	return nil
}

func (that *GameController) Snapshot() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	history := make([]Move, len(that.history))
	copy(history, that.history)

	return State{
		Board:      that.board,
		Phase:      that.phase,
		MoveNumber: that.moveNumber,
		Outcome:    that.outcome,
		History:    history,
		Started:    that.started,
	}
}

func (that *GameController) newGame() {
	that.stopPending()
	that.generation++

	that.board = entity.Board{}
	that.phase = AwaitingHuman
	that.moveNumber = 1
	that.outcome = entity.Outcome{}
	that.history = nil

	that.presentation.Reset()
}

func (that *GameController) stopPending() {
	if that.cancel == nil {
		return
	}

	if !that.cancel() {
		that.logger.Debug("pending bot move already fired", "generation", that.generation)
	}
	that.cancel = nil
}

func (that *GameController) scheduleOpponent() {
	generation := that.generation
	that.cancel = that.scheduler.Schedule(that.delay, func() {
		that.opponentMove(generation)
	})
}

// opponentMove is the timer callback; generation pins it to the game that scheduled it.
func (that *GameController) opponentMove(generation uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || generation != that.generation || that.phase != AwaitingOpponent {
		that.logger.Debug("stale bot move dropped", "generation", generation)
		return
	}

	that.cancel = nil

	cell, err := that.bot.ChooseMove(that.board, that.moveNumber)
	if err != nil {
		panic(fmt.Errorf("bot failed to choose a move on %s: %w", that.board.String(), err))
	}

	if err = that.board.ApplyMove(cell, entity.BotMark); err != nil {
		panic(fmt.Errorf("bot chose an unplayable cell on %s: %w", that.board.String(), err))
	}

	that.recordMove(cell, entity.BotMark)
	if that.phase != Ended {
		that.phase = AwaitingHuman
	}
}

// recordMove publishes an applied move and ends the game when it decides it.
func (that *GameController) recordMove(cell int, mark entity.Mark) {
	that.history = append(that.history, Move{Number: that.moveNumber, Cell: cell, Mark: mark})
	that.logger.Debug("move applied", "moveNumber", that.moveNumber, "cell", cell, "mark", mark.String())
	that.moveNumber++

	that.presentation.ShowMark(cell, mark)

	that.outcome = entity.Evaluate(that.board)
	if !that.outcome.IsTerminal() {
		return
	}

	that.phase = Ended

	if that.outcome.Status == entity.Win {
		that.presentation.DrawWinLine(that.outcome.Line)
	}
	that.presentation.AnnounceOutcome(that.outcome)

	that.logger.Info("game finished",
		"status", that.outcome.Status.String(),
		"winner", that.outcome.Winner.String(),
		"moves", len(that.history),
	)
}
