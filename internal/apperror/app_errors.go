package apperror

import "errors"

var (
	ErrInvalidMove        = errors.New("invalid move")
	ErrCellOutOfRange     = errors.New("cell index out of range")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrGameFinished       = errors.New("game is already finished")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrGameClosed         = errors.New("game is closed")
	ErrNoMoveAvailable    = errors.New("no move available")
	ErrSessionNotFound    = errors.New("session not found")
)
