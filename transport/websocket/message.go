package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

// client -> server
const (
	ActionGameStart = "game:start"
	ActionGameClick = "game:click"
	ActionGameReset = "game:reset"
	ActionGameState = "game:state"
)

// server -> client
const (
	ActionConnect     = "connect"
	ActionCellMark    = "cell:mark"
	ActionGameLine    = "game:line"
	ActionGameOutcome = "game:outcome"
	ActionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Session string       `json:"session,omitempty"`
	Cell    *int         `json:"cell,omitempty"`
	Mark    string       `json:"mark,omitempty"`
	Line    []int        `json:"line,omitempty"`
	Outcome *OutcomeView `json:"outcome,omitempty"`
	Game    *GameView    `json:"game,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type OutcomeView struct {
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
	Line   []int  `json:"line,omitempty"`
}

type GameView struct {
	Board      [entity.BoardSize]string `json:"board"`
	Phase      string                   `json:"phase"`
	MoveNumber int                      `json:"move_number"`
	Outcome    OutcomeView              `json:"outcome"`
	Started    bool                     `json:"started"`
	History    []MoveView               `json:"history"`
}

// MoveView lets a reconnecting browser replay the marks in order.
type MoveView struct {
	Number int    `json:"number"`
	Cell   int    `json:"cell"`
	Mark   string `json:"mark"`
}

func newOutcomeView(outcome entity.Outcome) OutcomeView {
	view := OutcomeView{Status: outcome.Status.String()}
	if outcome.Status == entity.Win {
		view.Winner = outcome.Winner.String()
		view.Line = outcome.Line[:]
	}

	return view
}

func newGameView(state tictactoe.State) *GameView {
	view := &GameView{
		Phase:      state.Phase.String(),
		MoveNumber: state.MoveNumber,
		Outcome:    newOutcomeView(state.Outcome),
		Started:    state.Started,
		History:    make([]MoveView, 0, len(state.History)),
	}

	for i, mark := range state.Board {
		view.Board[i] = mark.String()
	}

	for _, move := range state.History {
		view.History = append(view.History, MoveView{Number: move.Number, Cell: move.Cell, Mark: move.Mark.String()})
	}

	return view
}
