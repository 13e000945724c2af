package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

type session struct {
	logger     *slog.Logger
	client     *client
	controller *tictactoe.GameController
}

func (that *Server) handleStart(sess *session, _ *Message) error {
	if err := sess.controller.Start(); err != nil && !errors.Is(err, apperror.ErrGameAlreadyStarted) {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.sendState(sess)

	return nil
}

// handleClick forwards a cell click. Clicks the game rejects are dropped
// silently: the board simply does not change.
func (that *Server) handleClick(sess *session, msg *Message) error {
	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		sess.client.sendError("malformed payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Cell == nil {
		sess.client.sendError("cell is required")
		return nil
	}

	if err := sess.controller.HandleClick(*payloadReq.Cell); err != nil {
		if errors.Is(err, apperror.ErrGameClosed) {
			return fmt.Errorf("failed to handle click: %w", err)
		}

		sess.logger.Debug("click ignored", "cell", *payloadReq.Cell, "reason", err.Error())
	}

	return nil
}

func (that *Server) handleReset(sess *session, _ *Message) error {
	err := sess.controller.Reset()
	if errors.Is(err, apperror.ErrGameIsNotStarted) {
		err = sess.controller.Start()
	}

	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	that.sendState(sess)

	return nil
}

func (that *Server) handleState(sess *session, _ *Message) error {
	that.sendState(sess)

	return nil
}

func (that *Server) sendState(sess *session) {
	sess.client.enqueue(ActionGameState, Payload{Game: newGameView(sess.controller.Snapshot())})
}
