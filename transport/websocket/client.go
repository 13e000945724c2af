package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// client owns the write side of one connection. Everything sent to the
// browser goes through the send queue so that only writePump touches conn.
type client struct {
	logger       *slog.Logger
	conn         *websocket.Conn
	pingInterval time.Duration

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(logger *slog.Logger, conn *websocket.Conn, pingInterval time.Duration, queue int) *client {
	return &client{
		logger:       logger,
		conn:         conn,
		pingInterval: pingInterval,
		send:         make(chan []byte, queue),
		done:         make(chan struct{}),
	}
}

// enqueue never blocks; a client that stops reading is disconnected.
func (that *client) enqueue(action string, payload Payload) {
	message, err := encodeMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	select {
	case <-that.done:
	case that.send <- message:
	default:
		that.logger.Warn("send queue is full, dropping client", "action", action)
		that.close()
	}
}

func (that *client) sendError(errorMsg string) {
	that.enqueue(ActionError, Payload{Error: errorMsg})
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// writePump drains the send queue and pings the browser on every tick.
// The read deadline is only refreshed by inbound frames, so pings must not
// be skipped after server-initiated writes.
func (that *client) writePump() error {
	ticker := time.NewTicker(that.pingInterval)
	defer func() {
		ticker.Stop()
		that.conn.Close()
	}()

	for {
		select {
		case <-that.done:
			closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = that.conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait))
			return nil
		case message := <-that.send:
			if err := that.write(message); err != nil {
				return err
			}
		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("failed to write ping: %w", err)
			}
		}
	}
}

func (that *client) write(message []byte) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func encodeMessage(action string, payload Payload) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return message, nil
}
