package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

const (
	maxMessageSize      = 4096
	handshakeTimeout    = 10 * time.Second
	defaultPingInterval = 30 * time.Second
	defaultSendQueue    = 16
)

type gameManager interface {
	CreateSession(presentation tictactoe.Presentation) (string, *tictactoe.GameController)
	Close(sessionID string) error
}

type Server struct {
	logger   *slog.Logger
	manager  gameManager
	upgrader websocket.Upgrader

	pingInterval time.Duration
	sendQueue    int

	handlers map[string]func(sess *session, message *Message) error
}

func New(logger *slog.Logger, manager gameManager, conf config.WebSocket) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		manager: manager,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: handshakeTimeout,
			ReadBufferSize:   conf.ReadBufferSize,
			WriteBufferSize:  conf.WriteBufferSize,
			CheckOrigin:      func(*http.Request) bool { return true },
		},
		pingInterval: conf.PingInterval,
		sendQueue:    conf.SendQueue,

		handlers: make(map[string]func(*session, *Message) error),
	}

	if server.pingInterval <= 0 {
		server.pingInterval = defaultPingInterval
	}

	if server.sendQueue <= 0 {
		server.sendQueue = defaultSendQueue
	}

	server.handlers[ActionGameStart] = server.handleStart
	server.handlers[ActionGameClick] = server.handleClick
	server.handlers[ActionGameReset] = server.handleReset
	server.handlers[ActionGameState] = server.handleState

	return server
}

// ServeHTTP upgrades the request and plays one session per connection.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	wsClient := newClient(that.logger, conn, that.pingInterval, that.sendQueue)
	sessionID, controller := that.manager.CreateSession(&presenter{client: wsClient})

	sess := &session{
		logger:     that.logger.With("sessionID", sessionID),
		client:     wsClient,
		controller: controller,
	}
	wsClient.logger = sess.logger

	go func() {
		if writeErr := wsClient.writePump(); writeErr != nil {
			sess.logger.Debug("write pump stopped", "error", writeErr)
		}
		wsClient.close()
	}()

	wsClient.enqueue(ActionConnect, Payload{Session: sessionID})
	log.Info("WebSocket connection established", "sessionID", sessionID)

	that.readPump(conn, sess)

	if err = that.manager.Close(sessionID); err != nil {
		log.Error("failed to close session", "sessionID", sessionID, "error", err)
	}
	wsClient.close()

	log.Info("WebSocket connection closed", "sessionID", sessionID)
}

// readPump - processes messages from the client until the connection drops.
func (that *Server) readPump(conn *websocket.Conn, sess *session) {
	log := sess.logger.With("method", "readPump")

	readWait := 2 * that.pingInterval
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readWait))

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			sess.client.sendError("malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			sess.client.sendError("unknown action: " + message.Action)
			continue
		}

		if err = handler(sess, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
