package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"carshop/internal/game"
	"carshop/internal/model"
	"carshop/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Inbound action topics
const (
	topicGameStart  = "game/start"
	topicGameAnswer = "game/answer"
	topicHello      = "hello"
	topicGreetings  = "greetings"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket connections to the game channel
type Handler struct {
	hub     *Hub
	authSvc *service.AuthService
	session *game.Session
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, session *game.Session) *Handler {
	return &Handler{
		hub:     hub,
		authSvc: authSvc,
		session: session,
	}
}

// Serve handles GET /ws. The handshake requires a valid token, from the
// Authorization header or the token query param; connections without one
// are rejected before reaching the hub.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		if auth := r.Header.Get("Authorization"); len(auth) > 7 {
			token = auth[7:] // strip "Bearer "
		}
	}

	username, err := h.authSvc.VerifyToken(token)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"401","message":"Unauthorized"}`))
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		ID:       uuid.New().String(),
		Username: username,
		Send:     make(chan []byte, 256),
		hub:      h.hub,
	}

	h.hub.Register(client)

	go h.writePump(wsConn, client)
	go h.readPump(wsConn, client)
}

func (h *Handler) readPump(wsConn *websocket.Conn, client *Client) {
	defer func() {
		h.hub.Unregister(client)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warnf("WebSocket error: %v", err)
			}
			break
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			continue
		}

		switch frame.Type {
		case FrameSubscribe:
			h.hub.Subscribe(client, frame.Topic)
		case FrameUnsubscribe:
			h.hub.Unsubscribe(client, frame.Topic)
		case FrameSend:
			h.dispatch(client, frame)
		}
	}
}

// dispatch routes an inbound action to the game session
func (h *Handler) dispatch(client *Client, frame Frame) {
	switch frame.Topic {
	case topicGameStart:
		h.session.Start()

	case topicGameAnswer:
		var msg model.AnswerMessage
		if err := json.Unmarshal(frame.Payload, &msg); err != nil {
			return
		}
		h.session.SubmitAnswer(msg)

	case topicHello:
		var msg model.HelloMessage
		if err := json.Unmarshal(frame.Payload, &msg); err != nil {
			return
		}
		h.hub.Publish(topicGreetings, model.Greeting{Content: "Hello, " + msg.Name})
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
