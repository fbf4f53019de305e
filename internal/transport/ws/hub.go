package ws

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Frame is the wire envelope in both directions. Clients send type
// "subscribe", "unsubscribe" or "send"; the server delivers type "message".
type Frame struct {
	Type    string          `json:"type"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client frame types
const (
	FrameSubscribe   = "subscribe"
	FrameUnsubscribe = "unsubscribe"
	FrameSend        = "send"
	FrameMessage     = "message"
)

// Hub manages connected clients and topic subscriptions. Delivery is
// best-effort: a client whose send buffer is full, or that disconnects
// mid-broadcast, simply misses that message.
type Hub struct {
	clients map[*Client]bool
	topics  map[string]map[*Client]bool

	mu sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *outbound
}

type outbound struct {
	topic string
	data  []byte
}

// Client is one connected game participant
type Client struct {
	ID       string
	Username string
	Send     chan []byte
	hub      *Hub
}

// NewHub creates a hub and starts its dispatch loop
func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[*Client]bool),
		topics:     make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *outbound, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Infof("client %s (%s) connected", client.ID, client.Username)

		case client := <-h.unregister:
			h.mu.Lock()
			if h.clients[client] {
				delete(h.clients, client)
				for topic, subs := range h.topics {
					delete(subs, client)
					if len(subs) == 0 {
						delete(h.topics, topic)
					}
				}
				close(client.Send)
				log.Infof("client %s (%s) disconnected", client.ID, client.Username)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.topics[msg.topic] {
				select {
				case client.Send <- msg.data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a client
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client and its subscriptions
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Subscribe adds a client to a topic
func (h *Hub) Subscribe(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]bool)
	}
	h.topics[topic][client] = true
}

// Unsubscribe removes a client from a topic
func (h *Hub) Unsubscribe(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.topics[topic]; ok {
		delete(subs, client)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
}

// Publish delivers payload to every current subscriber of topic
// (implements game.Broadcaster)
func (h *Hub) Publish(topic string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Warnf("failed to marshal payload for topic %s: %v", topic, err)
		return
	}
	frame, _ := json.Marshal(&Frame{
		Type:    FrameMessage,
		Topic:   topic,
		Payload: data,
	})
	h.broadcast <- &outbound{topic: topic, data: frame}
}
