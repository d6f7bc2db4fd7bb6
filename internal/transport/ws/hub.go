package ws

import (
	"encoding/json"
	"log"
	"sync"

	"campaignlens/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAnalysisReady  MessageType = "analysis_ready"
	MsgAnalysisFailed MessageType = "analysis_failed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for campaign hosts. Each campaign has
// at most one live host connection watching for analysis events.
type Hub struct {
	hostConns map[string]*Connection // campaignID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	CampaignID string
	HostID     string
	Send       chan []byte
	Hub        *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	CampaignID string
	Message    *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		hostConns:  make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.hostConns[conn.CampaignID] = conn
			log.Printf("Host %s watching campaign %s", conn.HostID, conn.CampaignID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.hostConns[conn.CampaignID]; ok && existing == conn {
				delete(h.hostConns, conn.CampaignID)
				close(conn.Send)
				log.Printf("Host disconnected from campaign %s", conn.CampaignID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			if conn, ok := h.hostConns[msg.CampaignID]; ok {
				data, _ := json.Marshal(msg.Message)
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// NotifyAnalysisReady tells the watching host that a pack finished building
// (implements service.Notifier)
func (h *Hub) NotifyAnalysisReady(campaignID string, summary model.CampaignSummary) {
	data, _ := json.Marshal(summary)
	h.broadcast <- &BroadcastMessage{
		CampaignID: campaignID,
		Message: &Message{
			Type:    MsgAnalysisReady,
			Payload: data,
		},
	}
}

// NotifyAnalysisFailed tells the watching host that a build failed
// (implements service.Notifier)
func (h *Hub) NotifyAnalysisFailed(campaignID string, reason string) {
	data, _ := json.Marshal(map[string]string{"reason": reason})
	h.broadcast <- &BroadcastMessage{
		CampaignID: campaignID,
		Message: &Message{
			Type:    MsgAnalysisFailed,
			Payload: data,
		},
	}
}
