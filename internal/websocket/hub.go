package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/WathsalaM369/stress-management-coach/internal/logger"
	"github.com/WathsalaM369/stress-management-coach/internal/metrics"
	"github.com/rs/zerolog"
)

// ScheduleEvent is broadcast to every connected client when a schedule is
// generated, so presentation layers can refresh without polling.
type ScheduleEvent struct {
	Type              string    `json:"type"`
	ScheduleID        string    `json:"schedule_id,omitempty"`
	StressLevel       int       `json:"stress_level"`
	TotalTasks        int       `json:"total_tasks"`
	ScheduledTasks    int       `json:"scheduled_tasks"`
	TotalWorkHours    float64   `json:"total_work_hours"`
	AverageConfidence float64   `json:"average_confidence"`
	Timestamp         time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts schedule events
// to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *zerolog.Logger
}

// NewHub creates a new hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.Global(),
	}
}

// Run processes register/unregister/broadcast events until the process
// exits. Must run in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			metrics.Global().WSConnected()
			h.logger.Info().Int("clients", h.ClientCount()).Msg("WebSocket client connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			metrics.Global().WSDisconnected()
			h.logger.Info().Int("clients", h.ClientCount()).Msg("WebSocket client disconnected")

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
					metrics.Global().WSMessageSent()
				default:
					// Slow client: drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastSchedule publishes a schedule-generated event to all clients.
func (h *Hub) BroadcastSchedule(event ScheduleEvent) {
	event.Type = "schedule_generated"
	event.Timestamp = time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal schedule event")
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn().Msg("WebSocket broadcast channel full, dropping event")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
