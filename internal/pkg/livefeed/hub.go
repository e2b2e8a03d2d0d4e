// Package livefeed pushes vote tallies to websocket clients watching a course
package livefeed

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// EventTypeVote is the type of a vote tally update
const EventTypeVote = "vote"

// Event is one message sent to every client watching a course
type Event struct {
	Type       string    `json:"type"`
	CourseID   int64     `json:"courseId"`
	MaterialID int64     `json:"materialId"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	Timestamp  time.Time `json:"timestamp"`
}

// Hub tracks connected clients per course and fans events out to them
type Hub struct {
	// course id -> clients
	clients map[int64]map[*Client]bool
	mu      sync.RWMutex

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	// closed when Run returns
	done chan struct{}

	logger zerolog.Logger
}

// NewHub creates a new Hub instance. Call Run to start delivering events.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "livefeed").Logger(),
	}
}

// Run handles registrations and broadcasts until ctx is done, then
// disconnects every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)

		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// Publish queues an event for delivery. It never blocks: when the queue is
// full the event is dropped, since the next vote carries fresh tallies anyway.
func (h *Hub) Publish(event Event) {
	if event.Type == "" {
		event.Type = EventTypeVote
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case h.broadcast <- &event:
	default:
		h.logger.Warn().
			Int64("courseID", event.CourseID).
			Int64("materialID", event.MaterialID).
			Msg("Live feed queue full, dropping event")
	}
}

func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of clients watching a course
func (h *Hub) ClientCount(courseID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[courseID])
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.courseID]; !ok {
		h.clients[client.courseID] = make(map[*Client]bool)
	}
	h.clients[client.courseID][client] = true

	h.logger.Debug().
		Int64("courseID", client.courseID).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.courseID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.courseID)
	}

	h.logger.Debug().
		Int64("courseID", client.courseID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

func (h *Hub) broadcastEvent(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Int64("courseID", event.CourseID).Msg("Failed to marshal live event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[event.CourseID] {
		select {
		case client.send <- data:
		default:
			// slow consumer
			h.removeLocked(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}
