package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// Hub tracks live connections and per-family broadcast channels. All
// map access goes through the mutex; delivery itself is a non-blocking
// channel send into each client's write pump.
type Hub struct {
	mu sync.RWMutex

	// One entry per user id. A second connection from the same user
	// overwrites the entry, so only the newest connection receives
	// user-targeted pushes.
	users map[string]*Client

	// familyID -> set of subscribed connections.
	channels map[string]map[*Client]bool

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		users:    make(map[string]*Client),
		channels: make(map[string]map[*Client]bool),
		logger:   logger,
	}
}

// Register binds the client to its user id and subscribes it to one
// channel per family it currently belongs to.
func (h *Hub) Register(client *Client, familyIDs []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.users[client.UserID] = client
	for _, familyID := range familyIDs {
		h.subscribeLocked(client, familyID)
	}

	h.logger.Info("client connected",
		zap.String("user_id", client.UserID),
		zap.Int("channels", len(familyIDs)))
}

// Unregister removes the client from the registry and every channel.
// No linger: a disconnected user stops receiving events immediately.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.users[client.UserID]; ok && current == client {
		delete(h.users, client.UserID)
	}

	for familyID, subscribers := range h.channels {
		if subscribers[client] {
			delete(subscribers, client)
			if len(subscribers) == 0 {
				delete(h.channels, familyID)
			}
		}
	}

	close(client.send)

	h.logger.Info("client disconnected", zap.String("user_id", client.UserID))
}

func (h *Hub) JoinFamily(client *Client, familyID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribeLocked(client, familyID)
}

func (h *Hub) LeaveFamily(client *Client, familyID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subscribers, ok := h.channels[familyID]; ok {
		delete(subscribers, client)
		if len(subscribers) == 0 {
			delete(h.channels, familyID)
		}
	}
}

func (h *Hub) subscribeLocked(client *Client, familyID string) {
	if _, ok := h.channels[familyID]; !ok {
		h.channels[familyID] = make(map[*Client]bool)
	}
	h.channels[familyID][client] = true
}

// SendToUser delivers to the user's live connection, if any. Offline
// users are skipped; there is no queue or retry.
func (h *Hub) SendToUser(userID string, message []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.users[userID]
	if !ok {
		return false
	}
	h.deliver(client, message)
	return true
}

// SendToFamily broadcasts to every connection subscribed to the
// family's channel.
func (h *Hub) SendToFamily(familyID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.channels[familyID] {
		h.deliver(client, message)
	}
}

func (h *Hub) IsUserConnected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.users[userID]
	return ok
}

func (h *Hub) deliver(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		// Slow consumer; drop rather than block the caller.
		h.logger.Warn("dropping event for slow client",
			zap.String("user_id", client.UserID))
	}
}
