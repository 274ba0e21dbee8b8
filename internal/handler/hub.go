package handler

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeTimeout = 5 * time.Second

// Watcher serializes writes to one spectator connection; gorilla
// permits only a single concurrent writer per conn.
type Watcher struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *Watcher) write(msg []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return w.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub fans spectator snapshots out to the websocket connections
// watching each game. Dead connections are dropped on write failure.
type Hub struct {
	mu       sync.Mutex
	watchers map[string][]*Watcher
	log      *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{watchers: map[string][]*Watcher{}, log: log}
}

// Add registers a connection as a watcher of the given game.
func (h *Hub) Add(gameID string, conn *websocket.Conn) *Watcher {
	w := &Watcher{conn: conn}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.watchers[gameID] = append(h.watchers[gameID], w)
	return w
}

// Send writes one payload to a single watcher.
func (h *Hub) Send(w *Watcher, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("snapshot marshal failed", zap.Error(err))
		return
	}
	if err := w.write(msg); err != nil {
		w.conn.Close()
	}
}

// Broadcast pushes a payload to every watcher of a game. The watcher
// list is snapshotted first so no network write happens under the hub
// lock; connections that fail are closed and dropped.
func (h *Hub) Broadcast(gameID string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("snapshot marshal failed", zap.Error(err))
		return
	}
	h.mu.Lock()
	conns := append([]*Watcher(nil), h.watchers[gameID]...)
	h.mu.Unlock()

	dead := map[*Watcher]bool{}
	for _, w := range conns {
		if err := w.write(msg); err != nil {
			h.log.Warn("dropping watcher", zap.String("game", gameID), zap.Error(err))
			w.conn.Close()
			dead[w] = true
		}
	}
	if len(dead) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	alive := h.watchers[gameID][:0]
	for _, w := range h.watchers[gameID] {
		if !dead[w] {
			alive = append(alive, w)
		}
	}
	h.watchers[gameID] = alive
}
