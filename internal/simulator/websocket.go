package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

const wsWriteTimeout = 5 * time.Second

// wsEnvelope is what a HUD client receives per event.
type wsEnvelope struct {
	Topic string          `json:"topic"`
	Event json.RawMessage `json:"event"`
}

// WebSocketOutput broadcasts every event to connected HUD clients. Clients
// that fail a write are dropped.
type WebSocketOutput struct {
	Addr    string
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	server  *http.Server
}

func NewWebSocketOutput(addr string) *WebSocketOutput {
	return &WebSocketOutput{Addr: addr, clients: map[*websocket.Conn]bool{}}
}

// Handler exposes /ws so the output can be mounted on an existing mux or
// an httptest server.
func (w *WebSocketOutput) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.handleWS)
	return mux
}

// Start listens in the background until Close.
func (w *WebSocketOutput) Start() {
	w.server = &http.Server{Addr: w.Addr, Handler: w.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Printf("WebSocket feed listening on %s/ws", w.Addr)
		if err := w.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("WebSocket server stopped: %v", err)
		}
	}()
}

func (w *WebSocketOutput) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	w.mu.Lock()
	w.clients[conn] = true
	w.mu.Unlock()

	go func() {
		defer w.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (w *WebSocketOutput) drop(conn *websocket.Conn) {
	w.mu.Lock()
	_, ok := w.clients[conn]
	delete(w.clients, conn)
	w.mu.Unlock()
	if ok {
		if err := conn.Close(); err != nil {
			log.Printf("warning: failed to close websocket: %v", err)
		}
	}
}

func (w *WebSocketOutput) Clients() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.clients)
}

func (w *WebSocketOutput) WriteMessage(topic string, msg []byte) error {
	payload, err := json.Marshal(wsEnvelope{Topic: topic, Event: msg})
	if err != nil {
		return err
	}

	w.mu.Lock()
	var failed []*websocket.Conn
	for c := range w.clients {
		_ = c.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			failed = append(failed, c)
		}
	}
	w.mu.Unlock()

	for _, c := range failed {
		w.drop(c)
	}
	return nil
}

func (w *WebSocketOutput) Close() error {
	w.mu.Lock()
	for c := range w.clients {
		_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session over"))
		_ = c.Close()
		delete(w.clients, c)
	}
	w.mu.Unlock()

	if w.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return w.server.Shutdown(ctx)
}
