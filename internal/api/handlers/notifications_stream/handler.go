package notifications_stream

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers/notifications"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
)

const (
	pingPeriod = 30 * time.Second
	pongWait   = 60 * time.Second
	writeWait  = 10 * time.Second
)

type Handler struct {
	source   SnapshotSource
	upgrader websocket.Upgrader
	logger   Logger
}

// NewHandler checkOrigin nil разрешает любой Origin
func NewHandler(source SnapshotSource, checkOrigin func(r *http.Request) bool, logger Logger) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Handler{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// Handle GET /api/v1/notifications/stream
// Первым сообщением уходит текущее состояние, дальше каждое изменение хранилища.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /notifications/stream - Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.source.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go h.readLoop(conn, closed)

	h.logger.Info("GET /notifications/stream - Client connected: %s", r.RemoteAddr)

	if err := h.write(conn, notifications.FromSnapshot(h.source.Snapshot(), domain.CategoryAll)); err != nil {
		h.logger.Warn("GET /notifications/stream - Initial write failed: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			h.logger.Info("GET /notifications/stream - Client disconnected: %s", r.RemoteAddr)
			return

		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if err := h.write(conn, notifications.FromSnapshot(snapshot, domain.CategoryAll)); err != nil {
				h.logger.Warn("GET /notifications/stream - Write failed: %v", err)
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) write(conn *websocket.Conn, v interface{}) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// readLoop читает только control-сообщения и закрывает closed при разрыве
func (h *Handler) readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("GET /notifications/stream - Unexpected close: %v", err)
			}
			return
		}
	}
}
