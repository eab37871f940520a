package notifications_stream

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CitizenClient/internal/api/handlers/notifications"
	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	notificationsService "github.com/m04kA/SMC-CitizenClient/internal/service/notifications"
	"github.com/m04kA/SMC-CitizenClient/pkg/logger"
	"github.com/m04kA/SMC-CitizenClient/pkg/types"
)

type fakeSource struct {
	mu        sync.Mutex
	current   notificationsService.Snapshot
	ch        chan notificationsService.Snapshot
	cancelled chan struct{}
	once      sync.Once
}

func newFakeSource(initial notificationsService.Snapshot) *fakeSource {
	return &fakeSource{
		current:   initial,
		ch:        make(chan notificationsService.Snapshot, 1),
		cancelled: make(chan struct{}),
	}
}

func (f *fakeSource) Snapshot() notificationsService.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeSource) Subscribe() (<-chan notificationsService.Snapshot, func()) {
	return f.ch, func() { f.once.Do(func() { close(f.cancelled) }) }
}

func (f *fakeSource) push(s notificationsService.Snapshot) {
	f.mu.Lock()
	f.current = s
	f.mu.Unlock()
	f.ch <- s
}

func dial(t *testing.T, source SnapshotSource) (*websocket.Conn, func()) {
	t.Helper()
	h := NewHandler(source, nil, logger.NewNop())
	srv := httptest.NewServer(httpHandler(h))

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/notifications/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func readSnapshot(t *testing.T, conn *websocket.Conn) notifications.SnapshotResponse {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var res notifications.SnapshotResponse
	require.NoError(t, conn.ReadJSON(&res))
	return res
}

func TestHandler_StreamsSnapshots(t *testing.T) {
	source := newFakeSource(notificationsService.Snapshot{Loading: true})
	conn, closeAll := dial(t, source)
	defer closeAll()

	first := readSnapshot(t, conn)
	assert.True(t, first.Loading)
	assert.Empty(t, first.New)

	source.push(notificationsService.Snapshot{
		Items: []domain.Notification{
			{ID: types.ScalarFromInt(1), BookingID: types.ScalarFromInt(9), ServiceType: types.ScalarFromString("waste"), Title: "Pay", IsNew: true},
		},
		Unread: 1,
	})

	next := readSnapshot(t, conn)
	assert.False(t, next.Loading)
	assert.Equal(t, 1, next.Unread)
	require.Len(t, next.New, 1)
	assert.Equal(t, "Pay", next.New[0].Title)
}

func TestHandler_CancelsSubscriptionOnClose(t *testing.T) {
	source := newFakeSource(notificationsService.Snapshot{})
	conn, closeAll := dial(t, source)
	defer closeAll()

	readSnapshot(t, conn)
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	select {
	case <-source.cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not cancelled")
	}
}

func httpHandler(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/notifications/stream", h.Handle).Methods("GET")
	return r
}
