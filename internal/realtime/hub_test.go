package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := strings.TrimPrefix(r.URL.Path, "/ws/")
		hub.Serve(identity, w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, identity string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + identity
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestHubSendDeliversEnvelope(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	client := dial(t, srv, "alice@example.com")
	defer client.Close()

	waitFor(t, func() bool { return hub.Connected("alice@example.com") })

	delivered := hub.Send("alice@example.com", Envelope{Type: "notification", Data: map[string]any{"message": "hi"}})
	require.True(t, delivered)

	var got Envelope
	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, client.ReadJSON(&got))
	require.Equal(t, "notification", got.Type)
}

func TestHubSendWithoutConnection(t *testing.T) {
	hub := NewHub()
	require.False(t, hub.Send("nobody@example.com", Envelope{Type: "notification"}))
}

func TestHubDisconnectUnknownIsNoOp(t *testing.T) {
	hub := NewHub()
	hub.Disconnect("ghost@example.com")
	require.Zero(t, hub.Count())
}

func TestHubLaterConnectionReplacesEarlier(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	first := dial(t, srv, "bob@example.com")
	defer first.Close()
	waitFor(t, func() bool { return hub.Connected("bob@example.com") })

	second := dial(t, srv, "bob@example.com")
	defer second.Close()

	// Early sends may still hit the first connection until the server
	// registers the second, so poll until the first stops receiving.
	waitFor(t, func() bool {
		require.True(t, hub.Send("bob@example.com", Envelope{Type: "notification"}))
		_ = first.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		_, _, err := first.ReadMessage()
		return err != nil
	})

	// At least one envelope is now queued on the replacement channel.
	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got Envelope
	require.NoError(t, second.ReadJSON(&got))
	require.Equal(t, "notification", got.Type)
	require.Equal(t, 1, hub.Count())
}

func TestHubClientDisconnectEvictsEntry(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	client := dial(t, srv, "carol@example.com")
	waitFor(t, func() bool { return hub.Connected("carol@example.com") })

	require.NoError(t, client.Close())
	waitFor(t, func() bool { return !hub.Connected("carol@example.com") })
	require.False(t, hub.Send("carol@example.com", Envelope{Type: "notification"}))
}
