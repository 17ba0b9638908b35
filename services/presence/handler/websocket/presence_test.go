package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/models"
	pkgws "github.com/safetrail/safetrail/internal/pkg/websocket"
	"github.com/safetrail/safetrail/services/presence/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresenceServer(t *testing.T) string {
	t.Helper()

	uc := usecase.NewPresenceUC(models.PresenceConfig{}, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = uc.Run(ctx)
	}()

	manager := pkgws.NewManager(models.JWTConfig{}, models.WebSocketConfig{})
	handler := NewPresenceHandler(manager, uc)

	e := echo.New()
	e.GET("/ws", handler.HandleWebSocket)
	srv := httptest.NewServer(e)

	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-done
	})
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

type wsClient struct {
	t    *testing.T
	conn *websocket.Conn
	id   string
}

func dial(t *testing.T, url string) *wsClient {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	c := &wsClient{t: t, conn: conn}
	msg := c.read()
	require.Equal(t, constants.EventConnected, msg.Event)

	var connected models.Connected
	require.NoError(t, json.Unmarshal(msg.Data, &connected))
	require.NotEmpty(t, connected.ID)
	c.id = connected.ID
	return c
}

func (c *wsClient) send(event string, data interface{}) {
	c.t.Helper()
	require.NoError(c.t, c.conn.WriteJSON(map[string]interface{}{"event": event, "data": data}))
}

func (c *wsClient) read() models.WSMessage {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(c.t, c.conn.ReadJSON(&msg))
	return msg
}

// expectPong asserts that nothing else is queued ahead of the reply to a ping
func (c *wsClient) expectPong() {
	c.t.Helper()
	c.send(constants.EventPing, nil)
	assert.Equal(c.t, constants.EventPong, c.read().Event)
}

func readSample(t *testing.T, msg models.WSMessage) models.PositionSample {
	t.Helper()
	require.Equal(t, constants.EventLocationUpdate, msg.Event)
	var sample models.PositionSample
	require.NoError(t, json.Unmarshal(msg.Data, &sample))
	return sample
}

func TestPresence_SubmitFansOutToEveryone(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)
	assert.NotEqual(t, a.id, b.id)

	a.send(constants.EventSubmitLocation, map[string]interface{}{
		"latitude":    26.1445,
		"longitude":   91.7362,
		"accuracy":    10,
		"safetyScore": 80,
	})

	for _, c := range []*wsClient{a, b} {
		sample := readSample(t, c.read())
		assert.Equal(t, a.id, sample.ID)
		assert.Equal(t, 26.1445, sample.Latitude)
		assert.Equal(t, 91.7362, sample.Longitude)
		assert.False(t, sample.Timestamp.IsZero())
	}
}

func TestPresence_SnapshotGoesToRequesterOnly(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)

	a.send(constants.EventSubmitLocation, map[string]interface{}{"latitude": 1.5, "longitude": 2.5})
	readSample(t, a.read())
	readSample(t, b.read())

	b.send(constants.EventSnapshotRequest, nil)
	msg := b.read()
	require.Equal(t, constants.EventSnapshotResponse, msg.Event)

	var snapshot map[string]models.PositionSample
	require.NoError(t, json.Unmarshal(msg.Data, &snapshot))
	require.Len(t, snapshot, 1)
	assert.Equal(t, 1.5, snapshot[a.id].Latitude)

	a.expectPong()
}

func TestPresence_InvalidSampleIsDroppedSilently(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)

	a.send(constants.EventSubmitLocation, map[string]interface{}{"latitude": 91, "longitude": 0})
	a.send(constants.EventSubmitLocation, map[string]interface{}{"longitude": 0})
	a.send(constants.EventSubmitLocation, "not an object")

	a.expectPong()
	b.expectPong()

	b.send(constants.EventSnapshotRequest, nil)
	msg := b.read()
	require.Equal(t, constants.EventSnapshotResponse, msg.Event)
	assert.JSONEq(t, `{}`, string(msg.Data))
}

func TestPresence_DisconnectNotifiesOthers(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)

	a.send(constants.EventSubmitLocation, map[string]interface{}{"latitude": 1, "longitude": 1})
	readSample(t, a.read())
	readSample(t, b.read())

	require.NoError(t, a.conn.Close())

	msg := b.read()
	require.Equal(t, constants.EventIdentityLeft, msg.Event)
	var left string
	require.NoError(t, json.Unmarshal(msg.Data, &left))
	assert.Equal(t, a.id, left)

	b.send(constants.EventSnapshotRequest, nil)
	msg = b.read()
	require.Equal(t, constants.EventSnapshotResponse, msg.Event)
	assert.JSONEq(t, `{}`, string(msg.Data))
}

func TestPresence_PanicAlertReachesEveryone(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)

	a.send(constants.EventPanicAlert, map[string]interface{}{
		"type":      "panic",
		"location":  map[string]float64{"lat": 25.5788, "lng": 91.8933},
		"timestamp": "2020-01-01T00:00:00Z",
	})

	for _, c := range []*wsClient{a, b} {
		msg := c.read()
		require.Equal(t, constants.EventPanicAlert, msg.Event)

		var alert models.PanicAlert
		require.NoError(t, json.Unmarshal(msg.Data, &alert))
		assert.Equal(t, a.id, alert.TouristID)
		assert.Equal(t, 25.5788, alert.Location.Lat)
		assert.True(t, alert.Timestamp.After(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)))
	}
}

func TestPresence_SampleWithoutOffsetIsKept(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)

	a.send(constants.EventSubmitLocation, map[string]interface{}{
		"latitude":  26.1445,
		"longitude": 91.7362,
		"timestamp": "2025-01-02T10:00:00",
	})
	readSample(t, a.read())
	sample := readSample(t, b.read())
	assert.True(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC).Equal(sample.Timestamp))

	b.send(constants.EventSnapshotRequest, nil)
	msg := b.read()
	require.Equal(t, constants.EventSnapshotResponse, msg.Event)
	var snapshot map[string]models.PositionSample
	require.NoError(t, json.Unmarshal(msg.Data, &snapshot))
	assert.Contains(t, snapshot, a.id)
}

func TestPresence_PanicAlertIsRelayedAsSent(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)

	a.send(constants.EventPanicAlert, map[string]interface{}{
		"type":      "panic",
		"location":  map[string]float64{"lat": 25.5788, "lng": 91.8933},
		"timestamp": 1735812000000,
		"status":    "active",
	})

	for _, c := range []*wsClient{a, b} {
		msg := c.read()
		require.Equal(t, constants.EventPanicAlert, msg.Event)

		var alert models.PanicAlert
		require.NoError(t, json.Unmarshal(msg.Data, &alert))
		assert.Equal(t, a.id, alert.TouristID)
		require.NotNil(t, alert.ClientTimestamp)
		assert.True(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC).Equal(*alert.ClientTimestamp))

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Data, &raw))
		assert.Equal(t, "active", raw["status"])
	}
	a.expectPong()
}

func TestPresence_PanicAlertMustBeAnObject(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)
	b := dial(t, url)

	a.send(constants.EventPanicAlert, "help")
	msg := a.read()
	require.Equal(t, constants.EventError, msg.Event)
	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &wsErr))
	assert.Equal(t, constants.ErrorInvalidFormat, wsErr.Code)
	assert.Equal(t, "Invalid panic alert format", wsErr.Message)

	b.expectPong()
}

func TestPresence_ProtocolErrors(t *testing.T) {
	url := newPresenceServer(t)
	a := dial(t, url)

	require.NoError(t, a.conn.WriteMessage(websocket.TextMessage, []byte("{broken")))
	msg := a.read()
	require.Equal(t, constants.EventError, msg.Event)
	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &wsErr))
	assert.Equal(t, constants.ErrorInvalidFormat, wsErr.Code)

	a.send("teleport", nil)
	msg = a.read()
	require.Equal(t, constants.EventError, msg.Event)
	require.NoError(t, json.Unmarshal(msg.Data, &wsErr))
	assert.Equal(t, constants.ErrorUnknownEvent, wsErr.Code)
	assert.Equal(t, "Unknown event: teleport", wsErr.Message)
}
