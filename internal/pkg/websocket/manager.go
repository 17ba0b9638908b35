package websocket

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/jwt"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	jwtCfg   models.JWTConfig
	wsCfg    models.WebSocketConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig, wsConfig models.WebSocketConfig) *Manager {
	if wsConfig.SendBuffer <= 0 {
		wsConfig.SendBuffer = 64
	}
	if wsConfig.WriteTimeout <= 0 {
		wsConfig.WriteTimeout = 10 * time.Second
	}
	if wsConfig.PongTimeout <= 0 {
		wsConfig.PongTimeout = 60 * time.Second
	}

	return &Manager{
		clients: make(map[string]*Client),
		jwtCfg:  jwtConfig,
		wsCfg:   wsConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades the request, assigns the connection a fresh
// identity and hands the client to handleClient. The connection is torn down once
// handleClient returns.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	claims, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := newClient(uuid.NewString(), ws, m.wsCfg)
	if claims != nil {
		client.UserID = claims.UserID
		client.Role = claims.Role
	}

	m.AddClient(client)
	logger.Info("WebSocket connection opened",
		logger.Identity(client.ID),
		logger.Int("connections", m.Count()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		client.writePump()
	}()

	defer func() {
		m.RemoveClient(client.ID)
		client.Close()
		<-done
		ws.Close()
		logger.Info("WebSocket connection closed",
			logger.Identity(client.ID),
			logger.Int("connections", m.Count()))
	}()

	return handleClient(client)
}

// authenticate validates an optional bearer token. A missing token is accepted unless
// tokens are required; a present but invalid token is always rejected.
func (m *Manager) authenticate(c echo.Context) (*models.WebSocketClaims, error) {
	tokenString := jwt.TokenFromRequest(c.Request())
	if tokenString == "" {
		if m.jwtCfg.Required {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization token is required")
		}
		return nil, nil
	}

	claims, err := jwt.ValidateToken(tokenString, m.jwtCfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return claims, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(id string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, id)
}

// Count returns the number of open connections
func (m *Manager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendCategorizedError sends an error message based on severity level. Client errors
// echo err to the sender; server errors are logged and reported generically.
func (m *Manager) SendCategorizedError(client *Client, err error, code string, severity constants.ErrorSeverity) bool {
	if severity == constants.ErrorSeverityClient {
		logger.Debug("WebSocket client error",
			logger.Identity(client.ID),
			logger.String("error_code", code),
			logger.Err(err))
		return client.SendError(code, err.Error())
	}

	logger.Error("WebSocket operation failed",
		logger.Identity(client.ID),
		logger.String("error_code", code),
		logger.Err(err))
	return client.SendError(code, "Operation failed")
}

// IsClosedError reports whether err is a normal end of a connection rather than a fault
func IsClosedError(err error) bool {
	if err == nil {
		return false
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
		return true
	}
	return errors.Is(err, websocket.ErrCloseSent)
}
