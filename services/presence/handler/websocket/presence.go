package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	pkgws "github.com/safetrail/safetrail/internal/pkg/websocket"
	"github.com/safetrail/safetrail/services/presence"
)

var (
	errInvalidEnvelope   = errors.New("Invalid message format")
	errInvalidPanicAlert = errors.New("Invalid panic alert format")
)

// PresenceHandler routes WebSocket events to the presence use case
type PresenceHandler struct {
	manager    *pkgws.Manager
	presenceUC presence.PresenceUC
}

// NewPresenceHandler creates a new WebSocket presence handler
func NewPresenceHandler(manager *pkgws.Manager, presenceUC presence.PresenceUC) *PresenceHandler {
	return &PresenceHandler{
		manager:    manager,
		presenceUC: presenceUC,
	}
}

// HandleWebSocket upgrades the request and serves the connection until it closes
func (h *PresenceHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

func (h *PresenceHandler) serveClient(client *pkgws.Client) error {
	ctx := logger.WithIdentity(context.Background(), client.ID)

	if err := h.presenceUC.Connect(ctx, client.ID, client.UserID, client); err != nil {
		h.manager.SendCategorizedError(client, err, constants.ErrorServiceStopped, constants.ErrorSeverityServer)
		return nil
	}
	defer func() {
		if err := h.presenceUC.Disconnect(context.Background(), client.ID); err != nil {
			logger.Warn("Failed to disconnect identity",
				logger.Identity(client.ID),
				logger.Err(err))
		}
	}()

	for {
		payload, err := client.ReadMessage()
		if err != nil {
			if !pkgws.IsClosedError(err) {
				logger.Warn("WebSocket read failed",
					logger.Identity(client.ID),
					logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.manager.SendCategorizedError(client, errInvalidEnvelope, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			continue
		}

		if err := h.handleMessage(ctx, client, &msg); err != nil {
			if errors.Is(err, presence.ErrStopped) {
				h.manager.SendCategorizedError(client, err, constants.ErrorServiceStopped, constants.ErrorSeverityServer)
				return nil
			}
			h.manager.SendCategorizedError(client, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
		}
	}
}

func (h *PresenceHandler) handleMessage(ctx context.Context, client *pkgws.Client, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventSubmitLocation:
		return h.handleSubmitLocation(ctx, client, msg.Data)
	case constants.EventSnapshotRequest:
		return h.handleSnapshotRequest(ctx, client)
	case constants.EventPanicAlert:
		return h.handlePanicAlert(ctx, client, msg.Data)
	case constants.EventPing:
		client.Send(constants.EventPong, nil)
		return nil
	default:
		h.manager.SendCategorizedError(client, fmt.Errorf("Unknown event: %s", msg.Event), constants.ErrorUnknownEvent, constants.ErrorSeverityClient)
		return nil
	}
}

// handleSubmitLocation drops malformed samples without telling anyone
func (h *PresenceHandler) handleSubmitLocation(ctx context.Context, client *pkgws.Client, data json.RawMessage) error {
	var req models.SubmitLocationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.DebugCtx(ctx, "Dropping undecodable sample", logger.Err(err))
		return nil
	}

	if _, err := h.presenceUC.Submit(ctx, client.ID, &req); err != nil {
		if errors.Is(err, presence.ErrInvalidSample) {
			logger.DebugCtx(ctx, "Dropping invalid sample")
			return nil
		}
		return err
	}
	return nil
}

func (h *PresenceHandler) handleSnapshotRequest(ctx context.Context, client *pkgws.Client) error {
	snapshot, err := h.presenceUC.Snapshot(ctx)
	if err != nil {
		return err
	}
	client.Send(constants.EventSnapshotResponse, snapshot)
	return nil
}

// handlePanicAlert relays whatever the client sent. Only a payload that is not a JSON
// object is refused; unreadable fields inside it never block the alert.
func (h *PresenceHandler) handlePanicAlert(ctx context.Context, client *pkgws.Client, data json.RawMessage) error {
	var req models.PanicAlertRequest
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &req); err != nil {
			h.manager.SendCategorizedError(client, errInvalidPanicAlert, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			return nil
		}
	}

	_, err := h.presenceUC.PanicAlert(ctx, client.ID, &req)
	return err
}
