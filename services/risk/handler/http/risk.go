package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
	"github.com/safetrail/safetrail/services/risk"
	"github.com/safetrail/safetrail/services/risk/scorer"
	"github.com/safetrail/safetrail/services/risk/usecase"
)

// RiskHandler handles HTTP requests for zones and scores
type RiskHandler struct {
	riskUC risk.RiskUC
}

// NewRiskHandler creates a new risk HTTP handler
func NewRiskHandler(riskUC risk.RiskUC) *RiskHandler {
	return &RiskHandler{riskUC: riskUC}
}

// RegisterRoutes registers the risk routes on g
func (h *RiskHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/zones", h.GetZones)
	g.GET("/zones/geojson", h.GetZonesGeoJSON)
	g.GET("/score", h.GetScore)
	g.POST("/score", h.ScoreAgainstZones)
}

// GetZones returns the server-authoritative zones around lat/lng
func (h *RiskHandler) GetZones(c echo.Context) error {
	pos, err := queryPosition(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	zones, err := h.riskUC.GetZones(c.Request().Context(), pos)
	if err != nil {
		return h.handleError(c, err, "failed to get zones")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Zones retrieved successfully", zones)
}

// GetZonesGeoJSON returns the same zones as a GeoJSON FeatureCollection
func (h *RiskHandler) GetZonesGeoJSON(c echo.Context) error {
	pos, err := queryPosition(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	zones, err := h.riskUC.GetZones(c.Request().Context(), pos)
	if err != nil {
		return h.handleError(c, err, "failed to get zones")
	}
	return c.JSON(http.StatusOK, usecase.ZonesToGeoJSON(zones))
}

// GetScore scores lat/lng against the zones around it
func (h *RiskHandler) GetScore(c echo.Context) error {
	pos, err := queryPosition(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	assessment, err := h.riskUC.Score(c.Request().Context(), pos)
	if err != nil {
		return h.handleError(c, err, "failed to score position")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Position scored successfully", assessment)
}

// ScoreRequest scores a position against caller-supplied zones
type ScoreRequest struct {
	Position models.Location   `json:"position"`
	Zones    []models.RiskZone `json:"zones"`
}

// ScoreAgainstZones runs the scorer on a caller-supplied zone set
func (h *RiskHandler) ScoreAgainstZones(c echo.Context) error {
	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind score request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if !utils.ValidCoordinates(req.Position.Latitude, req.Position.Longitude) {
		return utils.BadRequestResponse(c, "position out of range")
	}
	for _, zone := range req.Zones {
		if !zone.Severity.Valid() || !(zone.Radius > 0) ||
			!utils.ValidCoordinates(zone.Center.Latitude, zone.Center.Longitude) {
			return utils.BadRequestResponse(c, "invalid zone "+zone.ID)
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position scored successfully", scorer.Assess(req.Position, req.Zones))
}

func (h *RiskHandler) handleError(c echo.Context, err error, message string) error {
	if errors.Is(err, risk.ErrInvalidPosition) {
		return utils.BadRequestResponse(c, err.Error())
	}
	logger.ErrorCtx(c.Request().Context(), message, logger.Err(err))
	return utils.InternalServerErrorResponse(c, message)
}

func queryPosition(c echo.Context) (models.Location, error) {
	lat, lng, err := utils.QueryLocation(c)
	if err != nil {
		return models.Location{}, err
	}
	return models.Location{Latitude: lat, Longitude: lng}, nil
}
