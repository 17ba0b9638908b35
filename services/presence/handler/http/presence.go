package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
	"github.com/safetrail/safetrail/services/presence"
)

const (
	defaultNearbyRadius   = 1000.0
	defaultNearbyLimit    = 50
	defaultHighRiskScore  = 40.0
	defaultHighRiskWindow = 24
	defaultStatsWindow    = 7
)

// PresenceHandler handles HTTP requests for live presence and location history
type PresenceHandler struct {
	presenceUC presence.PresenceUC
}

// NewPresenceHandler creates a new presence HTTP handler
func NewPresenceHandler(presenceUC presence.PresenceUC) *PresenceHandler {
	return &PresenceHandler{presenceUC: presenceUC}
}

// RegisterRoutes registers the presence routes on g
func (h *PresenceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/presence", h.GetSnapshot)
	g.GET("/presence/nearby", h.GetNearby)
	g.GET("/locations", h.GetHistory)
	g.GET("/locations/high-risk", h.GetHighRisk)
	g.GET("/locations/stats", h.GetStats)
}

// GetSnapshot returns the latest sample of every connected identity
func (h *PresenceHandler) GetSnapshot(c echo.Context) error {
	snapshot, err := h.presenceUC.Snapshot(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, "failed to get presence snapshot")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Presence retrieved successfully", snapshot)
}

// GetNearby lists identities within radius meters of lat/lng
func (h *PresenceHandler) GetNearby(c echo.Context) error {
	lat, lng, err := utils.QueryLocation(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	radius, err := utils.QueryFloat(c, "radius", defaultNearbyRadius)
	if err != nil || radius <= 0 {
		return utils.BadRequestResponse(c, "invalid radius")
	}
	limit, err := utils.QueryInt(c, "limit", defaultNearbyLimit)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	pos := models.Location{Latitude: lat, Longitude: lng}
	found, err := h.presenceUC.Nearby(c.Request().Context(), pos, radius, limit)
	if err != nil {
		return h.handleError(c, err, "failed to find nearby tourists")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby tourists retrieved successfully", found)
}

// GetHistory returns a page of stored samples
func (h *PresenceHandler) GetHistory(c echo.Context) error {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	page, err := h.presenceUC.History(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err, "failed to get location history")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved successfully", page)
}

// GetHighRisk returns recent samples with a low safety score
func (h *PresenceHandler) GetHighRisk(c echo.Context) error {
	maxScore, err := utils.QueryFloat(c, "maxScore", defaultHighRiskScore)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	hours, err := utils.QueryInt(c, "hours", defaultHighRiskWindow)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	limit, err := utils.QueryInt(c, "limit", 0)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	since := models.HoursAgo(hours)
	samples, err := h.presenceUC.HighRisk(c.Request().Context(), maxScore, since, limit)
	if err != nil {
		return h.handleError(c, err, "failed to get high risk locations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "High risk locations retrieved successfully", samples)
}

// GetStats summarises stored samples over the last days
func (h *PresenceHandler) GetStats(c echo.Context) error {
	days, err := utils.QueryInt(c, "days", defaultStatsWindow)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	since := models.Now().AddDate(0, 0, -days)
	stats, err := h.presenceUC.Stats(c.Request().Context(), c.QueryParam("touristId"), since)
	if err != nil {
		return h.handleError(c, err, "failed to get location stats")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location stats retrieved successfully", stats)
}

func (h *PresenceHandler) handleError(c echo.Context, err error, message string) error {
	if errors.Is(err, presence.ErrHistoryDisabled) {
		return utils.ServiceUnavailableResponse(c, err.Error())
	}
	if errors.Is(err, presence.ErrStopped) {
		return utils.ServiceUnavailableResponse(c, err.Error())
	}
	logger.ErrorCtx(c.Request().Context(), message, logger.Err(err))
	return utils.InternalServerErrorResponse(c, message)
}

func parseHistoryFilter(c echo.Context) (models.HistoryFilter, error) {
	filter := models.HistoryFilter{TouristID: c.QueryParam("touristId")}

	var err error
	if filter.StartTime, err = utils.OptionalQueryTime(c, "startDate"); err != nil {
		return filter, err
	}
	if filter.EndTime, err = utils.OptionalQueryTime(c, "endDate"); err != nil {
		return filter, err
	}
	if filter.MinScore, err = utils.OptionalQueryFloat(c, "minScore"); err != nil {
		return filter, err
	}
	if filter.MaxScore, err = utils.OptionalQueryFloat(c, "maxScore"); err != nil {
		return filter, err
	}
	if filter.Page, err = utils.QueryInt(c, "page", 1); err != nil {
		return filter, err
	}
	if filter.Limit, err = utils.QueryInt(c, "limit", 0); err != nil {
		return filter, err
	}

	switch strings.ToLower(c.QueryParam("sortOrder")) {
	case "", "desc":
	case "asc":
		filter.Ascending = true
	default:
		return filter, errors.New("invalid sortOrder")
	}
	return filter, nil
}
