package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
	"github.com/safetrail/safetrail/services/alerts"
)

const defaultWindowHours = 24

// AlertHandler serves recorded alerts for review
type AlertHandler struct {
	alertUC alerts.AlertUC
}

// NewAlertHandler creates a new alert HTTP handler
func NewAlertHandler(alertUC alerts.AlertUC) *AlertHandler {
	return &AlertHandler{alertUC: alertUC}
}

// RegisterRoutes registers the alert routes on g
func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/alerts", h.GetRecent)
}

// GetRecent lists alerts raised in the last hours
func (h *AlertHandler) GetRecent(c echo.Context) error {
	hours, err := utils.QueryInt(c, "hours", defaultWindowHours)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	limit, err := utils.QueryInt(c, "limit", 0)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	since := models.HoursAgo(hours)
	list, err := h.alertUC.Recent(c.Request().Context(), since, limit)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "failed to list alerts", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list alerts")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Alerts retrieved successfully", list)
}
