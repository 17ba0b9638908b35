package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// QueryFloat parses a float query parameter, returning def when it is absent
func QueryFloat(c echo.Context, name string, def float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !IsFinite(v) {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

// OptionalQueryFloat parses a float query parameter, returning nil when it is absent
func OptionalQueryFloat(c echo.Context, name string) (*float64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}
	v, err := QueryFloat(c, name, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// QueryInt parses a positive integer query parameter, returning def when it is absent
func QueryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

// OptionalQueryTime parses an RFC3339 or YYYY-MM-DD query parameter, returning nil when it is absent
func OptionalQueryTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := models.ParseTime(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

// QueryLocation reads the required lat and lng query parameters
func QueryLocation(c echo.Context) (float64, float64, error) {
	if c.QueryParam("lat") == "" || c.QueryParam("lng") == "" {
		return 0, 0, fmt.Errorf("lat and lng are required")
	}
	lat, err := QueryFloat(c, "lat", 0)
	if err != nil {
		return 0, 0, err
	}
	lng, err := QueryFloat(c, "lng", 0)
	if err != nil {
		return 0, 0, err
	}
	if !ValidCoordinates(lat, lng) {
		return 0, 0, fmt.Errorf("lat/lng out of range")
	}
	return lat, lng, nil
}
