package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext("/")

	err := SuccessResponse(c, http.StatusCreated, "Resource created", map[string]interface{}{"id": "123"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Resource created", response.Message)
	assert.Equal(t, map[string]interface{}{"id": "123"}, response.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		call    func(echo.Context) error
		status  int
		message string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "nope") }, http.StatusBadRequest, "nope"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"internal default", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal server error"},
		{"unavailable", func(c echo.Context) error { return ServiceUnavailableResponse(c, "history disabled") }, http.StatusServiceUnavailable, "history disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("/")
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.status, response.Code)
		})
	}
}

func TestQueryHelpers(t *testing.T) {
	c, _ := newContext("/?lat=26.1&lng=91.7&radius=abc&limit=5&zero=0&since=2025-01-02T03:04:05Z")

	lat, lng, err := QueryLocation(c)
	require.NoError(t, err)
	assert.Equal(t, 26.1, lat)
	assert.Equal(t, 91.7, lng)

	_, err = QueryFloat(c, "radius", 1)
	assert.Error(t, err)

	v, err := QueryFloat(c, "missing", 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	opt, err := OptionalQueryFloat(c, "missing")
	require.NoError(t, err)
	assert.Nil(t, opt)

	limit, err := QueryInt(c, "limit", 50)
	require.NoError(t, err)
	assert.Equal(t, 5, limit)

	_, err = QueryInt(c, "zero", 50)
	assert.Error(t, err)

	since, err := OptionalQueryTime(c, "since")
	require.NoError(t, err)
	require.NotNil(t, since)
	assert.Equal(t, 2025, since.Year())
}

func TestQueryLocation_Errors(t *testing.T) {
	for _, target := range []string{"/?lat=1", "/?lat=95&lng=0", "/?lat=x&lng=1"} {
		c, _ := newContext(target)
		_, _, err := QueryLocation(c)
		assert.Error(t, err, target)
	}
}
