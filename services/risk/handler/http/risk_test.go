package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/services/risk"
	"github.com/safetrail/safetrail/services/risk/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guwahati = models.Location{Latitude: 26.1445, Longitude: 91.7362}

func highZone() models.RiskZone {
	return models.RiskZone{ID: "z1", Name: "Dark Alley", Center: guwahati, Radius: 500, Severity: models.SeverityHigh}
}

func serve(t *testing.T, h *RiskHandler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewRiskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRiskUC(ctrl)
	handler := NewRiskHandler(mockUC)
	assert.Equal(t, mockUC, handler.riskUC)
}

func TestRiskHandler_GetZones(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockSetup      func(*mocks.MockRiskUC)
		expectedStatus int
	}{
		{
			name:   "Success",
			target: "/api/zones?lat=26.1445&lng=91.7362",
			mockSetup: func(mockUC *mocks.MockRiskUC) {
				mockUC.EXPECT().GetZones(gomock.Any(), guwahati).Return([]models.RiskZone{highZone()}, nil).Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing lng",
			target:         "/api/zones?lat=26.1445",
			mockSetup:      func(*mocks.MockRiskUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Latitude out of range",
			target:         "/api/zones?lat=95&lng=91",
			mockSetup:      func(*mocks.MockRiskUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Use case failure",
			target: "/api/zones?lat=26.1445&lng=91.7362",
			mockSetup: func(mockUC *mocks.MockRiskUC) {
				mockUC.EXPECT().GetZones(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockRiskUC(ctrl)
			tt.mockSetup(mockUC)

			rec := serve(t, NewRiskHandler(mockUC), http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Success bool              `json:"success"`
					Data    []models.RiskZone `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, []models.RiskZone{highZone()}, resp.Data)
			}
		})
	}
}

func TestRiskHandler_GetZonesGeoJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRiskUC(ctrl)
	mockUC.EXPECT().GetZones(gomock.Any(), guwahati).Return([]models.RiskZone{highZone()}, nil)

	rec := serve(t, NewRiskHandler(mockUC), http.MethodGet, "/api/zones/geojson?lat=26.1445&lng=91.7362", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc["type"])
	assert.Len(t, fc["features"], 1)
}

func TestRiskHandler_GetScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRiskUC(ctrl)
	mockUC.EXPECT().Score(gomock.Any(), guwahati).Return(&models.RiskAssessment{
		Location: guwahati, Score: 75, InAnyZone: true, ContainingZones: []models.RiskZone{highZone()},
	}, nil)

	rec := serve(t, NewRiskHandler(mockUC), http.MethodGet, "/api/score?lat=26.1445&lng=91.7362", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.RiskAssessment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 75, resp.Data.Score)
	assert.True(t, resp.Data.InAnyZone)
}

func TestRiskHandler_GetScore_InvalidPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRiskUC(ctrl)
	mockUC.EXPECT().Score(gomock.Any(), gomock.Any()).Return(nil, risk.ErrInvalidPosition)

	rec := serve(t, NewRiskHandler(mockUC), http.MethodGet, "/api/score?lat=10&lng=10", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRiskHandler_ScoreAgainstZones(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedScore  int
	}{
		{
			name:           "Scenario high zone at center",
			body:           ScoreRequest{Position: guwahati, Zones: []models.RiskZone{highZone()}},
			expectedStatus: http.StatusOK,
			expectedScore:  75,
		},
		{
			name:           "No zones",
			body:           ScoreRequest{Position: guwahati},
			expectedStatus: http.StatusOK,
			expectedScore:  100,
		},
		{
			name: "Unknown severity",
			body: ScoreRequest{Position: guwahati, Zones: []models.RiskZone{
				{ID: "bad", Center: guwahati, Radius: 100, Severity: "extreme"},
			}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Zero radius",
			body: ScoreRequest{Position: guwahati, Zones: []models.RiskZone{
				{ID: "bad", Center: guwahati, Radius: 0, Severity: models.SeverityLow},
			}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Position out of range",
			body:           ScoreRequest{Position: models.Location{Latitude: -100}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid body",
			body:           "not an object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			body, err := json.Marshal(tt.body)
			require.NoError(t, err)

			rec := serve(t, NewRiskHandler(mocks.NewMockRiskUC(ctrl)), http.MethodPost, "/api/score", body)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Data models.RiskAssessment `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedScore, resp.Data.Score)
			}
		})
	}
}
