package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/config"
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/shenikar/incident_dispatch_system/internal/service"
	"github.com/shenikar/incident_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDispatchService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDispatchService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(APIKeyAuthMiddleware(cfg, logger))
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func apiKeyHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestCreateReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Type:        "Incident de sécurité",
		Urgency:     "urgent",
		Location:    "Dakar Plateau",
		Description: "Attroupement devant la gare",
		Latitude:    14.6937,
		Longitude:   -17.4441,
	}

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return("ORION-123456", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CreateReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ORION-123456", resp.TrackingID)
}

func TestCreateReport_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateReportRequest{ // Отсутствуют location и description
		Type:    "Incident de sécurité",
		Urgency: "urgent",
	}

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReport_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"type": "test"`), apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{
			ID:        uuid.New(),
			Type:      "Incident de sécurité",
			Location:  "Dakar Plateau",
			Urgency:   models.UrgencyUrgent,
			Status:    models.IncidentStatusPending,
			Source:    models.SourceManual,
			CreatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			Type:      "Problème technique",
			Location:  "Rufisque",
			Urgency:   models.UrgencyLow,
			Status:    models.IncidentStatusPending,
			Source:    models.SourceCamera,
			CameraID:  "CAM-7",
			CreatedAt: time.Now(),
		},
	}

	mockService.EXPECT().
		ListIncidents(gomock.Any()).
		Return(expectedIncidents, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, expectedIncidents[0].ID, resp[0].ID)
	assert.Equal(t, "CAM-7", resp[1].CameraID)
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:       incidentID,
		Type:     "Incident de sécurité",
		Location: "Dakar Plateau",
		Status:   models.IncidentStatusPending,
	}

	mockService.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(expectedIncident, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incidentID.String(), nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-uuid", nil, apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestAssignIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := AssignIncidentRequest{AgentName: "Test Agent"}

	mockService.EXPECT().
		ManualAssign(gomock.Any(), incidentID, "Test Agent").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/assign", bytes.NewBuffer(bodyBytes), apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignIncident_EmptyBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidentID := uuid.New()

	// Без тела запроса сервис получает пустое имя агента
	mockService.EXPECT().
		ManualAssign(gomock.Any(), incidentID, "").
		Return(nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/assign", nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidentID := uuid.New()

	mockService.EXPECT().
		ManualAssign(gomock.Any(), incidentID, "").
		Return(fmt.Errorf("service: could not assign incident")).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/assign", nil, apiKeyHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAutoAssignIncident_Accepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incidentID := uuid.New()

	mockService.EXPECT().
		AutoAssign(gomock.Any(), incidentID).
		Return(nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/auto-assign", nil, apiKeyHeader())

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestListAgents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedAgents := []*models.Agent{
		{ID: "1", Name: "Amadou Diallo", Status: models.AgentStatusAvailable, Location: "Dakar Plateau", Skills: []string{"sécurité", "médical"}},
		{ID: "2", Name: "Mariama Ndiaye", Status: models.AgentStatusBusy, Location: "Mbour", Skills: []string{"médical"}},
	}

	mockService.EXPECT().
		ListAgents(gomock.Any()).
		Return(expectedAgents, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/agents", nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []AgentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Amadou Diallo", resp[0].Name)
	assert.Equal(t, []string{"médical"}, resp[1].Skills)
}

func TestGetEngineState_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	state := &service.EngineState{
		Activity: "Analyse des positions...",
		Stats: models.DispatchStats{
			AvgAssignmentTimeSec: 8,
			TotalAutoAssignments: 3,
			AccuracyPercent:      97,
		},
	}

	mockService.EXPECT().
		EngineState(gomock.Any()).
		Return(state, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/engine", nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EngineStateResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Analyse des positions...", resp.Activity)
	assert.Equal(t, int64(3), resp.Stats.TotalAutoAssignments)
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuth_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any()).Return([]*models.Incident{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}
