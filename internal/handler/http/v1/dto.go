package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest DTO для ручного сигнала об инциденте
// @Description DTO для ручного сигнала об инциденте
type CreateReportRequest struct {
	Type        string  `json:"type" validate:"required,min=2,max=255"`
	Urgency     string  `json:"urgency" validate:"required,oneof=urgent medium low"`
	Location    string  `json:"location" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   float64 `json:"longitude" validate:"omitempty,longitude"`
}

// CreateReportResponse DTO с трекинговым номером принятого сигнала
// @Description DTO с трекинговым номером принятого сигнала
type CreateReportResponse struct {
	TrackingID string `json:"tracking_id"`
}

// AssignIncidentRequest DTO для ручного назначения агента
// @Description DTO для ручного назначения агента
type AssignIncidentRequest struct {
	AgentName string `json:"agent_name,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID `json:"id"`
	TrackingID  string    `json:"tracking_id,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Urgency     string    `json:"urgency"`
	Status      string    `json:"status"`
	Agent       string    `json:"agent,omitempty"`
	AssignedBy  string    `json:"assigned_by,omitempty"`
	Source      string    `json:"source"`
	CameraID    string    `json:"camera_id,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

// AgentResponse DTO для ответа с информацией об агенте
// @Description DTO для ответа с информацией об агенте
type AgentResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Location  string   `json:"location"`
	Phone     string   `json:"phone,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Skills    []string `json:"skills"`
}

// EngineStateResponse DTO для ответа с состоянием движка
// @Description DTO для ответа с текущей активностью движка и статистикой
type EngineStateResponse struct {
	Activity string        `json:"activity"`
	Stats    StatsResponse `json:"stats"`
}

// StatsResponse DTO для ответа со статистикой движка
// @Description DTO для ответа со статистикой движка
type StatsResponse struct {
	AvgAssignmentTimeSec int   `json:"avg_assignment_time_sec"`
	TotalAutoAssignments int64 `json:"total_auto_assignments"`
	AccuracyPercent      int   `json:"accuracy_percent"`
}
