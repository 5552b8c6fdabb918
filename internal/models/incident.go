package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы жизненного цикла инцидента. Переходы только в одну сторону:
// pending -> assigned -> resolved.
const (
	IncidentStatusPending  = "pending"
	IncidentStatusAssigned = "assigned"
	IncidentStatusResolved = "resolved"
)

// Уровни срочности инцидента
const (
	UrgencyUrgent = "urgent"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// Источники появления инцидента
const (
	SourceManual = "manual"
	SourceCamera = "camera"
	SourceAI     = "ai"
)

// Кто выполнил назначение агента
const (
	AssignedByManual = "manual"
	AssignedByAI     = "ai"
)

// Incident представляет инцидент, требующий выезда агента
type Incident struct {
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
