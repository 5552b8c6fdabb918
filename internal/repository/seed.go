package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/models"
)

// SeedAgents возвращает стартовый состав агентов с реальной локализацией
// в Сенегале и наборами компетенций
func SeedAgents() []*models.Agent {
	return []*models.Agent{
		{
			ID:        "1",
			Name:      "Amadou Diallo",
			Status:    models.AgentStatusAvailable,
			Location:  "Dakar Plateau",
			Phone:     "+221 77 123 45 67",
			Latitude:  14.6937,
			Longitude: -17.4441,
			Skills:    []string{"sécurité", "médical"},
		},
		{
			ID:        "2",
			Name:      "Mariama Ndiaye",
			Status:    models.AgentStatusBusy,
			Location:  "Mbour",
			Latitude:  14.4199,
			Longitude: -16.9619,
			Skills:    []string{"médical"},
		},
		{
			ID:        "3",
			Name:      "Ibrahima Sarr",
			Status:    models.AgentStatusAvailable,
			Location:  "Rufisque",
			Phone:     "+221 76 234 56 78",
			Latitude:  14.7128,
			Longitude: -17.2695,
			Skills:    []string{"sécurité", "technique"},
		},
		{
			ID:        "4",
			Name:      "Fatou Sow",
			Status:    models.AgentStatusAvailable,
			Location:  "Thiès",
			Latitude:  14.7886,
			Longitude: -16.9262,
			Skills:    []string{"médical", "sécurité"},
		},
		{
			ID:        "5",
			Name:      "Ousmane Ba",
			Status:    models.AgentStatusAvailable,
			Location:  "Pikine",
			Phone:     "+221 78 345 67 89",
			Latitude:  14.7549,
			Longitude: -17.3964,
			Skills:    []string{"technique"},
		},
		{
			ID:        "6",
			Name:      "Awa Diop",
			Status:    models.AgentStatusAvailable,
			Location:  "Kaolack",
			Latitude:  14.1522,
			Longitude: -16.0725,
			Skills:    []string{"médical"},
		},
	}
}

// SeedIncidents возвращает стартовый список инцидентов сессии
func SeedIncidents() []*models.Incident {
	now := time.Now()
	return []*models.Incident{
		{
			ID:        uuid.New(),
			Type:      "Incident de sécurité",
			Location:  "Dakar Plateau",
			Urgency:   models.UrgencyUrgent,
			Status:    models.IncidentStatusPending,
			Source:    models.SourceManual,
			Latitude:  14.6937,
			Longitude: -17.4441,
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:         uuid.New(),
			Type:       "Assistance médicale urgente",
			Location:   "Mbour",
			Urgency:    models.UrgencyMedium,
			Status:     models.IncidentStatusAssigned,
			Agent:      "Mariama Ndiaye",
			AssignedBy: models.AssignedByManual,
			Source:     models.SourceManual,
			Latitude:   14.4199,
			Longitude:  -16.9619,
			CreatedAt:  now.Add(-12 * time.Minute),
		},
		{
			ID:        uuid.New(),
			Type:      "Problème technique",
			Location:  "Rufisque",
			Urgency:   models.UrgencyLow,
			Status:    models.IncidentStatusPending,
			Source:    models.SourceManual,
			Latitude:  14.7128,
			Longitude: -17.2695,
			CreatedAt: now.Add(-23 * time.Minute),
		},
	}
}
