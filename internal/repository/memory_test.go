package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository() (*MemoryRepository, *models.Incident) {
	incident := &models.Incident{
		ID:       uuid.New(),
		Type:     "Incident de sécurité",
		Location: "Dakar Plateau",
		Urgency:  models.UrgencyUrgent,
		Status:   models.IncidentStatusPending,
		Source:   models.SourceManual,
	}
	repo := NewMemoryRepository([]*models.Incident{incident}, SeedAgents())
	return repo.(*MemoryRepository), incident
}

func TestAddIncident_NewestFirst(t *testing.T) {
	repo, seeded := newTestRepository()

	added := &models.Incident{ID: uuid.New(), Type: "Contrôle foule", Status: models.IncidentStatusPending}
	repo.AddIncident(added)

	incidents := repo.ListIncidents()
	require.Len(t, incidents, 2)
	assert.Equal(t, added.ID, incidents[0].ID)
	assert.Equal(t, seeded.ID, incidents[1].ID)
}

func TestGetIncident_NotFound(t *testing.T) {
	repo, _ := newTestRepository()

	incident, err := repo.GetIncident(uuid.New())

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorContains(t, err, "not found")
}

func TestGetIncident_ReturnsCopy(t *testing.T) {
	repo, seeded := newTestRepository()

	incident, err := repo.GetIncident(seeded.ID)
	require.NoError(t, err)

	// Мутация копии не должна затрагивать хранилище
	incident.Status = models.IncidentStatusResolved

	stored, err := repo.GetIncident(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusPending, stored.Status)
}

func TestAssignIncident_Atomic(t *testing.T) {
	repo, seeded := newTestRepository()

	assigned, err := repo.AssignIncident(seeded.ID, "Amadou Diallo", models.AssignedByAI)

	require.NoError(t, err)
	// Статус, агент и источник назначения выставляются вместе
	assert.Equal(t, models.IncidentStatusAssigned, assigned.Status)
	assert.Equal(t, "Amadou Diallo", assigned.Agent)
	assert.Equal(t, models.AssignedByAI, assigned.AssignedBy)

	stored, err := repo.GetIncident(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusAssigned, stored.Status)
	assert.Equal(t, "Amadou Diallo", stored.Agent)
}

func TestAssignIncident_LastWriteWins(t *testing.T) {
	repo, seeded := newTestRepository()

	_, err := repo.AssignIncident(seeded.ID, "Premier Agent", models.AssignedByManual)
	require.NoError(t, err)

	_, err = repo.AssignIncident(seeded.ID, "Deuxième Agent", models.AssignedByManual)
	require.NoError(t, err)

	stored, err := repo.GetIncident(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deuxième Agent", stored.Agent)
	assert.Equal(t, models.AssignedByManual, stored.AssignedBy)
	assert.Equal(t, models.IncidentStatusAssigned, stored.Status)
}

func TestAssignIncident_NotFound(t *testing.T) {
	repo, _ := newTestRepository()

	incident, err := repo.AssignIncident(uuid.New(), "Agent", models.AssignedByManual)

	require.Error(t, err)
	assert.Nil(t, incident)
}

func TestListAgents_SeedRoster(t *testing.T) {
	repo, _ := newTestRepository()

	agents := repo.ListAgents()

	require.Len(t, agents, 6)

	available := 0
	for _, agent := range agents {
		if agent.IsAvailable() {
			available++
		}
	}
	assert.Equal(t, 5, available)
}
