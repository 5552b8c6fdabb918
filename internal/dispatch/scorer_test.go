package dispatch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIncident(incidentType string) *models.Incident {
	return &models.Incident{
		ID:        uuid.New(),
		Type:      incidentType,
		Location:  "Dakar Plateau",
		Urgency:   models.UrgencyUrgent,
		Status:    models.IncidentStatusPending,
		Latitude:  14.6937,
		Longitude: -17.4441,
	}
}

func TestSelectBestAgent_NoAgents(t *testing.T) {
	incident := testIncident("Incident de sécurité")

	assert.Nil(t, SelectBestAgent(incident, nil))
	assert.Nil(t, SelectBestAgent(incident, []*models.Agent{}))
}

func TestSelectBestAgent_AllBusy(t *testing.T) {
	incident := testIncident("Incident de sécurité")
	agents := []*models.Agent{
		{Name: "Busy", Status: models.AgentStatusBusy, Latitude: 14.6937, Longitude: -17.4441, Skills: []string{"sécurité"}},
		{Name: "Offline", Status: models.AgentStatusOffline, Latitude: 14.6937, Longitude: -17.4441, Skills: []string{"sécurité"}},
	}

	assert.Nil(t, SelectBestAgent(incident, agents))
}

func TestSelectBestAgent_ClosestSkilledWins(t *testing.T) {
	incident := testIncident("Incident de sécurité")

	// Агент X в точке инцидента с нужной компетенцией: счет 1.0.
	// Агент Y в 5 км без компетенции: 0.7*0.5 + 0.3*0.3 = 0.44.
	agentX := &models.Agent{Name: "Agent X", Status: models.AgentStatusAvailable, Latitude: 14.6937, Longitude: -17.4441, Skills: []string{"sécurité"}}
	agentY := &models.Agent{Name: "Agent Y", Status: models.AgentStatusAvailable, Latitude: 14.6937 + 0.044966, Longitude: -17.4441, Skills: []string{"technique"}}

	best := SelectBestAgent(incident, []*models.Agent{agentY, agentX})

	require.NotNil(t, best)
	assert.Equal(t, "Agent X", best.Name)

	scoredX := ScoreAgent(incident, agentX)
	scoredY := ScoreAgent(incident, agentY)
	assert.InDelta(t, 1.0, scoredX.Score, 0.0001)
	assert.InDelta(t, 0.44, scoredY.Score, 0.001)
}

func TestScoreAgent_DistanceScoreSaturatesAtTenKm(t *testing.T) {
	incident := testIncident("Incident de sécurité")

	// Агент в градусе широты от инцидента, это больше 100 км:
	// вклад дистанции нулевой, счет определяется только компетенциями
	far := &models.Agent{Name: "Far", Status: models.AgentStatusAvailable, Latitude: 15.6937, Longitude: -17.4441, Skills: []string{"sécurité"}}
	farNoSkill := &models.Agent{Name: "FarNoSkill", Status: models.AgentStatusAvailable, Latitude: 15.6937, Longitude: -17.4441, Skills: []string{"technique"}}

	assert.InDelta(t, 0.3, ScoreAgent(incident, far).Score, 0.0001)
	assert.InDelta(t, 0.09, ScoreAgent(incident, farNoSkill).Score, 0.0001)
}

func TestScoreAgent_UnknownIncidentType(t *testing.T) {
	incident := testIncident("Type inconnu")

	// Неизвестный тип деградирует до отсутствия совпадения по компетенциям
	agent := &models.Agent{Name: "Any", Status: models.AgentStatusAvailable, Latitude: 14.6937, Longitude: -17.4441, Skills: []string{"sécurité", "médical", "technique"}}

	scored := ScoreAgent(incident, agent)
	assert.InDelta(t, 0.7*1.0+0.3*0.3, scored.Score, 0.0001)
}

func TestSelectBestAgent_Deterministic(t *testing.T) {
	incident := testIncident("Accident de circulation")
	agents := []*models.Agent{
		{Name: "A", Status: models.AgentStatusAvailable, Latitude: 14.70, Longitude: -17.44, Skills: []string{"médical"}},
		{Name: "B", Status: models.AgentStatusAvailable, Latitude: 14.72, Longitude: -17.40, Skills: []string{"sécurité"}},
		{Name: "C", Status: models.AgentStatusAvailable, Latitude: 14.75, Longitude: -17.39, Skills: []string{"technique"}},
	}

	first := SelectBestAgent(incident, agents)
	require.NotNil(t, first)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first, SelectBestAgent(incident, agents))
	}
}

func TestSelectBestAgent_TieBreaksOnInputOrder(t *testing.T) {
	incident := testIncident("Incident de sécurité")

	// Два идентичных кандидата: при равных счетах побеждает первый по порядку
	agents := []*models.Agent{
		{Name: "First", Status: models.AgentStatusAvailable, Latitude: 14.6937, Longitude: -17.4441, Skills: []string{"sécurité"}},
		{Name: "Second", Status: models.AgentStatusAvailable, Latitude: 14.6937, Longitude: -17.4441, Skills: []string{"sécurité"}},
	}

	best := SelectBestAgent(incident, agents)
	require.NotNil(t, best)
	assert.Equal(t, "First", best.Name)
}
