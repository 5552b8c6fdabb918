package dispatch

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cameraIDPattern = regexp.MustCompile(`^CAM-([1-9]|1[0-9]|20)$`)

func TestGenerate_Fields(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		incident := g.Generate()

		assert.NotEqual(t, uuid.Nil, incident.ID)
		assert.Equal(t, models.IncidentStatusPending, incident.Status)
		assert.Equal(t, models.SourceCamera, incident.Source)
		assert.Regexp(t, cameraIDPattern, incident.CameraID)
		assert.Contains(t, []string{models.UrgencyUrgent, models.UrgencyMedium, models.UrgencyLow}, incident.Urgency)
		assert.False(t, incident.CreatedAt.IsZero())

		// Тип инцидента должен быть из каталога
		_, known := models.RequiredSkills(incident.Type)
		assert.True(t, known, "unknown incident type %q", incident.Type)
	}
}

func TestGenerate_CoordinatesNearGazetteerPlace(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		incident := g.Generate()

		var place *Place
		for _, p := range Gazetteer() {
			if p.Name == incident.Location {
				place = &p
				break
			}
		}
		require.NotNil(t, place, "location %q is not in the gazetteer", incident.Location)

		// Разброс вокруг точки газетира не превышает +-0.01 градуса
		assert.InDelta(t, place.Latitude, incident.Latitude, coordinateJitter)
		assert.InDelta(t, place.Longitude, incident.Longitude, coordinateJitter)
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 1000; i++ {
		incident := g.Generate()
		assert.False(t, seen[incident.ID], "duplicate incident id %s", incident.ID)
		seen[incident.ID] = true
	}
}
