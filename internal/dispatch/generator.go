package dispatch

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/models"
)

// Place - именованная точка газетира для синтетической генерации
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Газетир: фиксированный список мест с известными координатами
var senegalGazetteer = []Place{
	{Name: "Dakar Plateau", Latitude: 14.6937, Longitude: -17.4441},
	{Name: "Mbour", Latitude: 14.4199, Longitude: -16.9619},
	{Name: "Rufisque", Latitude: 14.7128, Longitude: -17.2695},
	{Name: "Thiès", Latitude: 14.7886, Longitude: -16.9262},
	{Name: "Kaolack", Latitude: 14.1522, Longitude: -16.0725},
	{Name: "Saint-Louis", Latitude: 16.0183, Longitude: -16.4897},
	{Name: "Pikine", Latitude: 14.7549, Longitude: -17.3964},
	{Name: "Touba", Latitude: 14.8667, Longitude: -15.8833},
}

// Разброс координат вокруг точки газетира, примерно +-1 км
const coordinateJitter = 0.01

// Количество камер наблюдения в симуляции
const cameraCount = 20

var urgencies = []string{models.UrgencyUrgent, models.UrgencyMedium, models.UrgencyLow}

// Generator производит синтетические инциденты для симуляции автодетекции
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator создает генератор с заданным источником случайности.
// Источник передается снаружи, чтобы в тестах генерация была воспроизводимой.
func NewGenerator(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate создает новый синтетический инцидент: случайное место из газетира
// со смещением, случайный тип из каталога, случайная срочность и источник
// camera с фиктивным идентификатором камеры. ID и метка времени уникальны
// в рамках процесса.
func (g *Generator) Generate() *models.Incident {
	g.mu.Lock()
	defer g.mu.Unlock()

	place := senegalGazetteer[g.rnd.Intn(len(senegalGazetteer))]
	types := models.IncidentTypes()
	incidentType := types[g.rnd.Intn(len(types))]

	return &models.Incident{
		ID:        uuid.New(),
		Type:      incidentType.Name,
		Location:  place.Name,
		Urgency:   urgencies[g.rnd.Intn(len(urgencies))],
		Status:    models.IncidentStatusPending,
		Source:    models.SourceCamera,
		CameraID:  fmt.Sprintf("CAM-%d", g.rnd.Intn(cameraCount)+1),
		Latitude:  place.Latitude + (g.rnd.Float64()-0.5)*2*coordinateJitter,
		Longitude: place.Longitude + (g.rnd.Float64()-0.5)*2*coordinateJitter,
		CreatedAt: time.Now(),
	}
}

// Gazetteer возвращает копию газетира
func Gazetteer() []Place {
	places := make([]Place, len(senegalGazetteer))
	copy(places, senegalGazetteer)
	return places
}
