package repository

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/shenikar/incident_dispatch_system/internal/service"
)

// MemoryRepository - хранилище инцидентов и агентов в памяти процесса.
// Начальные данные поступают при старте сессии, состав агентов движок
// не изменяет.
type MemoryRepository struct {
	mu        sync.RWMutex
	incidents []*models.Incident
	agents    []*models.Agent
}

// NewMemoryRepository создает хранилище с начальными данными
func NewMemoryRepository(incidents []*models.Incident, agents []*models.Agent) service.IncidentRepository {
	repo := &MemoryRepository{
		incidents: make([]*models.Incident, 0, len(incidents)),
		agents:    make([]*models.Agent, 0, len(agents)),
	}
	repo.incidents = append(repo.incidents, incidents...)
	repo.agents = append(repo.agents, agents...)
	return repo
}

// AddIncident добавляет инцидент в начало списка (новые выше)
func (r *MemoryRepository) AddIncident(incident *models.Incident) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.incidents = append([]*models.Incident{incident}, r.incidents...)
}

// GetIncident возвращает копию инцидента по ID
func (r *MemoryRepository) GetIncident(id uuid.UUID) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, incident := range r.incidents {
		if incident.ID == id {
			copied := *incident
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("incident with id %s not found", id)
}

// ListIncidents возвращает копии всех инцидентов в порядке хранения
func (r *MemoryRepository) ListIncidents() []*models.Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*models.Incident, 0, len(r.incidents))
	for _, incident := range r.incidents {
		copied := *incident
		incidents = append(incidents, &copied)
	}
	return incidents
}

// AssignIncident атомарно назначает агента на инцидент: статус, имя агента
// и источник назначения выставляются под одной блокировкой, наполовину
// обновленный инцидент снаружи не виден. Повторное назначение перезаписывает
// предыдущее (last-write-wins).
func (r *MemoryRepository) AssignIncident(id uuid.UUID, agentName, assignedBy string) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, incident := range r.incidents {
		if incident.ID == id {
			incident.Status = models.IncidentStatusAssigned
			incident.Agent = agentName
			incident.AssignedBy = assignedBy

			copied := *incident
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("incident with id %s not found for assignment", id)
}

// ListAgents возвращает состав агентов. Агенты доступны только для чтения,
// поэтому отдаются без копирования.
func (r *MemoryRepository) ListAgents() []*models.Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents := make([]*models.Agent, len(r.agents))
	copy(agents, r.agents)
	return agents
}
