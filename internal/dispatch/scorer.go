package dispatch

import (
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/shenikar/incident_dispatch_system/pkg/geo"
)

// Веса составляющих итогового счета. Близость агента важнее компетенций:
// она напрямую определяет время реакции, компетенции лишь корректируют выбор.
const (
	distanceWeight = 0.7
	skillWeight    = 0.3

	// Дистанция, после которой близость перестает давать вклад в счет
	maxScoredDistanceKm = 10.0

	// Счет за компетенции не обнуляется: близкий агент без нужных навыков
	// лучше, чем никакой
	skillScoreMatch = 1.0
	skillScoreMiss  = 0.3
)

// ScoredCandidate - кандидат на назначение с рассчитанным счетом.
// Живет только в рамках одного прохода скоринга.
type ScoredCandidate struct {
	Agent    *models.Agent
	Distance float64
	Score    float64
}

// ScoreAgent рассчитывает счет агента для инцидента.
// distanceScore линейно убывает от 1.0 (в точке инцидента) до 0 на 10 км
// и дальше не уходит в минус. Неизвестный тип инцидента означает отсутствие
// совпадения по компетенциям, а не ошибку.
func ScoreAgent(incident *models.Incident, agent *models.Agent) ScoredCandidate {
	distance := geo.Distance(incident.Latitude, incident.Longitude, agent.Latitude, agent.Longitude)

	distanceScore := (maxScoredDistanceKm - distance) / maxScoredDistanceKm
	if distanceScore < 0 {
		distanceScore = 0
	}

	skillScore := skillScoreMiss
	if required, ok := models.RequiredSkills(incident.Type); ok && agent.HasAnySkill(required) {
		skillScore = skillScoreMatch
	}

	return ScoredCandidate{
		Agent:    agent,
		Distance: distance,
		Score:    distanceWeight*distanceScore + skillWeight*skillScore,
	}
}

// SelectBestAgent выбирает лучшего доступного агента для инцидента.
// Возвращает nil, если доступных агентов нет — это штатный пустой результат,
// а не ошибка. При равных счетах побеждает первый кандидат в порядке
// входного списка, выбор детерминирован.
func SelectBestAgent(incident *models.Incident, agents []*models.Agent) *models.Agent {
	var best *ScoredCandidate

	for _, agent := range agents {
		if !agent.IsAvailable() {
			continue
		}

		candidate := ScoreAgent(incident, agent)
		if best == nil || candidate.Score > best.Score {
			best = &candidate
		}
	}

	if best == nil {
		return nil
	}
	return best.Agent
}
