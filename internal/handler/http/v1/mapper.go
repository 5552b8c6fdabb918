package v1

import (
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/shenikar/incident_dispatch_system/internal/service"
)

// ReportToIncidentModel преобразует DTO ручного сигнала в доменную модель.
// Служебные поля (ID, трекинговый номер, статус, источник) проставляет сервис.
func ReportToIncidentModel(dto CreateReportRequest) *models.Incident {
	return &models.Incident{
		Type:        dto.Type,
		Urgency:     dto.Urgency,
		Location:    dto.Location,
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		TrackingID:  model.TrackingID,
		Type:        model.Type,
		Description: model.Description,
		Location:    model.Location,
		Urgency:     model.Urgency,
		Status:      model.Status,
		Agent:       model.Agent,
		AssignedBy:  model.AssignedBy,
		Source:      model.Source,
		CameraID:    model.CameraID,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToAgentResponse преобразует модель агента в DTO для ответа
func ModelToAgentResponse(model *models.Agent) *AgentResponse {
	return &AgentResponse{
		ID:        model.ID,
		Name:      model.Name,
		Status:    model.Status,
		Location:  model.Location,
		Phone:     model.Phone,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Skills:    model.Skills,
	}
}

// ModelsToAgentResponses преобразует слайс моделей агентов в слайс DTO
func ModelsToAgentResponses(models []*models.Agent) []*AgentResponse {
	responses := make([]*AgentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAgentResponse(model)
	}
	return responses
}

// EngineStateToResponse преобразует состояние движка в DTO для ответа
func EngineStateToResponse(state *service.EngineState) *EngineStateResponse {
	return &EngineStateResponse{
		Activity: state.Activity,
		Stats: StatsResponse{
			AvgAssignmentTimeSec: state.Stats.AvgAssignmentTimeSec,
			TotalAutoAssignments: state.Stats.TotalAutoAssignments,
			AccuracyPercent:      state.Stats.AccuracyPercent,
		},
	}
}
