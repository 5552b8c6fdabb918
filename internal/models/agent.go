package models

// Статусы доступности агента
const (
	AgentStatusAvailable = "available"
	AgentStatusBusy      = "busy"
	AgentStatusOffline   = "offline"
)

// Agent представляет полевого агента с позицией и набором компетенций
type Agent struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Location  string   `json:"location"`
	Phone     string   `json:"phone,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Skills    []string `json:"skills"`
}

// IsAvailable сообщает, может ли агент принять новое назначение
func (a *Agent) IsAvailable() bool {
	return a.Status == AgentStatusAvailable
}

// HasAnySkill проверяет пересечение компетенций агента с требуемым набором
func (a *Agent) HasAnySkill(required []string) bool {
	for _, req := range required {
		for _, skill := range a.Skills {
			if skill == req {
				return true
			}
		}
	}
	return false
}
