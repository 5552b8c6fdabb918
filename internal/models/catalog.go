package models

// IncidentType описывает тип инцидента и требуемые для него компетенции
type IncidentType struct {
	Name   string
	Skills []string
}

// Каталог типов инцидентов. Статичен и только для чтения после инициализации.
var incidentTypeCatalog = []IncidentType{
	{Name: "Attroupement suspect", Skills: []string{"sécurité"}},
	{Name: "Accident de circulation", Skills: []string{"médical", "sécurité"}},
	{Name: "Assistance médicale urgente", Skills: []string{"médical"}},
	{Name: "Incident de sécurité", Skills: []string{"sécurité"}},
	{Name: "Problème technique", Skills: []string{"technique"}},
	{Name: "Contrôle foule", Skills: []string{"sécurité"}},
}

// IncidentTypes возвращает копию каталога типов инцидентов
func IncidentTypes() []IncidentType {
	types := make([]IncidentType, len(incidentTypeCatalog))
	copy(types, incidentTypeCatalog)
	return types
}

// RequiredSkills возвращает компетенции для типа инцидента.
// Неизвестный тип трактуется как тип без требований (ok == false).
func RequiredSkills(incidentType string) ([]string, bool) {
	for _, t := range incidentTypeCatalog {
		if t.Name == incidentType {
			return t.Skills, true
		}
	}
	return nil, false
}
