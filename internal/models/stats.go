package models

// DispatchStats — статистика работы движка назначений за сессию.
// AvgAssignmentTimeSec и AccuracyPercent задаются конфигурацией и не пересчитываются,
// TotalAutoAssignments монотонно растет при каждом автоматическом назначении.
type DispatchStats struct {
	AvgAssignmentTimeSec int   `json:"avg_assignment_time_sec"`
	TotalAutoAssignments int64 `json:"total_auto_assignments"`
	AccuracyPercent      int   `json:"accuracy_percent"`
}
