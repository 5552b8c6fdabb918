package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch_system/internal/config"
	"github.com/shenikar/incident_dispatch_system/internal/dispatch"
	"github.com/shenikar/incident_dispatch_system/internal/models"
	"github.com/shenikar/incident_dispatch_system/internal/notification"
	"github.com/shenikar/incident_dispatch_system/internal/scheduler"
	"github.com/sirupsen/logrus"
)

// Метки текущей активности движка для презентационного слоя.
// Порядок фаз фиксирован: анализ позиций -> расчет дистанции -> оценка
// компетенций -> фиксация назначения.
const (
	activityAnalyzingPosition   = "Analyse des positions..."
	activityCalculatingDistance = "Calcul de la distance optimale..."
	activityEvaluatingSkills    = "Évaluation des compétences..."
	activityCommitted           = "Affectation optimale calculée..."
)

// Имя агента по умолчанию для ручного назначения без указания агента
const defaultManualAgentName = "Agent assigné"

// IncidentRepository определяет контракт хранилища инцидентов и агентов
type IncidentRepository interface {
	AddIncident(incident *models.Incident)
	GetIncident(id uuid.UUID) (*models.Incident, error)
	ListIncidents() []*models.Incident
	// AssignIncident атомарно переводит инцидент в assigned и проставляет
	// агента вместе с источником назначения
	AssignIncident(id uuid.UUID, agentName, assignedBy string) (*models.Incident, error)
	ListAgents() []*models.Agent
}

// EngineState - текущее состояние движка для отображения
type EngineState struct {
	Activity string               `json:"activity"`
	Stats    models.DispatchStats `json:"stats"`
}

// DispatchService определяет контракт движка назначения инцидентов
type DispatchService interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListAgents(ctx context.Context) ([]*models.Agent, error)
	// SubmitReport создает инцидент из ручного сигнала и возвращает
	// трекинговый номер вида ORION-XXXXXX
	SubmitReport(ctx context.Context, incident *models.Incident) (string, error)
	// ManualAssign безусловно назначает агента на инцидент, без скоринга
	// и без проверки существования агента. Повторный вызов перезаписывает
	// предыдущее назначение (last-write-wins).
	ManualAssign(ctx context.Context, incidentID uuid.UUID, agentName string) error
	// AutoAssign запускает асинхронный рабочий процесс назначения
	AutoAssign(ctx context.Context, incidentID uuid.UUID) error
	EngineState(ctx context.Context) (*EngineState, error)
	// StartAutoDetection запускает цикл автодетекции, живущий до отмены ctx
	StartAutoDetection(ctx context.Context)
	// Stop отменяет все отложенные вызовы движка
	Stop()
}

type dispatchService struct {
	repo      IncidentRepository
	notifier  notification.Notifier
	scheduler scheduler.Scheduler
	generator *dispatch.Generator
	logger    *logrus.Logger
	cfg       *config.Config

	mu       sync.Mutex
	activity string
	stats    models.DispatchStats
}

// NewDispatchService создает движок назначения инцидентов
func NewDispatchService(
	repo IncidentRepository,
	notifier notification.Notifier,
	sched scheduler.Scheduler,
	generator *dispatch.Generator,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	return &dispatchService{
		repo:      repo,
		notifier:  notifier,
		scheduler: sched,
		generator: generator,
		logger:    logger,
		cfg:       cfg,
		stats: models.DispatchStats{
			AvgAssignmentTimeSec: cfg.AvgAssignmentTimeSec,
			AccuracyPercent:      cfg.AccuracyPercent,
		},
	}
}

// ListIncidents возвращает текущий список инцидентов
func (s *dispatchService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	return s.repo.ListIncidents(), nil
}

// GetIncident возвращает инцидент по ID
func (s *dispatchService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident, err := s.repo.GetIncident(id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListAgents возвращает текущий состав агентов
func (s *dispatchService) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	return s.repo.ListAgents(), nil
}

// SubmitReport создает инцидент из ручного сигнала
func (s *dispatchService) SubmitReport(ctx context.Context, incident *models.Incident) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "SubmitReport",
		"type":     incident.Type,
		"location": incident.Location,
	})
	log.Info("Attempting to register a manual incident report")

	// Обязательные поля ручного сигнала; при ошибке запись не создается
	if strings.TrimSpace(incident.Location) == "" || strings.TrimSpace(incident.Description) == "" {
		log.Warn("Report validation failed: location and description are required")
		if err := s.notifier.Publish(ctx, notification.Event{
			Severity:    notification.SeverityError,
			Title:       "Veuillez remplir tous les champs obligatoires",
			Description: "Le signalement doit contenir une localisation et une description",
			Timestamp:   time.Now(),
		}); err != nil {
			log.WithError(err).Error("Failed to publish validation notification")
		}
		return "", fmt.Errorf("service: report location and description are required")
	}

	incident.ID = uuid.New()
	incident.TrackingID = fmt.Sprintf("ORION-%06d", time.Now().UnixMilli()%1000000)
	incident.Status = models.IncidentStatusPending
	incident.Source = models.SourceManual
	incident.CreatedAt = time.Now()

	s.repo.AddIncident(incident)

	if err := s.notifier.Publish(ctx, notification.Event{
		Severity:    notification.SeveritySuccess,
		Title:       "Signalement envoyé",
		Description: fmt.Sprintf("Votre signalement a été transmis à l'équipe ORION (%s)", incident.TrackingID),
		Timestamp:   time.Now(),
	}); err != nil {
		log.WithError(err).Error("Failed to publish report notification")
	}

	log.WithField("tracking_id", incident.TrackingID).Info("Manual incident report registered")
	return incident.TrackingID, nil
}

// ManualAssign безусловно назначает агента на инцидент
func (s *dispatchService) ManualAssign(ctx context.Context, incidentID uuid.UUID, agentName string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "ManualAssign",
		"incident_id": incidentID,
	})
	log.Info("Attempting manual assignment")

	if agentName == "" {
		agentName = defaultManualAgentName
	}

	if _, err := s.repo.AssignIncident(incidentID, agentName, models.AssignedByManual); err != nil {
		log.WithError(err).Warn("Failed to assign incident manually")
		return fmt.Errorf("service: could not assign incident: %w", err)
	}

	if err := s.notifier.Publish(ctx, notification.Event{
		Severity:    notification.SeveritySuccess,
		Title:       "Agent assigné avec succès",
		Description: "L'agent a été notifié de cette intervention.",
		Timestamp:   time.Now(),
	}); err != nil {
		log.WithError(err).Error("Failed to publish manual assignment notification")
	}

	log.WithField("agent", agentName).Info("Incident assigned manually")
	return nil
}

// AutoAssign запускает рабочий процесс назначения для инцидента
func (s *dispatchService) AutoAssign(ctx context.Context, incidentID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "AutoAssign",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetIncident(incidentID)
	if err != nil {
		log.WithError(err).Warn("Attempted to auto-assign a non-existent incident")
		return fmt.Errorf("service: incident %s not found for auto assignment: %w", incidentID, err)
	}

	log.Info("Starting assignment workflow")
	s.runAssignmentWorkflow(incident)
	return nil
}

// runAssignmentWorkflow проводит один инцидент через фазы рабочего процесса.
// Паузы между фазами задают темп и настраиваются конфигурацией, порядок фаз
// не меняется. Параллельные запуски для разных инцидентов независимы.
func (s *dispatchService) runAssignmentWorkflow(incident *models.Incident) {
	s.setActivity(activityAnalyzingPosition)

	s.scheduler.Schedule(s.cfg.AnalyzePositionDelay, func() {
		s.setActivity(activityCalculatingDistance)

		s.scheduler.Schedule(s.cfg.CalculateDistanceDelay, func() {
			s.setActivity(activityEvaluatingSkills)

			s.scheduler.Schedule(s.cfg.EvaluateSkillsDelay, func() {
				s.commitAssignment(incident)
			})
		})
	})
}

// commitAssignment завершает рабочий процесс: выбирает лучшего агента и
// фиксирует назначение. Отсутствие доступного агента — штатная ситуация:
// инцидент остается pending без побочных эффектов, без уведомлений.
func (s *dispatchService) commitAssignment(incident *models.Incident) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "commitAssignment",
		"incident_id": incident.ID,
	})

	best := dispatch.SelectBestAgent(incident, s.repo.ListAgents())
	if best == nil {
		log.Info("No available agent, incident stays pending")
		return
	}

	s.setActivity(activityCommitted)

	if _, err := s.repo.AssignIncident(incident.ID, best.Name, models.AssignedByAI); err != nil {
		log.WithError(err).Error("Failed to commit automatic assignment")
		return
	}

	s.mu.Lock()
	s.stats.TotalAutoAssignments++
	s.mu.Unlock()

	if err := s.notifier.Publish(context.Background(), notification.Event{
		Severity:    notification.SeveritySuccess,
		Title:       "Incident affecté automatiquement par IA",
		Description: fmt.Sprintf("%s a été affecté à %s", best.Name, incident.Location),
		Timestamp:   time.Now(),
	}); err != nil {
		log.WithError(err).Error("Failed to publish assignment notification")
	}

	log.WithField("agent", best.Name).Info("Incident assigned automatically")

	s.scheduler.Schedule(s.cfg.ActivityClearDelay, func() {
		s.setActivity("")
	})
}

// EngineState возвращает текущую активность движка и статистику сессии
func (s *dispatchService) EngineState(ctx context.Context) (*EngineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &EngineState{
		Activity: s.activity,
		Stats:    s.stats,
	}, nil
}

// StartAutoDetection запускает цикл автодетекции инцидентов: на каждом тике
// с независимой вероятностью генерируется синтетический инцидент, публикуется
// уведомление о детекции, а через паузу инцидент передается в рабочий процесс
// назначения. Цикл живет до отмены ctx.
func (s *dispatchService) StartAutoDetection(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "StartAutoDetection",
	})
	log.Infof("Starting auto detection loop (interval %s, probability %.2f)",
		s.cfg.DetectionInterval, s.cfg.DetectionProbability)

	go func() {
		ticker := time.NewTicker(s.cfg.DetectionInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping auto detection loop.")
				return
			case <-ticker.C:
				if rand.Float64() >= s.cfg.DetectionProbability {
					continue
				}
				s.detectIncident(ctx)
			}
		}
	}()
}

// detectIncident создает синтетический инцидент и планирует его назначение
func (s *dispatchService) detectIncident(ctx context.Context) {
	incident := s.generator.Generate()
	s.repo.AddIncident(incident)

	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "detectIncident",
		"incident_id": incident.ID,
		"camera_id":   incident.CameraID,
	})
	log.Info("Incident detected automatically")

	if err := s.notifier.Publish(ctx, notification.Event{
		Severity:    notification.SeverityInfo,
		Title:       "🎥 Incident détecté automatiquement par IA",
		Description: fmt.Sprintf("Source : Caméra #%s - %s", incident.CameraID, incident.Location),
		Timestamp:   time.Now(),
	}); err != nil {
		log.WithError(err).Error("Failed to publish detection notification")
	}

	s.scheduler.Schedule(s.cfg.AutoAssignDelay, func() {
		s.runAssignmentWorkflow(incident)
	})
}

// Stop отменяет все отложенные вызовы движка. Уже выполняющаяся фаза не
// прерывается, новые фазы после остановки не планируются.
func (s *dispatchService) Stop() {
	s.scheduler.CancelAll()
	s.logger.Info("Dispatch engine stopped")
}

// setActivity обновляет метку текущей активности движка
func (s *dispatchService) setActivity(activity string) {
	s.mu.Lock()
	s.activity = activity
	s.mu.Unlock()
}
