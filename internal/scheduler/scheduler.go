package scheduler

import (
	"sync"
	"time"
)

// Token идентифицирует запланированный вызов и позволяет его отменить
type Token int64

// Scheduler определяет контракт отложенного выполнения.
// Движок назначений и цикл автодетекции зависят только от этого контракта,
// а не от конкретного таймерного API.
type Scheduler interface {
	// Schedule планирует однократный вызов fn через delay
	Schedule(delay time.Duration, fn func()) Token
	// Cancel отменяет запланированный вызов. Отмена уже сработавшего
	// или неизвестного токена — no-op.
	Cancel(token Token)
	// CancelAll отменяет все еще не сработавшие вызовы
	CancelAll()
}

// TimerScheduler - реализация Scheduler на системных таймерах
type TimerScheduler struct {
	mu     sync.Mutex
	nextID Token
	timers map[Token]*time.Timer
}

// NewTimerScheduler создает новый TimerScheduler
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[Token]*time.Timer),
	}
}

// Schedule планирует однократный вызов fn через delay
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	token := s.nextID

	s.timers[token] = time.AfterFunc(delay, func() {
		// Сначала снимаем таймер с учета, чтобы Cancel после срабатывания был no-op
		s.mu.Lock()
		delete(s.timers, token)
		s.mu.Unlock()

		fn()
	})

	return token
}

// Cancel отменяет запланированный вызов
func (s *TimerScheduler) Cancel(token Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[token]; ok {
		timer.Stop()
		delete(s.timers, token)
	}
}

// CancelAll отменяет все запланированные вызовы. Используется при остановке
// сессии, чтобы отложенные фазы и автоназначения не срабатывали после отмены.
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, timer := range s.timers {
		timer.Stop()
		delete(s.timers, token)
	}
}
