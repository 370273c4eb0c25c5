package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/service"
)

// CalendarRefresher пересчитывает снимок календаря
type CalendarRefresher interface {
	Refresh(ctx context.Context) (*service.Snapshot, error)
}

// IdleEvictor удаляет давно неактивные состояния чатов
type IdleEvictor interface {
	EvictIdle(maxIdle time.Duration) int
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	calendar CalendarRefresher
	evictor  IdleEvictor
	maxIdle  time.Duration
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	done     chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(calendar CalendarRefresher, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		calendar: calendar,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// WithStateEviction включает очистку состояний чатов на каждом тике
func (s *Scheduler) WithStateEviction(evictor IdleEvictor, maxIdle time.Duration) *Scheduler {
	s.evictor = evictor
	s.maxIdle = maxIdle
	return s
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("refresh_interval", s.interval))

	go s.runRefreshTask(ctx)
}

// Stop останавливает фоновые задачи и ждёт завершения текущего пересчёта
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
	<-s.done
}

// runRefreshTask периодически пересчитывает календарь
func (s *Scheduler) runRefreshTask(ctx context.Context) {
	defer close(s.done)

	// Первый запуск сразу при старте, чтобы бот и API не ждали первого запроса
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh(ctx)
			s.evictIdle()
		case <-s.stopChan:
			s.logger.Info("Calendar refresh task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Calendar refresh task cancelled")
			return
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	snap, err := s.calendar.Refresh(ctx)
	if err != nil {
		s.logger.Error("Failed to refresh calendar", zap.Error(err))
		return
	}

	s.logger.Debug("Calendar refreshed",
		zap.String("snapshot_id", snap.ID.String()),
		zap.Int("entries", len(snap.Entries)))
}

func (s *Scheduler) evictIdle() {
	if s.evictor == nil {
		return
	}
	if n := s.evictor.EvictIdle(s.maxIdle); n > 0 {
		s.logger.Info("🧹 Evicted idle chat states", zap.Int("count", n))
	}
}
