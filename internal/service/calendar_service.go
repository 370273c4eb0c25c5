package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Freeeeeet/school_calendar/internal/calendar"
	"github.com/Freeeeeet/school_calendar/internal/model"
)

type ScheduleReader interface {
	List(ctx context.Context) ([]model.ScheduleSlot, error)
}

type AcademicYearReader interface {
	GetActive(ctx context.Context) (*model.AcademicYear, error)
}

type DatedItemReader interface {
	ListTests(ctx context.Context) ([]model.Test, error)
	ListAssignments(ctx context.Context) ([]model.Assignment, error)
	ListEvents(ctx context.Context) ([]model.CustomEvent, error)
}

// Имена источников для логов и поля Snapshot.Failed
const (
	sourceSlots       = "schedule_slots"
	sourceYear        = "academic_year"
	sourceTests       = "tests"
	sourceAssignments = "assignments"
	sourceEvents      = "events"

	sourceCount = 5
)

// Snapshot рассчитанный календарь на момент BuiltAt
type Snapshot struct {
	ID       uuid.UUID
	BuiltAt  time.Time
	Year     *model.AcademicYear
	Entries  []model.Entry
	Warnings []calendar.Warning
	// Failed источники, которые не удалось прочитать и которые считались пустыми
	Failed []string
}

// RangeView записи календаря в полуинтервале [From, To)
type RangeView struct {
	SnapshotID uuid.UUID          `json:"snapshot_id"`
	From       time.Time          `json:"from"`
	To         time.Time          `json:"to"`
	Entries    []model.Entry      `json:"entries"`
	Warnings   []calendar.Warning `json:"warnings"`
}

// WeekView неделя с понедельника по воскресенье
type WeekView struct {
	Start   time.Time
	End     time.Time
	Quarter int
	Entries []model.Entry
}

type CalendarService struct {
	slots  ScheduleReader
	years  AcademicYearReader
	items  DatedItemReader
	loc    *time.Location
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	rebuilds singleflight.Group
}

func NewCalendarService(
	slots ScheduleReader,
	years AcademicYearReader,
	items DatedItemReader,
	loc *time.Location,
	ttl time.Duration,
	logger *zap.Logger,
) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarService{
		slots:  slots,
		years:  years,
		items:  items,
		loc:    loc,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// Location часовой пояс, в котором считаются даты календаря
func (s *CalendarService) Location() *time.Location {
	return s.loc
}

// Now текущее время в часовом поясе календаря
func (s *CalendarService) Now() time.Time {
	return s.now().In(s.loc)
}

// Snapshot возвращает закешированный календарь или пересчитывает его, если истёк TTL.
// Если пересчёт не удался, возвращается предыдущий снимок.
func (s *CalendarService) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	current := s.snapshot
	s.mu.RUnlock()

	if current != nil && (s.ttl <= 0 || s.now().Sub(current.BuiltAt) < s.ttl) {
		return current, nil
	}

	snap, err := s.Refresh(ctx)
	if err != nil {
		if current != nil {
			s.logger.Warn("Calendar refresh failed, serving stale snapshot",
				zap.String("snapshot_id", current.ID.String()),
				zap.Error(err))
			return current, nil
		}
		return nil, err
	}
	return snap, nil
}

// Refresh перечитывает данные и пересчитывает календарь.
// Конкурентные вызовы разделяют один пересчёт.
func (s *CalendarService) Refresh(ctx context.Context) (*Snapshot, error) {
	v, err, _ := s.rebuilds.Do("snapshot", func() (interface{}, error) {
		return s.rebuild(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (s *CalendarService) rebuild(ctx context.Context) (*Snapshot, error) {
	in, failed, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(failed) == sourceCount {
		return nil, ErrSourcesUnavailable
	}

	now := s.Now()
	result := calendar.Build(in, now)

	snap := &Snapshot{
		ID:       uuid.New(),
		BuiltAt:  now,
		Year:     in.Year,
		Entries:  calendar.Group(result.Occurrences),
		Warnings: result.Warnings,
		Failed:   failed,
	}

	for _, w := range snap.Warnings {
		s.logger.Warn("Calendar item skipped",
			zap.String("snapshot_id", snap.ID.String()),
			zap.String("source", w.Source),
			zap.Int64("id", w.ID),
			zap.String("reason", w.Reason))
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.logger.Info("Calendar snapshot rebuilt",
		zap.String("snapshot_id", snap.ID.String()),
		zap.Int("occurrences", len(result.Occurrences)),
		zap.Int("entries", len(snap.Entries)),
		zap.Int("warnings", len(snap.Warnings)),
		zap.Strings("failed_sources", failed))

	return snap, nil
}

// load читает все источники параллельно.
// Ошибка отдельного источника не прерывает загрузку: он считается пустым.
func (s *CalendarService) load(ctx context.Context) (calendar.Input, []string, error) {
	var (
		in       calendar.Input
		failedMu sync.Mutex
		failed   []string
	)

	g, gctx := errgroup.WithContext(ctx)

	// degrade логирует ошибку источника; отмена контекста прерывает всю загрузку
	degrade := func(source string, err error) error {
		if gctx.Err() != nil {
			return gctx.Err()
		}
		s.logger.Warn("Calendar source unavailable", zap.String("source", source), zap.Error(err))
		failedMu.Lock()
		failed = append(failed, source)
		failedMu.Unlock()
		return nil
	}

	g.Go(func() error {
		slots, err := s.slots.List(gctx)
		if err != nil {
			return degrade(sourceSlots, err)
		}
		in.Slots = slots
		return nil
	})
	g.Go(func() error {
		year, err := s.years.GetActive(gctx)
		if err != nil {
			return degrade(sourceYear, err)
		}
		in.Year = year
		return nil
	})
	g.Go(func() error {
		tests, err := s.items.ListTests(gctx)
		if err != nil {
			return degrade(sourceTests, err)
		}
		in.Tests = tests
		return nil
	})
	g.Go(func() error {
		assignments, err := s.items.ListAssignments(gctx)
		if err != nil {
			return degrade(sourceAssignments, err)
		}
		in.Assignments = assignments
		return nil
	})
	g.Go(func() error {
		events, err := s.items.ListEvents(gctx)
		if err != nil {
			return degrade(sourceEvents, err)
		}
		in.Events = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return calendar.Input{}, nil, fmt.Errorf("load calendar sources: %w", err)
	}
	return in, failed, nil
}

// Day возвращает строки дня date (дата берётся в часовом поясе календаря)
func (s *CalendarService) Day(ctx context.Context, date time.Time) ([]model.DisplayOccurrence, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.OccurrencesForDay(date.In(s.loc), snap.Entries), nil
}

// Range возвращает записи, пересекающие [from, to)
func (s *CalendarService) Range(ctx context.Context, from, to time.Time) (*RangeView, error) {
	if !to.After(from) {
		return nil, ErrInvalidRange
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	warnings := snap.Warnings
	if warnings == nil {
		warnings = []calendar.Warning{}
	}
	return &RangeView{
		SnapshotID: snap.ID,
		From:       from,
		To:         to,
		Entries:    calendar.InRange(snap.Entries, from, to),
		Warnings:   warnings,
	}, nil
}

// Week возвращает неделю, содержащую date, и номер четверти для заголовка
func (s *CalendarService) Week(ctx context.Context, date time.Time) (*WeekView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	start := calendar.MondayOf(date.In(s.loc))
	end := start.AddDate(0, 0, 7)

	return &WeekView{
		Start:   start,
		End:     end,
		Quarter: calendar.QuarterOf(date.In(s.loc), snap.Year),
		Entries: calendar.InRange(snap.Entries, start, end),
	}, nil
}
