package callbacktypes

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/service"
)

// CalendarReader часть CalendarService, нужная боту
type CalendarReader interface {
	Day(ctx context.Context, date time.Time) ([]model.DisplayOccurrence, error)
	Week(ctx context.Context, date time.Time) (*service.WeekView, error)
	Location() *time.Location
	Now() time.Time
}

// StateManager интерфейс для хранения выбранной даты чата
type StateManager interface {
	SelectedDate(chatID int64) (time.Time, bool)
	SetSelectedDate(chatID int64, date time.Time)
	Clear(chatID int64)
}

// Handler содержит общие зависимости для команд и callback handlers
type Handler struct {
	Calendar     CalendarReader
	StateManager StateManager
	Logger       *zap.Logger
}

// Today начало текущего дня в часовом поясе календаря
func (h *Handler) Today() time.Time {
	now := h.Calendar.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.Calendar.Location())
}

// CurrentDate выбранная дата чата или сегодня
func (h *Handler) CurrentDate(chatID int64) time.Time {
	if date, ok := h.StateManager.SelectedDate(chatID); ok {
		return date
	}
	return h.Today()
}
