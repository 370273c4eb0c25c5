package common

import (
	"errors"

	"github.com/Freeeeeet/school_calendar/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, service.ErrSourcesUnavailable):
		return "⏳ Календарь временно недоступен. Попробуйте позже"
	default:
		return "❌ Произошла ошибка"
	}
}
