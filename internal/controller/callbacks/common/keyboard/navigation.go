package keyboard

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// Префиксы callback data навигации по календарю
const (
	DayPrefix  = "day:"  // day:2024-10-07
	WeekPrefix = "week:" // week:2024-10-07
	Today      = "today"
	Noop       = "noop"
)

const dateLayout = "2006-01-02"

// DayCallback callback data для открытия дня
func DayCallback(date time.Time) string {
	return DayPrefix + date.Format(dateLayout)
}

// WeekCallback callback data для картинки недели, содержащей date
func WeekCallback(date time.Time) string {
	return WeekPrefix + date.Format(dateLayout)
}

// DayNavigation кнопки под агендой дня: соседние дни, сегодня и неделя
func DayNavigation(date time.Time) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button("◀", DayCallback(date.AddDate(0, 0, -1))),
			Button("Сегодня", Today),
			Button("▶", DayCallback(date.AddDate(0, 0, 1))),
		).
		Row(Button("🗓 Неделя", WeekCallback(date))).
		Build()
}

// WeekNavigation кнопки под картинкой недели
func WeekNavigation(date time.Time) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button("◀ Неделя", WeekCallback(date.AddDate(0, 0, -7))),
			Button("Неделя ▶", WeekCallback(date.AddDate(0, 0, 7))),
		).
		Row(Button("📅 День", DayCallback(date))).
		Build()
}
