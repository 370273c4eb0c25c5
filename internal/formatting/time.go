package formatting

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Родительный падеж для дат вида "7 октября"
var monthNamesGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var weekdayNames = [...]string{
	"Воскресенье", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота",
}

var weekdayShortNames = [...]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatTime форматирует только время
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatTimeRange форматирует диапазон времени
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s-%s", start.Format("15:04"), end.Format("15:04"))
}

// FormatDayTitle "Понедельник, 7 октября"
func FormatDayTitle(t time.Time) string {
	return fmt.Sprintf("%s, %d %s", WeekdayName(t.Weekday()), t.Day(), monthNamesGenitive[t.Month()-1])
}

// MonthName возвращает название месяца на русском
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// WeekdayName возвращает название дня недели на русском
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// WeekdayShortName возвращает краткое название дня недели на русском
func WeekdayShortName(d time.Weekday) string {
	return weekdayShortNames[d]
}

// FormatQuarter "2 четверть"; пустая строка для 0
func FormatQuarter(q int) string {
	if q == 0 {
		return ""
	}
	return fmt.Sprintf("%d четверть", q)
}
