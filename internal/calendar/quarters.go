package calendar

import (
	"time"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

// QuarterRange диапазон дат одной четверти, обе границы включительно
type QuarterRange struct {
	Number int
	Start  time.Time
	End    time.Time
}

// Contains проверяет попадание даты в четверть
func (q QuarterRange) Contains(day time.Time) bool {
	key := keyOf(day)
	return key >= keyOf(q.Start) && key <= keyOf(q.End)
}

// Quarters делит учебный год на четыре смежные четверти, начиная со start_date.
// Каждая четверть длится weeks*7 дней, следующая начинается на следующий день.
func Quarters(year *model.AcademicYear, loc *time.Location) []QuarterRange {
	weeks := year.QuarterWeeks()
	quarters := make([]QuarterRange, 0, len(weeks))

	current := civilDate(year.StartDate, loc)
	for i, w := range weeks {
		end := addDays(current, w*7-1)
		quarters = append(quarters, QuarterRange{Number: i + 1, Start: current, End: end})
		current = addDays(end, 1)
	}
	return quarters
}

// quarterFor возвращает номер четверти для даты или 0, если дата вне всех четвертей
func quarterFor(day time.Time, quarters []QuarterRange) int {
	for _, q := range quarters {
		if q.Contains(day) {
			return q.Number
		}
	}
	return 0
}

// QuarterOf возвращает номер четверти для даты; 0 если года нет или дата вне четвертей
func QuarterOf(date time.Time, year *model.AcademicYear) int {
	if year == nil {
		return 0
	}
	loc := date.Location()
	return quarterFor(civilDate(date, loc), Quarters(year, loc))
}
