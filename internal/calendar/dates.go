package calendar

import (
	"fmt"
	"time"
)

// DateLayout формат даты в идентификаторах и параметрах запросов
const DateLayout = "2006-01-02"

// civilDate приводит момент времени к полуночи того же календарного дня в loc.
// День берётся из собственной зоны t, а не из loc: даты из БД приходят полуночью UTC.
func civilDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// addDays сдвигает календарный день на n дней и снова берёт его полночь.
// В зонах, где переход на летнее время приходится на 00:00, полночь этого дня
// становится 01:00, но следующий день снова начинается в 00:00.
func addDays(day time.Time, n int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+n, 0, 0, 0, 0, day.Location())
}

// dayKey календарный день в виде YYYYMMDD; сравнивается без учёта часов
type dayKey int

func keyOf(t time.Time) dayKey {
	return dayKey(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

// MondayOf возвращает понедельник недели, в которую попадает date
func MondayOf(date time.Time) time.Time {
	day := civilDate(date, date.Location())
	offset := 1 - int(day.Weekday())
	if day.Weekday() == time.Sunday {
		offset = -6
	}
	return addDays(day, offset)
}

// SameDay проверяет, что a и b приходятся на один календарный день в зоне a
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// mondayBasedWeekday переводит time.Weekday в нумерацию 0 = понедельник .. 6 = воскресенье
func mondayBasedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// clock время суток без даты
type clock struct {
	hour, minute, second int
}

func (c clock) seconds() int {
	return c.hour*3600 + c.minute*60 + c.second
}

func (c clock) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.minute, c.second, 0, day.Location())
}

// parseClock разбирает "HH:MM" или "HH:MM:SS"
func parseClock(s string) (clock, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return clock{hour: t.Hour(), minute: t.Minute(), second: t.Second()}, nil
		}
	}
	return clock{}, fmt.Errorf("invalid time %q", s)
}

// ParseDate разбирает дату YYYY-MM-DD в зоне loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
