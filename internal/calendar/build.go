// Package calendar строит календарь из недельного расписания и разовых элементов.
//
// Все функции пакета чистые: они не обращаются к сети или БД и не хранят состояние
// между вызовами, поэтому их можно вызывать конкурентно.
package calendar

import (
	"time"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

// Result вхождения календаря и предупреждения о пропущенных данных
type Result struct {
	Occurrences []model.Occurrence
	Warnings    []Warning
}

// Input все исходные данные календаря
type Input struct {
	Slots       []model.ScheduleSlot
	Year        *model.AcademicYear
	Tests       []model.Test
	Assignments []model.Assignment
	Events      []model.CustomEvent
}

// Build разворачивает расписание и разовые элементы в один список:
// сначала уроки (по слотам и датам), затем тесты, задания и события.
func Build(in Input, now time.Time) Result {
	schedule := Expand(in.Slots, in.Year, now)
	items := ExpandItems(in.Tests, in.Assignments, in.Events, now.Location())

	occurrences := make([]model.Occurrence, 0, len(schedule.Occurrences)+len(items.Occurrences))
	occurrences = append(occurrences, schedule.Occurrences...)
	occurrences = append(occurrences, items.Occurrences...)

	return Result{
		Occurrences: occurrences,
		Warnings:    append(schedule.Warnings, items.Warnings...),
	}
}
