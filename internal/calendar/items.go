package calendar

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

// ExpandItems превращает тесты, задания и события во вхождения календаря.
// Порядок: тесты, затем задания, затем события, каждые в порядке входа.
func ExpandItems(tests []model.Test, assignments []model.Assignment, events []model.CustomEvent, loc *time.Location) Result {
	result := Result{Occurrences: []model.Occurrence{}}

	for i := range tests {
		test := &tests[i]
		if err := checkStruct(test); err != nil {
			result.Warnings = append(result.Warnings, Warning{Source: SourceTest, ID: test.ID, Reason: err.Error()})
			continue
		}
		if test.ResolvedEnd().Before(test.StartDate) {
			result.Warnings = append(result.Warnings, Warning{Source: SourceTest, ID: test.ID, Reason: "end_date is before start_date"})
			continue
		}
		result.Occurrences = append(result.Occurrences, testOccurrences(test, loc)...)
	}

	for i := range assignments {
		a := &assignments[i]
		if err := checkStruct(a); err != nil {
			result.Warnings = append(result.Warnings, Warning{Source: SourceAssignment, ID: a.ID, Reason: err.Error()})
			continue
		}
		start := a.DueAt.In(loc)
		result.Occurrences = append(result.Occurrences, model.Occurrence{
			ID:          fmt.Sprintf("assignment-%d", a.ID),
			Title:       a.Title,
			Start:       start,
			End:         start.Add(model.DefaultItemDuration),
			Category:    model.CategoryAssignment,
			SourceID:    a.ID,
			Subject:     a.CourseName,
			Teacher:     a.TeacherUsername,
			Description: a.Description,
		})
	}

	for i := range events {
		ev := &events[i]
		if err := checkStruct(ev); err != nil {
			result.Warnings = append(result.Warnings, Warning{Source: SourceEvent, ID: ev.ID, Reason: err.Error()})
			continue
		}
		start := ev.StartAt.In(loc)
		end := ev.ResolvedEnd().In(loc)
		if end.Before(start) {
			result.Warnings = append(result.Warnings, Warning{Source: SourceEvent, ID: ev.ID, Reason: "end_at is before start_at"})
			continue
		}

		category, known := model.EventCategory(ev.Type)
		if !known {
			result.Warnings = append(result.Warnings, Warning{
				Source: SourceEvent,
				ID:     ev.ID,
				Reason: fmt.Sprintf("unknown event type %q, shown as %s", ev.Type, category),
			})
		}

		result.Occurrences = append(result.Occurrences, model.Occurrence{
			ID:                  fmt.Sprintf("event-%d", ev.ID),
			Title:               ev.Title,
			Start:               start,
			End:                 end,
			Category:            category,
			SourceID:            ev.ID,
			Subject:             ev.Title,
			Description:         ev.Description,
			Location:            ev.Location,
			TargetAudience:      ev.TargetAudience,
			SubjectGroupDisplay: ev.SubjectGroupDisplay,
			TargetUsers:         ev.TargetUsers,
		})
	}

	return result
}

// testOccurrences возвращает одно вхождение для однодневного теста
// или два маркера (начало и конец) для теста, растянутого на несколько дней
func testOccurrences(test *model.Test, loc *time.Location) []model.Occurrence {
	start := test.StartDate.In(loc)
	end := test.ResolvedEnd().In(loc)

	base := model.Occurrence{
		Category:    model.CategoryTest,
		SourceID:    test.ID,
		Subject:     test.CourseName,
		Teacher:     test.TeacherUsername,
		Description: test.Description,
	}

	if SameDay(start, end) {
		single := base
		single.ID = fmt.Sprintf("test-%d", test.ID)
		single.Title = "Тест: " + test.Title
		single.Start = start
		single.End = end
		return []model.Occurrence{single}
	}

	opening := base
	opening.ID = fmt.Sprintf("test-start-%d", test.ID)
	opening.Title = "Начало теста: " + test.Title
	opening.Start = start
	opening.End = start.Add(model.DefaultItemDuration)
	opening.Marker = model.TestMarkerStart

	closing := base
	closing.ID = fmt.Sprintf("test-end-%d", test.ID)
	closing.Title = "Конец теста: " + test.Title
	closing.Start = end
	closing.End = end.Add(model.DefaultItemDuration)
	closing.Marker = model.TestMarkerEnd

	return []model.Occurrence{opening, closing}
}
