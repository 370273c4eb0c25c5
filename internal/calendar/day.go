package calendar

import (
	"sort"
	"time"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

const timeLayout = "15:04"

// Заголовки строк дня по категориям; остальные категории показывают собственное название
var dayTitles = map[model.Category]string{
	model.CategorySchedule:   "Урок",
	model.CategoryTest:       "Тест",
	model.CategoryAssignment: "Домашнее Задание",
}

// OccurrencesForDay возвращает строки боковой панели для выбранного дня.
// Группы раскрываются в отдельные уроки; результат отсортирован по времени начала "HH:MM".
func OccurrencesForDay(date time.Time, entries []model.Entry) []model.DisplayOccurrence {
	day := []model.DisplayOccurrence{}

	for _, e := range entries {
		if !SameDay(date, e.Start()) {
			continue
		}
		for _, o := range e.Members() {
			if !SameDay(date, o.Start) {
				continue
			}
			day = append(day, toDisplay(o, date.Location()))
		}
	}

	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Time < day[j].Time
	})
	return day
}

func toDisplay(o model.Occurrence, loc *time.Location) model.DisplayOccurrence {
	title, ok := dayTitles[o.Category]
	if !ok {
		title = o.Title
	}
	teacher := o.TeacherFullName
	if teacher == "" {
		teacher = o.Teacher
	}
	start := o.Start.In(loc)

	return model.DisplayOccurrence{
		ID:                  o.ID,
		Title:               title,
		Date:                start.Format(DateLayout),
		Time:                start.Format(timeLayout),
		EndTime:             o.End.In(loc).Format(timeLayout),
		Subject:             o.Subject,
		Teacher:             teacher,
		Description:         o.Description,
		Category:            o.Category,
		Classroom:           o.Classroom,
		Room:                o.Room,
		Location:            o.Location,
		TargetAudience:      o.TargetAudience,
		SubjectGroupDisplay: o.SubjectGroupDisplay,
		TargetUsers:         o.TargetUsers,
	}
}

// InRange возвращает записи, пересекающие полуинтервал [from, to)
func InRange(entries []model.Entry, from, to time.Time) []model.Entry {
	inRange := []model.Entry{}
	for _, e := range entries {
		if e.Start().Before(to) && e.End().After(from) {
			inRange = append(inRange, e)
		}
	}
	return inRange
}
