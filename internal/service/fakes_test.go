package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

type fakeSlots struct {
	slots []model.ScheduleSlot
	err   error
	calls atomic.Int32
}

func (f *fakeSlots) List(ctx context.Context) ([]model.ScheduleSlot, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.slots, f.err
}

type fakeYears struct {
	year *model.AcademicYear
	err  error
}

func (f *fakeYears) GetActive(ctx context.Context) (*model.AcademicYear, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.year, f.err
}

type fakeItems struct {
	tests       []model.Test
	assignments []model.Assignment
	events      []model.CustomEvent
	err         error
}

func (f *fakeItems) ListTests(ctx context.Context) ([]model.Test, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.tests, f.err
}

func (f *fakeItems) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.assignments, f.err
}

func (f *fakeItems) ListEvents(ctx context.Context) ([]model.CustomEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.events, f.err
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func schoolYear() *model.AcademicYear {
	return &model.AcademicYear{
		ID:        1,
		Name:      "2024/2025",
		StartDate: day(2024, 9, 2),
		EndDate:   day(2024, 12, 29),
		IsActive:  true,
	}
}

// mondayLessons два пересекающихся урока по понедельникам
func mondayLessons() []model.ScheduleSlot {
	return []model.ScheduleSlot{
		{ID: 1, DayOfWeek: 0, StartTime: "09:00:00", EndTime: "09:45:00", CourseName: "Алгебра", ClassroomDisplay: "7А", TeacherFullName: "Анна Орлова"},
		{ID: 2, DayOfWeek: 0, StartTime: "09:30:00", EndTime: "10:15:00", CourseName: "Геометрия", ClassroomDisplay: "7Б", Room: "12"},
	}
}

func sampleItems() *fakeItems {
	return &fakeItems{
		tests: []model.Test{{ID: 4, Title: "Дроби", StartDate: time.Date(2024, 10, 7, 12, 0, 0, 0, time.UTC), CourseName: "Алгебра"}},
	}
}
