package calendar

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func intPtr(v int) *int {
	return &v
}

func ids(occurrences []model.Occurrence) []string {
	out := make([]string, 0, len(occurrences))
	for _, o := range occurrences {
		out = append(out, o.ID)
	}
	return out
}

func mondaySlot(id int64) model.ScheduleSlot {
	return model.ScheduleSlot{
		ID:        id,
		DayOfWeek: 0,
		StartTime: "09:00:00",
		EndTime:   "09:45:00",
	}
}

func TestExpand_EmptyInput(t *testing.T) {
	res := Expand(nil, nil, time.Now())

	assert.Empty(t, res.Occurrences)
	assert.NotNil(t, res.Occurrences)
	assert.Empty(t, res.Warnings)
}

func TestExpand_HolidayExclusion(t *testing.T) {
	year := &model.AcademicYear{
		ID:                 1,
		StartDate:          date(2024, 9, 2),
		EndDate:            date(2024, 12, 31),
		AutumnHolidayStart: datePtr(2024, 10, 28),
		AutumnHolidayEnd:   datePtr(2024, 11, 3),
		// Зимние каникулы без окончания игнорируются
		WinterHolidayStart: datePtr(2024, 12, 23),
	}

	res := Expand([]model.ScheduleSlot{mondaySlot(1)}, year, date(2024, 10, 1))
	got := ids(res.Occurrences)

	assert.NotContains(t, got, "schedule-1-2024-10-28")
	assert.Contains(t, got, "schedule-1-2024-10-21")
	assert.Contains(t, got, "schedule-1-2024-11-04")
	assert.Contains(t, got, "schedule-1-2024-12-23")
	assert.Contains(t, got, "schedule-1-2024-12-30")
	// 18 понедельников в окне минус один на каникулах
	assert.Len(t, got, 17)
}

// В Сантьяго летнее время начинается 8 сентября 2024 в 00:00, полночь этого дня не существует
func TestExpand_MidnightDSTTransition(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	year := &model.AcademicYear{
		ID:                 1,
		StartDate:          date(2024, 9, 2),
		EndDate:            date(2024, 12, 31),
		AutumnHolidayStart: datePtr(2024, 10, 14),
		AutumnHolidayEnd:   datePtr(2024, 10, 18),
	}
	monday := mondaySlot(1)
	monday.EndDate = datePtr(2024, 10, 28)
	slots := []model.ScheduleSlot{
		monday,
		{ID: 2, DayOfWeek: 4, StartTime: "10:00", EndTime: "10:45"},
		{ID: 3, DayOfWeek: 6, StartTime: "11:00", EndTime: "11:45", Quarter: intPtr(1)},
	}

	res := Expand(slots, year, time.Date(2024, 10, 1, 12, 0, 0, 0, santiago))
	require.Empty(t, res.Warnings)
	got := ids(res.Occurrences)

	// день окончания слота остаётся включённым
	assert.Contains(t, got, "schedule-1-2024-10-28")
	assert.NotContains(t, got, "schedule-1-2024-11-04")
	assert.NotContains(t, got, "schedule-1-2024-10-14")

	// последний день каникул исключён
	assert.NotContains(t, got, "schedule-2-2024-10-18")
	assert.Contains(t, got, "schedule-2-2024-10-11")
	assert.Contains(t, got, "schedule-2-2024-10-25")

	// последний день первой четверти (воскресенье 27 октября) ещё в четверти
	assert.Contains(t, got, "schedule-3-2024-09-08")
	assert.Contains(t, got, "schedule-3-2024-10-27")
	assert.NotContains(t, got, "schedule-3-2024-11-03")

	for _, o := range res.Occurrences {
		if o.SourceID == 2 {
			assert.Equal(t, 10, o.Start.Hour(), o.ID)
			assert.Equal(t, 0, o.Start.Minute(), o.ID)
		}
	}
}

func TestQuarters_MidnightDSTTransition(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	year := &model.AcademicYear{StartDate: date(2024, 9, 2), EndDate: date(2025, 6, 30)}
	lastDayQ1 := time.Date(2024, 10, 27, 0, 0, 0, 0, santiago)

	assert.Equal(t, 1, QuarterOf(lastDayQ1, year))
	assert.Equal(t, 2, QuarterOf(lastDayQ1.AddDate(0, 0, 1), year))
}

func TestExpand_WeekendsIncluded(t *testing.T) {
	slot := model.ScheduleSlot{ID: 7, DayOfWeek: 5, StartTime: "10:00", EndTime: "11:00"}

	// Среда: окно с понедельника 2024-10-14 до 2025-01-14
	res := Expand([]model.ScheduleSlot{slot}, nil, time.Date(2024, 10, 16, 15, 30, 0, 0, time.UTC))

	require.Len(t, res.Occurrences, 13)
	assert.Equal(t, "schedule-7-2024-10-19", res.Occurrences[0].ID)
	assert.Equal(t, "schedule-7-2025-01-11", res.Occurrences[12].ID)
	for _, o := range res.Occurrences {
		assert.Equal(t, time.Saturday, o.Start.Weekday())
	}
}

func TestExpand_QuarterGating(t *testing.T) {
	year := &model.AcademicYear{
		ID:        1,
		StartDate: date(2024, 9, 1),
		EndDate:   date(2025, 5, 31),
	}
	slot := mondaySlot(3)
	slot.Quarter = intPtr(2)

	res := Expand([]model.ScheduleSlot{slot}, year, date(2024, 9, 1))

	// Вторая четверть: 2024-10-27 .. 2024-12-21
	require.Len(t, res.Occurrences, 8)
	assert.Equal(t, "schedule-3-2024-10-28", res.Occurrences[0].ID)
	assert.Equal(t, "schedule-3-2024-12-16", res.Occurrences[7].ID)
	for _, o := range res.Occurrences {
		assert.False(t, o.Date.Before(date(2024, 10, 27)))
		assert.False(t, o.Date.After(date(2024, 12, 21)))
	}
}

func TestExpand_QuarterIgnoredWithoutYear(t *testing.T) {
	slot := mondaySlot(3)
	slot.Quarter = intPtr(4)

	res := Expand([]model.ScheduleSlot{slot}, nil, time.Date(2024, 10, 16, 0, 0, 0, 0, time.UTC))

	// 2024-10-14 .. 2025-01-14: 14 понедельников
	assert.Len(t, res.Occurrences, 14)
}

func TestExpand_FallbackWindowFromSunday(t *testing.T) {
	slot := model.ScheduleSlot{ID: 2, DayOfWeek: 0, StartTime: "08:00", EndTime: "08:45"}

	res := Expand([]model.ScheduleSlot{slot}, nil, time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC))

	require.NotEmpty(t, res.Occurrences)
	assert.Equal(t, "schedule-2-2024-10-14", res.Occurrences[0].ID)
}

func TestExpand_SlotDateRange(t *testing.T) {
	year := &model.AcademicYear{StartDate: date(2024, 9, 2), EndDate: date(2024, 12, 31)}
	slot := mondaySlot(4)
	slot.StartDate = datePtr(2024, 10, 1)
	slot.EndDate = datePtr(2024, 10, 21)

	res := Expand([]model.ScheduleSlot{slot}, year, date(2024, 9, 2))

	assert.Equal(t, []string{
		"schedule-4-2024-10-07",
		"schedule-4-2024-10-14",
		"schedule-4-2024-10-21",
	}, ids(res.Occurrences))
}

func TestExpand_OccurrenceFields(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	year := &model.AcademicYear{StartDate: date(2024, 9, 2), EndDate: date(2024, 9, 8)}
	slot := model.ScheduleSlot{
		ID:               11,
		DayOfWeek:        2,
		StartTime:        "13:10:00",
		EndTime:          "13:55:00",
		Room:             "204",
		CourseName:       "Алгебра",
		ClassroomDisplay: "7А",
		TeacherFullName:  "Мария Петровна  Иванова",
	}

	res := Expand([]model.ScheduleSlot{slot}, year, time.Date(2024, 9, 2, 8, 0, 0, 0, loc))

	require.Len(t, res.Occurrences, 1)
	o := res.Occurrences[0]
	assert.Equal(t, "schedule-11-2024-09-04", o.ID)
	assert.Equal(t, "Алгебра • 7А • Каб. 204", o.Title)
	assert.Equal(t, model.CategorySchedule, o.Category)
	assert.True(t, o.Start.Equal(time.Date(2024, 9, 4, 13, 10, 0, 0, loc)))
	assert.True(t, o.End.Equal(time.Date(2024, 9, 4, 13, 55, 0, 0, loc)))
	assert.Equal(t, "Иванова", o.Teacher)
	assert.Equal(t, "Мария Петровна  Иванова", o.TeacherFullName)
	assert.Equal(t, int64(11), o.SourceID)
}

func TestExpand_TeacherFallsBackToUsername(t *testing.T) {
	year := &model.AcademicYear{StartDate: date(2024, 9, 2), EndDate: date(2024, 9, 2)}
	slot := mondaySlot(5)
	slot.TeacherUsername = "ivanova"

	res := Expand([]model.ScheduleSlot{slot}, year, date(2024, 9, 2))

	require.Len(t, res.Occurrences, 1)
	assert.Equal(t, "ivanova", res.Occurrences[0].Teacher)
	assert.Equal(t, "Предмет", res.Occurrences[0].Subject)
}

func TestExpand_MalformedSlotsSkipped(t *testing.T) {
	year := &model.AcademicYear{StartDate: date(2024, 9, 2), EndDate: date(2024, 9, 8)}
	slots := []model.ScheduleSlot{
		{ID: 1, DayOfWeek: 0, StartTime: "", EndTime: "10:00"},
		{ID: 2, DayOfWeek: 0, StartTime: "9 утра", EndTime: "10:00"},
		{ID: 3, DayOfWeek: 0, StartTime: "10:00", EndTime: "09:00"},
		{ID: 4, DayOfWeek: 9, StartTime: "09:00", EndTime: "10:00"},
		{ID: 5, DayOfWeek: 0, StartTime: "09:00", EndTime: "10:00", Quarter: intPtr(7)},
		mondaySlot(6),
	}

	res := Expand(slots, year, date(2024, 9, 2))

	assert.Equal(t, []string{"schedule-6-2024-09-02"}, ids(res.Occurrences))
	require.Len(t, res.Warnings, 5)
	for i, w := range res.Warnings {
		assert.Equal(t, SourceSlot, w.Source)
		assert.Equal(t, int64(i+1), w.ID)
		assert.NotEmpty(t, w.Reason)
	}
}

func TestExpand_YearEndingBeforeStart(t *testing.T) {
	year := &model.AcademicYear{ID: 9, StartDate: date(2024, 9, 2), EndDate: date(2024, 8, 1)}

	res := Expand([]model.ScheduleSlot{mondaySlot(1)}, year, date(2024, 9, 2))

	assert.Empty(t, res.Occurrences)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, SourceAcademicYear, res.Warnings[0].Source)
}

func TestQuarters(t *testing.T) {
	year := &model.AcademicYear{
		StartDate:     date(2024, 9, 1),
		EndDate:       date(2025, 5, 31),
		Quarter3Weeks: intPtr(11),
	}

	qs := Quarters(year, time.UTC)

	require.Len(t, qs, 4)
	assert.Equal(t, date(2024, 10, 26), qs[0].End)
	assert.Equal(t, date(2024, 10, 27), qs[1].Start)
	assert.Equal(t, date(2024, 12, 21), qs[1].End)
	assert.Equal(t, date(2024, 12, 22), qs[2].Start)
	assert.Equal(t, date(2025, 3, 8), qs[2].End)
	assert.Equal(t, date(2025, 3, 9), qs[3].Start)

	assert.Equal(t, 2, QuarterOf(date(2024, 11, 15), year))
	assert.Equal(t, 0, QuarterOf(date(2025, 5, 20), year))
	assert.Equal(t, 0, QuarterOf(date(2024, 11, 15), nil))
}

func TestMondayOf(t *testing.T) {
	assert.Equal(t, date(2024, 10, 14), MondayOf(date(2024, 10, 14)))
	assert.Equal(t, date(2024, 10, 14), MondayOf(time.Date(2024, 10, 17, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, date(2024, 10, 14), MondayOf(date(2024, 10, 20)))
}
