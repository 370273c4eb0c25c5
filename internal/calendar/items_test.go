package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestExpandItems_MultiDayTestSplitsIntoMarkers(t *testing.T) {
	end := at(2024, 10, 3, 9, 0)
	tests := []model.Test{{
		ID:        5,
		Title:     "Контрольная",
		StartDate: at(2024, 10, 1, 9, 0),
		EndDate:   &end,
	}}

	res := ExpandItems(tests, nil, nil, time.UTC)

	require.Len(t, res.Occurrences, 2)
	opening, closing := res.Occurrences[0], res.Occurrences[1]

	assert.Equal(t, "test-start-5", opening.ID)
	assert.Equal(t, model.TestMarkerStart, opening.Marker)
	assert.Equal(t, at(2024, 10, 1, 9, 0), opening.Start)
	assert.Equal(t, at(2024, 10, 1, 10, 0), opening.End)

	assert.Equal(t, "test-end-5", closing.ID)
	assert.Equal(t, model.TestMarkerEnd, closing.Marker)
	assert.Equal(t, at(2024, 10, 3, 9, 0), closing.Start)
	assert.Equal(t, at(2024, 10, 3, 10, 0), closing.End)

	for _, o := range res.Occurrences {
		assert.Equal(t, model.CategoryTest, o.Category)
	}
}

func TestExpandItems_SameDayTest(t *testing.T) {
	end := at(2024, 10, 1, 11, 30)
	tests := []model.Test{
		{ID: 1, Title: "Диктант", StartDate: at(2024, 10, 1, 10, 0), EndDate: &end},
		{ID: 2, Title: "Тест без окончания", StartDate: at(2024, 10, 2, 12, 0)},
	}

	res := ExpandItems(tests, nil, nil, time.UTC)

	require.Len(t, res.Occurrences, 2)
	assert.Equal(t, "test-1", res.Occurrences[0].ID)
	assert.Equal(t, "Тест: Диктант", res.Occurrences[0].Title)
	assert.Equal(t, end, res.Occurrences[0].End)
	assert.Equal(t, "test-2", res.Occurrences[1].ID)
	assert.Equal(t, at(2024, 10, 2, 13, 0), res.Occurrences[1].End)
}

func TestExpandItems_SameDayDependsOnLocation(t *testing.T) {
	// 20:00 UTC и 22:00 UTC: один день в UTC, но разные дни в UTC+3
	end := at(2024, 10, 1, 22, 0)
	tests := []model.Test{{ID: 3, StartDate: at(2024, 10, 1, 20, 0), EndDate: &end}}

	assert.Len(t, ExpandItems(tests, nil, nil, time.UTC).Occurrences, 1)
	assert.Len(t, ExpandItems(tests, nil, nil, time.FixedZone("UTC+3", 3*3600)).Occurrences, 2)
}

func TestExpandItems_AssignmentsAndEvents(t *testing.T) {
	eventEnd := at(2024, 10, 4, 19, 0)
	assignments := []model.Assignment{{
		ID:              8,
		Title:           "Упражнение 12",
		DueAt:           at(2024, 10, 4, 23, 59),
		CourseName:      "Русский язык",
		TeacherUsername: "petrova",
	}}
	events := []model.CustomEvent{
		{ID: 1, Title: "Родительское собрание", Type: "meeting", StartAt: at(2024, 10, 4, 18, 0), EndAt: &eventEnd, Location: "Актовый зал"},
		{ID: 2, Title: "Субботник", Type: "cleanup", StartAt: at(2024, 10, 5, 10, 0)},
	}

	res := ExpandItems(nil, assignments, events, time.UTC)

	require.Len(t, res.Occurrences, 3)

	a := res.Occurrences[0]
	assert.Equal(t, "assignment-8", a.ID)
	assert.Equal(t, model.CategoryAssignment, a.Category)
	assert.Equal(t, at(2024, 10, 5, 0, 59), a.End)
	assert.Equal(t, "petrova", a.Teacher)

	meeting := res.Occurrences[1]
	assert.Equal(t, "event-1", meeting.ID)
	assert.Equal(t, model.CategoryMeeting, meeting.Category)
	assert.Equal(t, eventEnd, meeting.End)
	assert.Equal(t, "Актовый зал", meeting.Location)

	other := res.Occurrences[2]
	assert.Equal(t, model.CategoryOther, other.Category)
	assert.Equal(t, at(2024, 10, 5, 11, 0), other.End)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, SourceEvent, res.Warnings[0].Source)
	assert.Equal(t, int64(2), res.Warnings[0].ID)
}

func TestExpandItems_InvalidItemsSkipped(t *testing.T) {
	before := at(2024, 10, 4, 17, 0)
	testEnd := at(2024, 10, 1, 9, 0)
	res := ExpandItems(
		[]model.Test{
			{ID: 1, Title: "без даты"},
			{ID: 9, Title: "конец раньше начала", StartDate: at(2024, 10, 3, 9, 0), EndDate: &testEnd},
		},
		[]model.Assignment{{ID: 2, Title: "без срока"}},
		[]model.CustomEvent{{ID: 3, Type: "other", StartAt: at(2024, 10, 4, 18, 0), EndAt: &before}},
		time.UTC,
	)

	assert.Empty(t, res.Occurrences)
	require.Len(t, res.Warnings, 4)
	assert.Equal(t, SourceTest, res.Warnings[0].Source)
	assert.Equal(t, SourceTest, res.Warnings[1].Source)
	assert.Equal(t, int64(9), res.Warnings[1].ID)
	assert.Equal(t, "end_date is before start_date", res.Warnings[1].Reason)
	assert.Equal(t, SourceAssignment, res.Warnings[2].Source)
	assert.Equal(t, SourceEvent, res.Warnings[3].Source)
}

func TestBuild_Order(t *testing.T) {
	year := &model.AcademicYear{StartDate: date(2024, 9, 2), EndDate: date(2024, 9, 3)}
	in := Input{
		Slots: []model.ScheduleSlot{
			{ID: 1, DayOfWeek: 1, StartTime: "08:00", EndTime: "08:45"},
			mondaySlot(2),
		},
		Year:        year,
		Tests:       []model.Test{{ID: 1, StartDate: at(2024, 9, 2, 12, 0)}},
		Assignments: []model.Assignment{{ID: 1, DueAt: at(2024, 9, 2, 9, 0)}},
		Events:      []model.CustomEvent{{ID: 1, Type: "gathering", StartAt: at(2024, 9, 2, 7, 0)}},
	}

	res := Build(in, date(2024, 9, 2))

	assert.Equal(t, []string{
		"schedule-2-2024-09-02",
		"schedule-1-2024-09-03",
		"test-1",
		"assignment-1",
		"event-1",
	}, ids(res.Occurrences))
	assert.Empty(t, res.Warnings)
}
