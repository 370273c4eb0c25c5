package common

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/service"
)

func TestBuildDayScreen(t *testing.T) {
	date := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	items := []model.DisplayOccurrence{
		{ID: "schedule-1-2024-10-07", Title: "Урок", Subject: "Алгебра", Time: "09:00", EndTime: "09:45", Category: model.CategorySchedule, Teacher: "Анна Орлова", Classroom: "7А", Room: "12"},
		{ID: "schedule-2-2024-10-07", Title: "Урок", Subject: "Физика", Time: "09:30", EndTime: "10:15", Category: model.CategorySchedule},
		{ID: "event-1", Title: "Собрание <родителей>", Time: "18:00", EndTime: "19:00", Category: model.CategoryMeeting, Location: "Актовый зал"},
	}

	text, kb := BuildDayScreen(date, items)

	assert.Contains(t, text, "Понедельник, 7 октября")
	assert.Contains(t, text, "2 урока, 1 событие")
	assert.Contains(t, text, "📘 <b>09:00-09:45</b> Урок: Алгебра")
	assert.Contains(t, text, "👤 Анна Орлова • 🎓 7А • Каб. 12")
	assert.Contains(t, text, "👥 <b>18:00-19:00</b> Собрание &lt;родителей&gt;")
	assert.Contains(t, text, "📍 Актовый зал")

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "day:2024-10-06", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "today", kb.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, "day:2024-10-08", kb.InlineKeyboard[0][2].CallbackData)
	assert.Equal(t, "week:2024-10-07", kb.InlineKeyboard[1][0].CallbackData)
}

func TestBuildDayScreen_Empty(t *testing.T) {
	text, kb := BuildDayScreen(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), nil)

	assert.Contains(t, text, "Вторник, 31 декабря")
	assert.Contains(t, text, "ничего не запланировано")
	assert.Len(t, kb.InlineKeyboard, 2)
}

func TestWeekCaption(t *testing.T) {
	monday := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	lesson := model.Occurrence{ID: "a", Category: model.CategorySchedule}
	test := model.Occurrence{ID: "t", Category: model.CategoryTest}

	caption := WeekCaption(&service.WeekView{
		Start:   monday,
		End:     monday.AddDate(0, 0, 7),
		Quarter: 1,
		Entries: []model.Entry{
			{Group: &model.GroupedOccurrence{Count: 2, Members: []model.Occurrence{lesson, lesson}}},
			{Single: &lesson},
			{Single: &test},
		},
	})

	assert.Equal(t, "🗓 Неделя 07.10 - 13.10 • 1 четверть\n3 урока", caption)
}

func TestParseDateFromCallback(t *testing.T) {
	date, err := ParseDateFromCallback("day:2024-10-07", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDateFromCallback("day:07.10.2024", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseDateFromCallback("today", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "❌ Неверный формат данных", ErrorMessage(fmt.Errorf("wrap: %w", ErrInvalidFormat)))
	assert.Contains(t, ErrorMessage(service.ErrSourcesUnavailable), "временно недоступен")
	assert.Equal(t, "❌ Произошла ошибка", ErrorMessage(errors.New("boom")))
}
