package common

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/school_calendar/internal/formatting"
	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/service"
)

var categoryEmoji = map[model.Category]string{
	model.CategorySchedule:    "📘",
	model.CategoryTest:        "📝",
	model.CategoryAssignment:  "📚",
	model.CategoryMeeting:     "👥",
	model.CategoryGathering:   "🤝",
	model.CategorySchoolEvent: "🏫",
	model.CategoryOther:       "📌",
}

// BuildDayScreen формирует агенду дня: заголовок, сводку и строки по времени
func BuildDayScreen(date time.Time, items []model.DisplayOccurrence) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📅 <b>%s</b>\n", formatting.FormatDayTitle(date))

	if len(items) == 0 {
		sb.WriteString("\nНа этот день ничего не запланировано 🎉")
		return sb.String(), keyboard.DayNavigation(date)
	}

	sb.WriteString(daySummary(items))
	sb.WriteString("\n")

	for _, item := range items {
		sb.WriteString("\n")
		sb.WriteString(formatItem(item))
	}

	return sb.String(), keyboard.DayNavigation(date)
}

// daySummary "3 урока, 2 события"
func daySummary(items []model.DisplayOccurrence) string {
	lessons, other := 0, 0
	for _, item := range items {
		if item.Category == model.CategorySchedule {
			lessons++
		} else {
			other++
		}
	}

	var parts []string
	if lessons > 0 {
		parts = append(parts, formatting.LessonCount(lessons))
	}
	if other > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", other, formatting.PluralizeEvents(other)))
	}
	return strings.Join(parts, ", ")
}

func formatItem(item model.DisplayOccurrence) string {
	emoji, ok := categoryEmoji[item.Category]
	if !ok {
		emoji = categoryEmoji[model.CategoryOther]
	}

	name := item.Subject
	if name == "" {
		name = item.Title
	}

	line := fmt.Sprintf("%s <b>%s-%s</b> %s: %s", emoji, item.Time, item.EndTime,
		html.EscapeString(item.Title), html.EscapeString(name))
	if item.Category != model.CategorySchedule && item.Category != model.CategoryTest && item.Category != model.CategoryAssignment {
		// у событий заголовок строки и есть название
		line = fmt.Sprintf("%s <b>%s-%s</b> %s", emoji, item.Time, item.EndTime, html.EscapeString(item.Title))
	}

	var details []string
	if item.Teacher != "" {
		details = append(details, "👤 "+html.EscapeString(item.Teacher))
	}
	if item.Classroom != "" {
		details = append(details, "🎓 "+html.EscapeString(item.Classroom))
	}
	if item.Room != "" {
		details = append(details, "Каб. "+html.EscapeString(item.Room))
	}
	if item.Location != "" {
		details = append(details, "📍 "+html.EscapeString(item.Location))
	}
	if len(details) > 0 {
		line += "\n    " + strings.Join(details, " • ")
	}
	return line + "\n"
}

// WeekCaption подпись к картинке недели
func WeekCaption(week *service.WeekView) string {
	last := week.End.AddDate(0, 0, -1)
	caption := fmt.Sprintf("🗓 Неделя %s - %s", week.Start.Format("02.01"), last.Format("02.01"))
	if q := formatting.FormatQuarter(week.Quarter); q != "" {
		caption += " • " + q
	}

	lessons := 0
	for _, e := range week.Entries {
		for _, m := range e.Members() {
			if m.Category == model.CategorySchedule {
				lessons++
			}
		}
	}
	return caption + "\n" + formatting.LessonCount(lessons)
}
