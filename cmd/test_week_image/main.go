package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/school_calendar/internal/calendar"
	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/render"
)

func main() {
	// Создаем тестовые данные на текущую неделю
	now := time.Now()
	monday := calendar.MondayOf(now)
	sunday := monday.AddDate(0, 0, 6)

	slots := []model.ScheduleSlot{
		{ID: 1, DayOfWeek: 0, StartTime: "09:00", EndTime: "09:45", Room: "12", CourseName: "Алгебра", ClassroomDisplay: "7А", TeacherFullName: "Анна Орлова"},
		// Параллельные уроки в понедельник: попадут в одну группу
		{ID: 2, DayOfWeek: 0, StartTime: "10:00", EndTime: "10:45", Room: "21", CourseName: "Английский язык", ClassroomDisplay: "7А", TeacherFullName: "Ольга Смирнова"},
		{ID: 3, DayOfWeek: 0, StartTime: "10:00", EndTime: "10:45", Room: "22", CourseName: "Немецкий язык", ClassroomDisplay: "7А", TeacherFullName: "Иван Петров"},
		{ID: 4, DayOfWeek: 1, StartTime: "11:00", EndTime: "11:45", CourseName: "Физика", ClassroomDisplay: "7А", TeacherFullName: "Сергей Волков"},
		{ID: 5, DayOfWeek: 2, StartTime: "09:00", EndTime: "09:45", CourseName: "История", ClassroomDisplay: "7А"},
		{ID: 6, DayOfWeek: 4, StartTime: "13:00", EndTime: "13:45", CourseName: "Физкультура", ClassroomDisplay: "7А"},
	}

	result := calendar.Build(calendar.Input{
		Slots: slots,
		Tests: []model.Test{
			{ID: 1, Title: "Контрольная по алгебре", StartDate: monday.AddDate(0, 0, 3).Add(12 * time.Hour), CourseName: "Алгебра"},
		},
		Assignments: []model.Assignment{
			{ID: 1, Title: "Эссе", DueAt: monday.AddDate(0, 0, 2).Add(15 * time.Hour), CourseName: "История"},
		},
		Events: []model.CustomEvent{
			{ID: 1, Title: "Родительское собрание", Type: "meeting", StartAt: monday.AddDate(0, 0, 1).Add(17 * time.Hour), Location: "Актовый зал"},
		},
	}, now)

	for _, w := range result.Warnings {
		fmt.Printf("⚠️  %s\n", w)
	}

	entries := calendar.InRange(calendar.Group(result.Occurrences), monday, monday.AddDate(0, 0, 7))

	// Генерируем изображение
	imageData, err := render.WeekImage(render.Week{Start: monday, Entries: entries}, now)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "week.png"
	err = os.WriteFile(filename, imageData, 0644)
	if err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Период: %s - %s\n", monday.Format("02.01.2006"), sunday.Format("02.01.2006"))
	fmt.Printf("📊 Записей: %d\n", len(entries))
}
