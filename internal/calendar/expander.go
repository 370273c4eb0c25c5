package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/school_calendar/internal/model"
)

// Окно по умолчанию, если учебный год не задан
const fallbackWindowMonths = 3

const defaultSubjectName = "Предмет"

// preparedSlot слот с разобранным временем и границами действия
type preparedSlot struct {
	slot      *model.ScheduleSlot
	start     clock
	end       clock
	validFrom dayKey // 0 = без ограничения
	validTo   dayKey
}

// holidayRange каникулы как диапазон календарных дней, обе границы включительно
type holidayRange struct {
	start, end dayKey
}

// Window возвращает окно разворачивания расписания.
// С учебным годом это его границы, без него с понедельника текущей недели на три месяца вперёд.
func Window(year *model.AcademicYear, now time.Time) (start, end time.Time) {
	loc := now.Location()
	if year != nil {
		return civilDate(year.StartDate, loc), civilDate(year.EndDate, loc)
	}
	start = MondayOf(now)
	return start, time.Date(start.Year(), start.Month()+fallbackWindowMonths, start.Day(), 0, 0, 0, 0, loc)
}

// Expand разворачивает недельные слоты в конкретные уроки по датам.
// Выходные не пропускаются, исключаются только каникулы учебного года.
func Expand(slots []model.ScheduleSlot, year *model.AcademicYear, now time.Time) Result {
	result := Result{Occurrences: []model.Occurrence{}}
	if len(slots) == 0 {
		return result
	}

	loc := now.Location()
	windowStart, windowEnd := Window(year, now)
	if year != nil && keyOf(windowEnd) < keyOf(windowStart) {
		result.Warnings = append(result.Warnings, Warning{
			Source: SourceAcademicYear,
			ID:     year.ID,
			Reason: "end_date is before start_date",
		})
		return result
	}

	var holidays []holidayRange
	var quarters []QuarterRange
	if year != nil {
		for _, h := range year.Holidays() {
			holidays = append(holidays, holidayRange{start: keyOf(h.Start), end: keyOf(h.End)})
		}
		quarters = Quarters(year, loc)
	}

	// Слоты раскладываем по дням недели, сохраняя порядок входа
	var byWeekday [7][]preparedSlot
	for i := range slots {
		ps, err := prepareSlot(&slots[i])
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Source: SourceSlot,
				ID:     slots[i].ID,
				Reason: err.Error(),
			})
			continue
		}
		byWeekday[ps.slot.DayOfWeek] = append(byWeekday[ps.slot.DayOfWeek], ps)
	}

	// Каждый день строится от полуночи окна заново: сдвиг полуночи при переходе
	// на летнее время не переносится на следующие дни
	last := keyOf(windowEnd)
	for i := 0; ; i++ {
		day := addDays(windowStart, i)
		key := keyOf(day)
		if key > last {
			break
		}

		daySlots := byWeekday[mondayBasedWeekday(day)]
		if len(daySlots) == 0 {
			continue
		}
		if isHoliday(key, holidays) {
			continue
		}

		for _, ps := range daySlots {
			if year != nil && ps.slot.HasQuarter() && quarterFor(day, quarters) != *ps.slot.Quarter {
				continue
			}
			if ps.validFrom != 0 && key < ps.validFrom {
				continue
			}
			if ps.validTo != 0 && key > ps.validTo {
				continue
			}
			result.Occurrences = append(result.Occurrences, slotOccurrence(ps, day))
		}
	}

	return result
}

// prepareSlot проверяет слот и разбирает его время
func prepareSlot(slot *model.ScheduleSlot) (preparedSlot, error) {
	if err := checkStruct(slot); err != nil {
		return preparedSlot{}, err
	}

	start, err := parseClock(slot.StartTime)
	if err != nil {
		return preparedSlot{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := parseClock(slot.EndTime)
	if err != nil {
		return preparedSlot{}, fmt.Errorf("end_time: %w", err)
	}
	if start.seconds() >= end.seconds() {
		return preparedSlot{}, fmt.Errorf("start_time %s is not before end_time %s", slot.StartTime, slot.EndTime)
	}

	ps := preparedSlot{slot: slot, start: start, end: end}
	if slot.StartDate != nil {
		ps.validFrom = keyOf(*slot.StartDate)
	}
	if slot.EndDate != nil {
		ps.validTo = keyOf(*slot.EndDate)
	}
	if ps.validFrom != 0 && ps.validTo != 0 && ps.validTo < ps.validFrom {
		return preparedSlot{}, fmt.Errorf("end_date is before start_date")
	}

	return ps, nil
}

func isHoliday(day dayKey, holidays []holidayRange) bool {
	for _, h := range holidays {
		if day >= h.start && day <= h.end {
			return true
		}
	}
	return false
}

// slotOccurrence создаёт урок слота на конкретную дату
func slotOccurrence(ps preparedSlot, day time.Time) model.Occurrence {
	slot := ps.slot

	subject := slot.CourseName
	if subject == "" {
		subject = defaultSubjectName
	}
	teacherFullName := slot.TeacherFullName
	if teacherFullName == "" {
		teacherFullName = slot.TeacherUsername
	}

	title := subject
	if slot.ClassroomDisplay != "" {
		title += " • " + slot.ClassroomDisplay
	}
	if slot.Room != "" {
		title += " • Каб. " + slot.Room
	}

	return model.Occurrence{
		ID:              fmt.Sprintf("schedule-%d-%s", slot.ID, day.Format(DateLayout)),
		Title:           title,
		Start:           ps.start.on(day),
		End:             ps.end.on(day),
		Category:        model.CategorySchedule,
		SourceID:        slot.ID,
		Date:            day,
		Subject:         subject,
		Classroom:       slot.ClassroomDisplay,
		Room:            slot.Room,
		Teacher:         lastName(teacherFullName),
		TeacherFullName: teacherFullName,
		Description:     slot.ClassroomDisplay,
	}
}

// lastName оставляет последнее слово полного имени (фамилию)
func lastName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
