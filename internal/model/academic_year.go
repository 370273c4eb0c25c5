package model

import "time"

// Количество недель в четвертях по умолчанию
const (
	DefaultQuarter1Weeks = 8
	DefaultQuarter2Weeks = 8
	DefaultQuarter3Weeks = 10
	DefaultQuarter4Weeks = 8
)

// AcademicYear задаёт окно разворачивания расписания и каникулы
type AcademicYear struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Quarter1Weeks *int `json:"quarter1_weeks,omitempty"`
	Quarter2Weeks *int `json:"quarter2_weeks,omitempty"`
	Quarter3Weeks *int `json:"quarter3_weeks,omitempty"`
	Quarter4Weeks *int `json:"quarter4_weeks,omitempty"`

	AutumnHolidayStart *time.Time `json:"autumn_holiday_start,omitempty"`
	AutumnHolidayEnd   *time.Time `json:"autumn_holiday_end,omitempty"`
	WinterHolidayStart *time.Time `json:"winter_holiday_start,omitempty"`
	WinterHolidayEnd   *time.Time `json:"winter_holiday_end,omitempty"`
	SpringHolidayStart *time.Time `json:"spring_holiday_start,omitempty"`
	SpringHolidayEnd   *time.Time `json:"spring_holiday_end,omitempty"`

	IsActive bool `json:"is_active"`
}

// QuarterWeeks возвращает длительность четвертей в неделях с учётом значений по умолчанию.
// Ноль и отсутствие значения считаются незаданными.
func (y *AcademicYear) QuarterWeeks() [4]int {
	pick := func(v *int, def int) int {
		if v == nil || *v == 0 {
			return def
		}
		return *v
	}
	return [4]int{
		pick(y.Quarter1Weeks, DefaultQuarter1Weeks),
		pick(y.Quarter2Weeks, DefaultQuarter2Weeks),
		pick(y.Quarter3Weeks, DefaultQuarter3Weeks),
		pick(y.Quarter4Weeks, DefaultQuarter4Weeks),
	}
}

// Holiday каникулы, обе границы включительно
type Holiday struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Holidays возвращает каникулы, у которых заданы обе границы
func (y *AcademicYear) Holidays() []Holiday {
	pairs := []struct {
		name       string
		start, end *time.Time
	}{
		{"autumn", y.AutumnHolidayStart, y.AutumnHolidayEnd},
		{"winter", y.WinterHolidayStart, y.WinterHolidayEnd},
		{"spring", y.SpringHolidayStart, y.SpringHolidayEnd},
	}

	var holidays []Holiday
	for _, p := range pairs {
		if p.start == nil || p.end == nil {
			continue
		}
		holidays = append(holidays, Holiday{Name: p.name, Start: *p.start, End: *p.end})
	}
	return holidays
}
