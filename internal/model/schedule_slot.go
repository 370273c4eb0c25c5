package model

import "time"

// ScheduleSlot представляет недельный шаблон урока группы предмета
type ScheduleSlot struct {
	ID             int64      `json:"id" validate:"required"`
	SubjectGroupID int64      `json:"subject_group"`
	DayOfWeek      int        `json:"day_of_week" validate:"min=0,max=6"` // 0 = Monday, 6 = Sunday
	StartTime      string     `json:"start_time" validate:"required"`     // "09:00" или "09:00:00"
	EndTime        string     `json:"end_time" validate:"required"`
	Room           string     `json:"room,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Quarter        *int       `json:"quarter,omitempty" validate:"omitempty,min=0,max=4"` // 0 или nil = без ограничения

	// Денормализованные поля только для отображения
	CourseName       string `json:"subject_group_course_name,omitempty"`
	ClassroomDisplay string `json:"subject_group_classroom_display,omitempty"`
	TeacherFullName  string `json:"subject_group_teacher_fullname,omitempty"`
	TeacherUsername  string `json:"subject_group_teacher_username,omitempty"`
}

// HasQuarter проверяет, привязан ли слот к четверти
func (s *ScheduleSlot) HasQuarter() bool {
	return s.Quarter != nil && *s.Quarter != 0
}
