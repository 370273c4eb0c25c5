package model

import "time"

// DefaultItemDuration длительность разовых элементов без явного окончания
const DefaultItemDuration = time.Hour

// Test контрольная работа; может длиться несколько дней
type Test struct {
	ID              int64      `json:"id" validate:"required"`
	Title           string     `json:"title"`
	StartDate       time.Time  `json:"start_date" validate:"required"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	CourseName      string     `json:"course_name"`
	TeacherUsername string     `json:"teacher_username"`
	Description     string     `json:"description,omitempty"`
}

// ResolvedEnd возвращает окончание теста, по умолчанию +1 час от начала
func (t *Test) ResolvedEnd() time.Time {
	if t.EndDate == nil || t.EndDate.IsZero() {
		return t.StartDate.Add(DefaultItemDuration)
	}
	return *t.EndDate
}

// Assignment домашнее задание со сроком сдачи
type Assignment struct {
	ID              int64     `json:"id" validate:"required"`
	Title           string    `json:"title"`
	DueAt           time.Time `json:"due_at" validate:"required"`
	CourseName      string    `json:"course_name"`
	TeacherUsername string    `json:"teacher_username"`
	Description     string    `json:"description,omitempty"`
}

// TargetUser адресат пользовательского события
type TargetUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// CustomEvent произвольное событие школы (собрание, встреча и т.д.)
type CustomEvent struct {
	ID                  int64        `json:"id" validate:"required"`
	Title               string       `json:"title"`
	Description         string       `json:"description,omitempty"`
	Type                string       `json:"type"`
	StartAt             time.Time    `json:"start_at" validate:"required"`
	EndAt               *time.Time   `json:"end_at,omitempty"`
	IsAllDay            bool         `json:"is_all_day"`
	Location            string       `json:"location,omitempty"`
	TargetAudience      string       `json:"target_audience"`
	SchoolID            *int64       `json:"school,omitempty"`
	SubjectGroupID      *int64       `json:"subject_group,omitempty"`
	SubjectGroupDisplay string       `json:"subject_group_display,omitempty"`
	TargetUsers         []TargetUser `json:"target_users_details,omitempty"`
}

// ResolvedEnd возвращает окончание события, по умолчанию +1 час от начала
func (e *CustomEvent) ResolvedEnd() time.Time {
	if e.EndAt == nil || e.EndAt.IsZero() {
		return e.StartAt.Add(DefaultItemDuration)
	}
	return *e.EndAt
}
