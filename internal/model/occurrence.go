package model

import "time"

// Category категория вхождения календаря
type Category string

const (
	CategorySchedule    Category = "schedule"
	CategoryTest        Category = "test"
	CategoryAssignment  Category = "assignment"
	CategoryMeeting     Category = "meeting"
	CategoryGathering   Category = "gathering"
	CategorySchoolEvent Category = "school_event"
	CategoryOther       Category = "other"
)

// EventCategory переводит тип пользовательского события в категорию.
// Второй результат false, если тип неизвестен (тогда возвращается CategoryOther).
func EventCategory(eventType string) (Category, bool) {
	switch c := Category(eventType); c {
	case CategoryMeeting, CategoryGathering, CategorySchoolEvent, CategoryOther:
		return c, true
	default:
		return CategoryOther, false
	}
}

var categoryLabels = map[Category]string{
	CategorySchedule:    "Урок",
	CategoryTest:        "Тест",
	CategoryAssignment:  "Домашнее задание",
	CategoryMeeting:     "Собрание",
	CategoryGathering:   "Встреча",
	CategorySchoolEvent: "Школьное событие",
	CategoryOther:       "Другое",
}

// Label название категории для пользователя
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// TestMarker отмечает начало или конец многодневного теста
type TestMarker string

const (
	TestMarkerNone  TestMarker = ""
	TestMarkerStart TestMarker = "start"
	TestMarkerEnd   TestMarker = "end"
)

// Occurrence одно вхождение календаря с конкретной датой и временем
type Occurrence struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Start    time.Time  `json:"start"`
	End      time.Time  `json:"end"`
	Category Category   `json:"type"`
	Marker   TestMarker `json:"marker,omitempty"`

	SourceID int64     `json:"source_id"`
	Date     time.Time `json:"date"` // только для уроков из расписания

	Subject             string       `json:"subject,omitempty"`
	Classroom           string       `json:"classroom,omitempty"`
	Room                string       `json:"room,omitempty"`
	Teacher             string       `json:"teacher,omitempty"` // только фамилия
	TeacherFullName     string       `json:"teacher_full_name,omitempty"`
	Description         string       `json:"description,omitempty"`
	Location            string       `json:"location,omitempty"`
	TargetAudience      string       `json:"target_audience,omitempty"`
	SubjectGroupDisplay string       `json:"subject_group_display,omitempty"`
	TargetUsers         []TargetUser `json:"target_users,omitempty"`
}

// GroupedOccurrence пересекающиеся уроки одного дня, свёрнутые в одну запись
type GroupedOccurrence struct {
	ID       string       `json:"id"`
	Count    int          `json:"count"`
	Start    time.Time    `json:"start"`
	End      time.Time    `json:"end"`
	Category Category     `json:"type"`
	Members  []Occurrence `json:"members"`
}

// Entry элемент результата группировки: либо одиночное вхождение, либо группа
type Entry struct {
	Single *Occurrence        `json:"occurrence,omitempty"`
	Group  *GroupedOccurrence `json:"group,omitempty"`
}

// IsGroup проверяет является ли запись группой
func (e Entry) IsGroup() bool {
	return e.Group != nil
}

func (e Entry) ID() string {
	if e.Group != nil {
		return e.Group.ID
	}
	return e.Single.ID
}

func (e Entry) Start() time.Time {
	if e.Group != nil {
		return e.Group.Start
	}
	return e.Single.Start
}

func (e Entry) End() time.Time {
	if e.Group != nil {
		return e.Group.End
	}
	return e.Single.End
}

func (e Entry) Category() Category {
	if e.Group != nil {
		return e.Group.Category
	}
	return e.Single.Category
}

// Members возвращает вхождения записи (одно для одиночной записи)
func (e Entry) Members() []Occurrence {
	if e.Group != nil {
		return e.Group.Members
	}
	return []Occurrence{*e.Single}
}

// DisplayOccurrence строка боковой панели дня
type DisplayOccurrence struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Date                string       `json:"start"` // YYYY-MM-DD
	Time                string       `json:"time"`  // HH:MM
	EndTime             string       `json:"end_time"`
	Subject             string       `json:"subject"`
	Teacher             string       `json:"teacher"`
	Description         string       `json:"description"`
	Category            Category     `json:"type"`
	Classroom           string       `json:"classroom,omitempty"`
	Room                string       `json:"room,omitempty"`
	Location            string       `json:"location,omitempty"`
	TargetAudience      string       `json:"target_audience,omitempty"`
	SubjectGroupDisplay string       `json:"subject_group_display,omitempty"`
	TargetUsers         []TargetUser `json:"target_users,omitempty"`
}
