package calendar

import "fmt"

// Источники предупреждений
const (
	SourceSlot         = "schedule_slot"
	SourceAcademicYear = "academic_year"
	SourceTest         = "test"
	SourceAssignment   = "assignment"
	SourceEvent        = "event"
)

// Warning описывает пропущенный элемент входных данных.
// Календарь строится по возможности: некорректный элемент пропускается, а не прерывает расчёт.
type Warning struct {
	Source string `json:"source"`
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s #%d: %s", w.Source, w.ID, w.Reason)
}
