package calendar

import "github.com/Freeeeeet/school_calendar/internal/model"

// Group сворачивает пересекающиеся уроки одного дня в группы.
//
// Проход один, порядок входа важен: каждое ещё не обработанное вхождение становится
// якорем, и в его группу попадают последующие вхождения, пересекающиеся именно с якорем.
// Поэтому группировка не транзитивна: урок, пересекающийся только с другим членом группы,
// в неё не попадает. Группируются только уроки расписания (CategorySchedule).
func Group(occurrences []model.Occurrence) []model.Entry {
	entries := make([]model.Entry, 0, len(occurrences))
	processed := make(map[string]struct{}, len(occurrences))

	for i := range occurrences {
		anchor := occurrences[i]
		if _, done := processed[anchor.ID]; done {
			continue
		}

		cluster := []model.Occurrence{anchor}
		for j := i + 1; j < len(occurrences); j++ {
			other := occurrences[j]
			if _, done := processed[other.ID]; done {
				continue
			}
			if overlaps(anchor, other) {
				cluster = append(cluster, other)
				processed[other.ID] = struct{}{}
			}
		}
		processed[anchor.ID] = struct{}{}

		if len(cluster) == 1 {
			single := anchor
			entries = append(entries, model.Entry{Single: &single})
			continue
		}
		entries = append(entries, model.Entry{Group: newGroup(cluster)})
	}

	return entries
}

// overlaps проверяет, что оба вхождения - уроки одного дня с пересекающимся временем
func overlaps(a, b model.Occurrence) bool {
	if a.Category != model.CategorySchedule || b.Category != model.CategorySchedule {
		return false
	}
	if !SameDay(a.Start, b.Start) {
		return false
	}

	identical := a.Start.Equal(b.Start) && a.End.Equal(b.End)
	return (a.Start.Before(b.End) && a.End.After(b.Start)) || identical
}

func newGroup(members []model.Occurrence) *model.GroupedOccurrence {
	anchor := members[0]
	start, end := anchor.Start, anchor.End
	for _, m := range members[1:] {
		if m.Start.Before(start) {
			start = m.Start
		}
		if m.End.After(end) {
			end = m.End
		}
	}

	return &model.GroupedOccurrence{
		ID:       "grouped-" + anchor.ID,
		Count:    len(members),
		Start:    start,
		End:      end,
		Category: anchor.Category,
		Members:  members,
	}
}

// Flatten разворачивает группы обратно в отдельные вхождения, сохраняя порядок
func Flatten(entries []model.Entry) []model.Occurrence {
	var occurrences []model.Occurrence
	for _, e := range entries {
		occurrences = append(occurrences, e.Members()...)
	}
	return occurrences
}
