package formatting

import "fmt"

// Pluralize выбирает форму слова для числа: one (1, 21), few (2-4, 22-24), many (остальные)
func Pluralize(count int, one, few, many string) string {
	n := count
	if n < 0 {
		n = -n
	}
	if n%10 == 1 && n%100 != 11 {
		return one
	}
	if n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20) {
		return few
	}
	return many
}

// PluralizeLessons возвращает правильное склонение слова "урок"
func PluralizeLessons(count int) string {
	return Pluralize(count, "урок", "урока", "уроков")
}

// PluralizeEvents возвращает правильное склонение слова "событие"
func PluralizeEvents(count int) string {
	return Pluralize(count, "событие", "события", "событий")
}

// LessonCount "2 урока", "5 уроков"
func LessonCount(count int) string {
	return fmt.Sprintf("%d %s", count, PluralizeLessons(count))
}
