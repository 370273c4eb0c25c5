package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/repository/base"
)

type ScheduleSlotRepository struct {
	*base.Repository
}

func NewScheduleSlotRepository(pool *pgxpool.Pool) *ScheduleSlotRepository {
	return &ScheduleSlotRepository{Repository: base.NewRepository(pool)}
}

// List возвращает все слоты расписания вместе с названием курса, классом и учителем.
// Время урока приходит строкой "HH:MM:SS", разбор остаётся на стороне календаря.
func (r *ScheduleSlotRepository) List(ctx context.Context) ([]model.ScheduleSlot, error) {
	query := `
		SELECT s.id, s.subject_group_id, s.day_of_week,
		       s.start_time::text, s.end_time::text,
		       COALESCE(s.room, ''), s.start_date, s.end_date, s.quarter,
		       co.name,
		       cl.grade::text || cl.letter,
		       COALESCE(concat_ws(' ', u.first_name, u.last_name), ''),
		       COALESCE(u.username, '')
		FROM schedule_slots s
		JOIN subject_groups sg ON sg.id = s.subject_group_id
		JOIN courses co ON co.id = sg.course_id
		JOIN classrooms cl ON cl.id = sg.classroom_id
		LEFT JOIN users u ON u.id = sg.teacher_id
		ORDER BY s.id
	`

	slots, err := base.Collect(ctx, r.Repository, scanSlot, query)
	if err != nil {
		return nil, fmt.Errorf("list schedule slots: %w", err)
	}
	return slots, nil
}

func scanSlot(row pgx.CollectableRow) (model.ScheduleSlot, error) {
	var (
		slot    model.ScheduleSlot
		quarter *int16
	)
	err := row.Scan(
		&slot.ID,
		&slot.SubjectGroupID,
		&slot.DayOfWeek,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Room,
		&slot.StartDate,
		&slot.EndDate,
		&quarter,
		&slot.CourseName,
		&slot.ClassroomDisplay,
		&slot.TeacherFullName,
		&slot.TeacherUsername,
	)
	if err != nil {
		return slot, err
	}
	if quarter != nil {
		q := int(*quarter)
		slot.Quarter = &q
	}
	return slot, nil
}
