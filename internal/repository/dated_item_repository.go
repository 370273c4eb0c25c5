package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/repository/base"
)

// DatedItemRepository читает тесты, домашние задания и школьные события
type DatedItemRepository struct {
	*base.Repository
}

func NewDatedItemRepository(pool *pgxpool.Pool) *DatedItemRepository {
	return &DatedItemRepository{Repository: base.NewRepository(pool)}
}

// ListTests возвращает все тесты с названием курса и логином учителя
func (r *DatedItemRepository) ListTests(ctx context.Context) ([]model.Test, error) {
	query := `
		SELECT t.id, t.title, t.start_date, t.end_date, co.name,
		       COALESCE(u.username, ''), t.description
		FROM tests t
		JOIN subject_groups sg ON sg.id = t.subject_group_id
		JOIN courses co ON co.id = sg.course_id
		LEFT JOIN users u ON u.id = sg.teacher_id
		ORDER BY t.start_date, t.id
	`

	tests, err := base.Collect(ctx, r.Repository, func(row pgx.CollectableRow) (model.Test, error) {
		var t model.Test
		err := row.Scan(&t.ID, &t.Title, &t.StartDate, &t.EndDate, &t.CourseName, &t.TeacherUsername, &t.Description)
		return t, err
	}, query)
	if err != nil {
		return nil, fmt.Errorf("list tests: %w", err)
	}
	return tests, nil
}

// ListAssignments возвращает все домашние задания
func (r *DatedItemRepository) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	query := `
		SELECT a.id, a.title, a.due_at, co.name,
		       COALESCE(u.username, ''), a.description
		FROM assignments a
		JOIN subject_groups sg ON sg.id = a.subject_group_id
		JOIN courses co ON co.id = sg.course_id
		LEFT JOIN users u ON u.id = sg.teacher_id
		ORDER BY a.due_at, a.id
	`

	assignments, err := base.Collect(ctx, r.Repository, func(row pgx.CollectableRow) (model.Assignment, error) {
		var a model.Assignment
		err := row.Scan(&a.ID, &a.Title, &a.DueAt, &a.CourseName, &a.TeacherUsername, &a.Description)
		return a, err
	}, query)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// ListEvents возвращает события вместе с адресными пользователями
func (r *DatedItemRepository) ListEvents(ctx context.Context) ([]model.CustomEvent, error) {
	query := `
		SELECT e.id, e.title, e.description, e.type, e.start_at, e.end_at,
		       e.is_all_day, e.location, e.target_audience, e.school_id, e.subject_group_id,
		       COALESCE(co.name || ' ' || cl.grade::text || cl.letter, '')
		FROM events e
		LEFT JOIN subject_groups sg ON sg.id = e.subject_group_id
		LEFT JOIN courses co ON co.id = sg.course_id
		LEFT JOIN classrooms cl ON cl.id = sg.classroom_id
		ORDER BY e.start_at, e.id
	`

	events, err := base.Collect(ctx, r.Repository, func(row pgx.CollectableRow) (model.CustomEvent, error) {
		var e model.CustomEvent
		err := row.Scan(
			&e.ID, &e.Title, &e.Description, &e.Type, &e.StartAt, &e.EndAt,
			&e.IsAllDay, &e.Location, &e.TargetAudience, &e.SchoolID, &e.SubjectGroupID,
			&e.SubjectGroupDisplay,
		)
		return e, err
	}, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return events, nil
	}

	if err := r.attachTargetUsers(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// attachTargetUsers подгружает адресатов одним запросом для всех событий
func (r *DatedItemRepository) attachTargetUsers(ctx context.Context, events []model.CustomEvent) error {
	ids := make([]int64, len(events))
	index := make(map[int64]int, len(events))
	for i, e := range events {
		ids[i] = e.ID
		index[e.ID] = i
	}

	query := `
		SELECT etu.event_id, u.id, u.username, u.first_name, u.last_name
		FROM event_target_users etu
		JOIN users u ON u.id = etu.user_id
		WHERE etu.event_id = ANY($1)
		ORDER BY etu.event_id, u.id
	`

	type targetRow struct {
		eventID int64
		user    model.TargetUser
	}
	rows, err := base.Collect(ctx, r.Repository, func(row pgx.CollectableRow) (targetRow, error) {
		var tr targetRow
		err := row.Scan(&tr.eventID, &tr.user.ID, &tr.user.Username, &tr.user.FirstName, &tr.user.LastName)
		return tr, err
	}, query, ids)
	if err != nil {
		return fmt.Errorf("list event target users: %w", err)
	}

	for _, tr := range rows {
		i := index[tr.eventID]
		events[i].TargetUsers = append(events[i].TargetUsers, tr.user)
	}
	return nil
}
