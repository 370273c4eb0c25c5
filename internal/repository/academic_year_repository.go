package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/repository/base"
)

type AcademicYearRepository struct {
	*base.Repository
}

func NewAcademicYearRepository(pool *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{Repository: base.NewRepository(pool)}
}

// GetActive возвращает активный учебный год или nil, если он не задан
func (r *AcademicYearRepository) GetActive(ctx context.Context) (*model.AcademicYear, error) {
	query := `
		SELECT id, name, start_date, end_date,
		       quarter_1_weeks, quarter_2_weeks, quarter_3_weeks, quarter_4_weeks,
		       autumn_holiday_start, autumn_holiday_end,
		       winter_holiday_start, winter_holiday_end,
		       spring_holiday_start, spring_holiday_end,
		       is_active
		FROM academic_years
		WHERE is_active
		LIMIT 1
	`

	var (
		year  model.AcademicYear
		weeks [4]*int16
	)
	err := r.QueryRow(ctx, query).Scan(
		&year.ID,
		&year.Name,
		&year.StartDate,
		&year.EndDate,
		&weeks[0], &weeks[1], &weeks[2], &weeks[3],
		&year.AutumnHolidayStart, &year.AutumnHolidayEnd,
		&year.WinterHolidayStart, &year.WinterHolidayEnd,
		&year.SpringHolidayStart, &year.SpringHolidayEnd,
		&year.IsActive,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active academic year: %w", err)
	}

	targets := []**int{&year.Quarter1Weeks, &year.Quarter2Weeks, &year.Quarter3Weeks, &year.Quarter4Weeks}
	for i, w := range weeks {
		if w != nil {
			v := int(*w)
			*targets[i] = &v
		}
	}

	return &year, nil
}
