package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/calendar"
	"github.com/Freeeeeet/school_calendar/internal/model"
)

const exportSheet = "Календарь"

var exportHeader = []interface{}{
	"Дата", "Начало", "Конец", "Тип", "Название", "Предмет", "Учитель", "Класс", "Кабинет", "Место",
}

// ExportService выгружает календарь в Excel (.xlsx)
type ExportService struct {
	calendar *CalendarService
	logger   *zap.Logger
}

func NewExportService(calendar *CalendarService, logger *zap.Logger) *ExportService {
	return &ExportService{calendar: calendar, logger: logger}
}

// ExportRange выгружает все вхождения из [from, to) по одному на строку.
// Группы уроков раскрываются. Возвращает содержимое файла и имя для скачивания.
func (s *ExportService) ExportRange(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error) {
	view, err := s.calendar.Range(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	occurrences := calendar.Flatten(view.Entries)
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Start.Before(occurrences[j].Start)
	})

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	f.SetColWidth(exportSheet, "A", "A", 12)
	f.SetColWidth(exportSheet, "B", "C", 8)
	f.SetColWidth(exportSheet, "D", "D", 18)
	f.SetColWidth(exportSheet, "E", "E", 40)
	f.SetColWidth(exportSheet, "F", "J", 20)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}
	f.SetCellStyle(exportSheet, "A1", "J1", headerStyle)

	loc := s.calendar.Location()
	for i, o := range occurrences {
		start := o.Start.In(loc)
		row := []interface{}{
			start.Format(calendar.DateLayout),
			start.Format("15:04"),
			o.End.In(loc).Format("15:04"),
			o.Category.Label(),
			o.Title,
			o.Subject,
			exportTeacher(o),
			o.Classroom,
			o.Room,
			o.Location,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Failed to write spreadsheet", zap.Error(err))
		return nil, "", ErrExportFailed
	}

	lastDay := to.In(loc).AddDate(0, 0, -1)
	filename := fmt.Sprintf("calendar_%s_%s.xlsx", from.In(loc).Format(calendar.DateLayout), lastDay.Format(calendar.DateLayout))

	s.logger.Info("Calendar exported",
		zap.String("snapshot_id", view.SnapshotID.String()),
		zap.Int("rows", len(occurrences)),
		zap.String("filename", filename))

	return buf, filename, nil
}

func exportTeacher(o model.Occurrence) string {
	if o.TeacherFullName != "" {
		return o.TeacherFullName
	}
	return o.Teacher
}
