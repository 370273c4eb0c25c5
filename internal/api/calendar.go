package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Freeeeeet/school_calendar/internal/calendar"
	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/render"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type calendarAPI struct {
	calendar CalendarReader
	export   Exporter
}

type dayResponse struct {
	Date  string                    `json:"date"`
	Items []model.DisplayOccurrence `json:"items"`
}

func registerCalendarAPI(g *echo.Group, cal CalendarReader, export Exporter) {
	api := &calendarAPI{calendar: cal, export: export}

	cg := g.Group("/calendar")
	cg.GET("", api.rangeView)
	cg.GET("/day/:date", api.day)
	cg.GET("/week/:date", api.weekImage)
	cg.GET("/export", api.exportRange)
}

// rangeView GET /v1/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD, обе даты включительно.
// Без параметров отдаётся текущая неделя.
func (api *calendarAPI) rangeView(ctx echo.Context) error {
	from, to, err := api.parseRange(ctx)
	if err != nil {
		return err
	}

	view, err := api.calendar.Range(ctx.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// day GET /v1/calendar/day/:date
func (api *calendarAPI) day(ctx echo.Context) error {
	date, err := api.parseDate(ctx.Param("date"))
	if err != nil {
		return err
	}

	items, err := api.calendar.Day(ctx.Request().Context(), date)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dayResponse{Date: date.Format(calendar.DateLayout), Items: items})
}

// weekImage GET /v1/calendar/week/:date, PNG недели, содержащей date
func (api *calendarAPI) weekImage(ctx echo.Context) error {
	date, err := api.parseDate(ctx.Param("date"))
	if err != nil {
		return err
	}

	week, err := api.calendar.Week(ctx.Request().Context(), date)
	if err != nil {
		return err
	}

	png, err := render.WeekImage(render.Week{Start: week.Start, Quarter: week.Quarter, Entries: week.Entries}, api.calendar.Now())
	if err != nil {
		return err
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

// exportRange GET /v1/calendar/export?from&to, xlsx-файл
func (api *calendarAPI) exportRange(ctx echo.Context) error {
	from, to, err := api.parseRange(ctx)
	if err != nil {
		return err
	}

	buf, filename, err := api.export.ExportRange(ctx.Request().Context(), from, to)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (api *calendarAPI) parseDate(value string) (time.Time, error) {
	date, err := calendar.ParseDate(value, api.calendar.Location())
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return date, nil
}

// parseRange читает from/to включительно и возвращает полуинтервал [from, to+1 день)
func (api *calendarAPI) parseRange(ctx echo.Context) (time.Time, time.Time, error) {
	fromParam, toParam := ctx.QueryParam("from"), ctx.QueryParam("to")

	var from time.Time
	if fromParam == "" {
		from = calendar.MondayOf(api.calendar.Now())
	} else {
		parsed, err := api.parseDate(fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	var lastDay time.Time
	if toParam == "" {
		lastDay = from.AddDate(0, 0, 6)
	} else {
		parsed, err := api.parseDate(toParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		lastDay = parsed
	}

	return from, lastDay.AddDate(0, 0, 1), nil
}
