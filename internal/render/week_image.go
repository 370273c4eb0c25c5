// Package render рисует недельную сетку календаря в PNG для бота и HTTP API.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/Freeeeeet/school_calendar/internal/formatting"
	"github.com/Freeeeeet/school_calendar/internal/model"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleRegular FontStyle = ""
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	ImageWidth       = 1400
	ImageHeight      = 900
	headerHeight     = 100
	leftLabelsWidth  = 80
	legendWidth      = 170
	dayPaddingX      = 8
	minBlockHeight   = 8.0
	blockRadius      = 6.0
	shadowOffset     = 3.0
	daysInWeek       = 7
	hourPaddingTop   = 1
	hourPaddingBot   = 1
	defaultStartHour = 8
	defaultEndHour   = 18
	maxLabelRunes    = 18
)

// Константы шрифтов
const (
	titleFontSize     = 25.0
	dayFontSize       = 24.0
	hourLabelFontSize = 16.0
	blockFontSize     = 14.0
	legendFontSize    = 12.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	todayBgColor     = color.NRGBA{255, 99, 71, 60}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{228, 228, 228, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	blockTextColor   = color.RGBA{20, 24, 28, 230}
	blockShadowColor = color.RGBA{0, 0, 0, 20}
	legendTextColor  = color.RGBA{70, 74, 78, 220}

	categoryColors = map[model.Category]color.RGBA{
		model.CategorySchedule:    {133, 193, 85, 220},
		model.CategoryTest:        {239, 154, 154, 240},
		model.CategoryAssignment:  {255, 204, 128, 240},
		model.CategoryMeeting:     {144, 202, 249, 240},
		model.CategoryGathering:   {179, 157, 219, 240},
		model.CategorySchoolEvent: {128, 203, 196, 240},
		model.CategoryOther:       {200, 200, 200, 220},
	}

	legendOrder = []model.Category{
		model.CategorySchedule,
		model.CategoryTest,
		model.CategoryAssignment,
		model.CategoryMeeting,
		model.CategoryGathering,
		model.CategorySchoolEvent,
		model.CategoryOther,
	}
)

// Week входные данные картинки: понедельник, номер четверти и записи недели
type Week struct {
	Start   time.Time
	Quarter int
	Entries []model.Entry
}

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

var (
	fontsOnce sync.Once
	fonts     map[FontStyle]*opentype.Font
)

func parseFonts() {
	fonts = make(map[FontStyle]*opentype.Font, 2)
	for style, data := range map[FontStyle][]byte{
		FontStyleRegular: goregular.TTF,
		FontStyleBold:    gobold.TTF,
	} {
		if f, err := opentype.Parse(data); err == nil {
			fonts[style] = f
		}
	}
}

// loadFont выставляет шрифт нужного стиля или basicfont как fallback
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontsOnce.Do(parseFonts)

	if parsed, ok := fonts[style]; ok {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// WeekImage рисует неделю week. now нужен для подсветки сегодняшнего дня и линии текущего времени.
func WeekImage(week Week, now time.Time) ([]byte, error) {
	loc := week.Start.Location()
	start := time.Date(week.Start.Year(), week.Start.Month(), week.Start.Day(), 0, 0, 0, 0, loc)
	now = now.In(loc)

	byDay := entriesByDay(week.Entries, start)
	hours := calculateHourRange(week.Entries, loc)

	dc := gg.NewContext(ImageWidth, ImageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (ImageWidth - leftLabelsWidth - legendWidth) / daysInWeek
	dayHeight := ImageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, start, week.Quarter)
	drawHourLabels(dc, hours, cellHeight)

	todayIndex := -1
	for i := 0; i < daysInWeek; i++ {
		date := start.AddDate(0, 0, i)
		x := float64(leftLabelsWidth + i*dayWidth)
		isToday := sameDay(date, now)
		if isToday {
			todayIndex = i
		}

		drawDayBackground(dc, x, dayWidth, dayHeight, i, isToday)
		drawDayHeader(dc, date, x, dayWidth)
		drawHourLines(dc, x, dayWidth, hours, cellHeight)
		for _, e := range byDay[i] {
			drawEntry(dc, e, loc, x, dayWidth, hours, cellHeight)
		}
	}

	if todayIndex >= 0 {
		drawCurrentTimeLine(dc, now, hours, cellHeight, dayWidth)
	}
	drawLegend(dc, dayWidth)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

// entriesByDay раскладывает записи по индексам дней недели 0..6
func entriesByDay(entries []model.Entry, monday time.Time) map[int][]model.Entry {
	byDay := make(map[int][]model.Entry)
	for _, e := range entries {
		start := e.Start().In(monday.Location())
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, monday.Location())
		idx := int(day.Sub(monday).Hours() / 24)
		if idx < 0 || idx >= daysInWeek {
			continue
		}
		byDay[idx] = append(byDay[idx], e)
	}
	return byDay
}

// calculateHourRange определяет диапазон часов по записям недели
func calculateHourRange(entries []model.Entry, loc *time.Location) hourRange {
	minHour, maxHour := 24, 0
	for _, e := range entries {
		start, end := e.Start().In(loc), e.End().In(loc)
		endH := end.Hour()
		if end.Minute() > 0 {
			endH++
		}
		if !sameDay(start, end) {
			endH = 24
		}
		if start.Hour() < minHour {
			minHour = start.Hour()
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	if minHour == 24 {
		minHour, maxHour = defaultStartHour, defaultEndHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}

	return hourRange{start: startHour, end: endHour, total: endHour - startHour}
}

// headerTitle "Октябрь 2024 • 1 четверть"
func headerTitle(monday time.Time, quarter int) string {
	sunday := monday.AddDate(0, 0, 6)

	title := formatting.MonthName(monday.Month())
	if sunday.Month() != monday.Month() {
		title += " - " + formatting.MonthName(sunday.Month())
	}
	title += fmt.Sprintf(" %d", sunday.Year())

	if q := formatting.FormatQuarter(quarter); q != "" {
		title += " • " + q
	}
	return title
}

func drawHeader(dc *gg.Context, monday time.Time, quarter int) {
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(headerTitle(monday, quarter), float64(leftLabelsWidth), float64(headerHeight)/4, 0, 0.5)
}

func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleRegular)
	dc.SetColor(hourLabelColor)

	for i := 0; i < hours.total; i++ {
		y := float64(headerHeight) + float64(i)*cellHeight
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hours.start+i), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

func drawDayBackground(dc *gg.Context, x float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	switch {
	case isToday:
		dc.SetColor(todayBgColor)
	case dayIndex%2 == 0:
		dc.SetColor(evenDayColor)
	default:
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, float64(headerHeight), float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

func drawDayHeader(dc *gg.Context, date time.Time, x float64, dayWidth int) {
	loadFont(dc, dayFontSize, FontStyleBold)
	dc.SetColor(textColor)
	cx := x + float64(dayWidth)/2
	dc.DrawStringAnchored(date.Format("02.01"), cx, float64(headerHeight), 0.5, -1)
	dc.DrawStringAnchored(formatting.WeekdayShortName(date.Weekday()), cx, float64(headerHeight), 0.5, -0.2)
}

func drawHourLines(dc *gg.Context, x float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for i := 0; i <= hours.total; i++ {
		y := float64(headerHeight) + float64(i)*cellHeight
		dc.DrawLine(x, y, x+float64(dayWidth), y)
		dc.Stroke()
	}
}

// drawEntry рисует урок, группу уроков или событие одним блоком
func drawEntry(dc *gg.Context, e model.Entry, loc *time.Location, x float64, dayWidth int, hours hourRange, cellHeight float64) {
	start := e.Start().In(loc)
	end := e.End().In(loc)
	startHour := float64(start.Hour()) + float64(start.Minute())/60
	endHour := float64(end.Hour()) + float64(end.Minute())/60
	if !sameDay(start, end) {
		endHour = float64(hours.end)
	}

	y := float64(headerHeight) + (startHour-float64(hours.start))*cellHeight
	height := (endHour - startHour) * cellHeight
	if height < minBlockHeight {
		height = minBlockHeight
	}

	fill := categoryColor(e.Category())
	width := float64(dayWidth) - float64(dayPaddingX*2)
	left := x + float64(dayPaddingX)

	// Тень
	dc.SetColor(blockShadowColor)
	dc.DrawRoundedRectangle(left+shadowOffset, y+2+shadowOffset, width, height-4, blockRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(left, y+2, width, height-4, blockRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(left, y+2, width, height-4, blockRadius)
	dc.Stroke()

	loadFont(dc, blockFontSize, FontStyleBold)
	dc.SetColor(blockTextColor)
	txtX := left + 6
	txtY := y + 18
	dc.DrawStringAnchored(start.Format("15:04"), txtX, txtY, 0, 0)

	if height > 30 {
		loadFont(dc, blockFontSize-1, FontStyleRegular)
		dc.DrawStringAnchored(truncate(entryLabel(e), maxLabelRunes), txtX, txtY+16, 0, 0)
	}
}

// entryLabel подпись блока: число уроков для группы, предмет для урока, название для остального
func entryLabel(e model.Entry) string {
	if e.IsGroup() {
		return formatting.LessonCount(e.Group.Count)
	}
	if e.Single.Category == model.CategorySchedule && e.Single.Subject != "" {
		return e.Single.Subject
	}
	return e.Single.Title
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func categoryColor(c model.Category) color.RGBA {
	if clr, ok := categoryColors[c]; ok {
		return clr
	}
	return categoryColors[model.CategoryOther]
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func drawCurrentTimeLine(dc *gg.Context, now time.Time, hours hourRange, cellHeight float64, dayWidth int) {
	current := float64(now.Hour()) + float64(now.Minute())/60
	if current < float64(hours.start) || current > float64(hours.end) {
		return
	}

	y := float64(headerHeight) + (current-float64(hours.start))*cellHeight
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2)
	dc.DrawLine(float64(leftLabelsWidth), y, float64(leftLabelsWidth+daysInWeek*dayWidth), y)
	dc.Stroke()
}

func drawLegend(dc *gg.Context, dayWidth int) {
	const boxW, boxH = 20.0, 14.0

	x := float64(leftLabelsWidth + daysInWeek*dayWidth + 12)
	y := float64(ImageHeight) - float64(len(legendOrder))*(boxH+12) - 20

	loadFont(dc, legendFontSize, FontStyleRegular)
	for _, c := range legendOrder {
		dc.SetColor(categoryColor(c))
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(legendTextColor)
		dc.DrawStringAnchored(c.Label(), x+boxW+8, y+boxH/2+1, 0, 0.2)
		y += boxH + 12
	}
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
