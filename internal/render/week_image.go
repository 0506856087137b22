package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

// Константы размеров и отступов
const (
	imageWidth      = 1000
	imageHeight     = 700
	headerHeight    = 60
	leftLabelsWidth = 70
	dayPaddingX     = 6
	totalDays       = 5 // Monday..Friday

	gridStartHour = 8
	gridEndHour   = 18
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}

	blockFreeColor   = color.RGBA{133, 193, 85, 120}
	meetingColor     = color.RGBA{255, 182, 193, 255}
	meetingTextColor = color.RGBA{120, 40, 50, 255}
)

// WeekImage рисует сетку рабочей недели: блоки офисных часов и
// назначенные встречи. Возвращает PNG
func WeekImage(spec schedule.Spec, meetings []*model.Meeting, at time.Time) ([]byte, error) {
	weekStart := mondayOf(at)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	// Фон
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDays
	gridHeight := float64(imageHeight - headerHeight)
	minuteHeight := gridHeight / float64((gridEndHour-gridStartHour)*60)

	// Колонки дней с чередующейся заливкой и подписями
	for day := 0; day < totalDays; day++ {
		x := float64(leftLabelsWidth) + float64(day)*dayWidth

		if day%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, gridHeight)
		dc.Fill()

		date := weekStart.AddDate(0, 0, day)
		dc.SetColor(textColor)
		dc.DrawStringAnchored(date.Format("Mon 02 Jan"), x+dayWidth/2, headerHeight/2, 0.5, 0.5)
	}

	// Часовая сетка
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		y := float64(headerHeight) + float64((hour-gridStartHour)*60)*minuteHeight

		dc.SetColor(hourLineColor)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()

		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hour), leftLabelsWidth/2, y, 0.5, 0.5)
	}

	// Блоки офисных часов
	for _, block := range spec.Blocks() {
		day := weekdayColumn(block.Weekday)
		if day < 0 {
			continue
		}
		drawInterval(dc, dayWidth, minuteHeight, day, int(block.Start), int(block.End), blockFreeColor)
	}

	// Встречи поверх блоков
	for _, m := range meetings {
		day := dayColumn(weekStart, m.MeetingDate)
		if day < 0 {
			continue
		}

		drawInterval(dc, dayWidth, minuteHeight, day, int(m.StartTime), int(m.EndTime), meetingColor)

		x := float64(leftLabelsWidth) + float64(day)*dayWidth + dayPaddingX*2
		y := float64(headerHeight) + float64(int(m.StartTime)-gridStartHour*60)*minuteHeight
		dc.SetColor(meetingTextColor)
		dc.DrawStringAnchored(fmt.Sprintf("%s-%s", m.StartTime, m.EndTime), x, y+8, 0, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), nil
}

func drawInterval(dc *gg.Context, dayWidth, minuteHeight float64, day, startMin, endMin int, fill color.Color) {
	// Обрезаем по границам сетки
	if startMin < gridStartHour*60 {
		startMin = gridStartHour * 60
	}
	if endMin > gridEndHour*60 {
		endMin = gridEndHour * 60
	}
	if startMin >= endMin {
		return
	}

	x := float64(leftLabelsWidth) + float64(day)*dayWidth + dayPaddingX
	y := float64(headerHeight) + float64(startMin-gridStartHour*60)*minuteHeight
	h := float64(endMin-startMin) * minuteHeight

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, dayWidth-2*dayPaddingX, h, 4)
	dc.Fill()
}

// weekdayColumn возвращает номер колонки для дня недели, -1 для выходных
func weekdayColumn(d time.Weekday) int {
	switch d {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		return int(d) - 1
	default:
		return -1
	}
}

// dayColumn находит колонку по календарной дате. Сравниваем компоненты
// даты, а не моменты времени: дата встречи приходит из базы в UTC,
// начало недели считается в локальной зоне
func dayColumn(weekStart time.Time, t time.Time) int {
	for i := 0; i < totalDays; i++ {
		d := weekStart.AddDate(0, 0, i)
		if d.Year() == t.Year() && d.Month() == t.Month() && d.Day() == t.Day() {
			return i
		}
	}
	return -1
}

func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
