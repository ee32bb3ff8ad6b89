package render

import (
	"bytes"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Константы размеров и отступов
const (
	imageWidth   = 1400
	imageHeight  = 900
	headerHeight = 90
	dayPaddingX  = 14.0
	rowHeight    = 44.0
	cellRadius   = 6.0
)

// Константы шрифтов
const (
	titleFontSize  = 30.0
	dayFontSize    = 24.0
	lessonFontSize = 19.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	dayHeaderColor = color.RGBA{60, 64, 70, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{226, 228, 231, 255}
	lessonColor    = color.RGBA{20, 24, 28, 230}
	emptyDayColor  = color.RGBA{150, 154, 158, 255}
)

var (
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func init() {
	// Go-шрифты покрывают кириллицу и не требуют внешних файлов
	regularFont, _ = opentype.Parse(goregular.TTF)
	boldFont, _ = opentype.Parse(gobold.TTF)
}

// setFontFace устанавливает шрифт нужного размера
// с fallback на встроенный basicfont
func setFontFace(dc *gg.Context, f *opentype.Font, size float64) {
	if f != nil {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
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

// WeekImage рисует расписание недели класса таблицей пн-пт.
// week индексируется днём недели (0 - понедельник).
func WeekImage(className string, week [][]*model.Lesson) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	drawTitle(dc, className)

	dayWidth := float64(imageWidth) / float64(model.WeekdaysShown)
	for day := 0; day < model.WeekdaysShown && day < len(week); day++ {
		drawDayColumn(dc, day, dayWidth, week[day])
	}

	return encodeImage(dc)
}

func drawTitle(dc *gg.Context, className string) {
	setFontFace(dc, boldFont, titleFontSize)
	dc.SetColor(textColor)
	dc.DrawStringAnchored("Расписание "+className, imageWidth/2, headerHeight/2, 0.5, 0.5)
}

func drawDayColumn(dc *gg.Context, day int, dayWidth float64, lessons []*model.Lesson) {
	x := float64(day) * dayWidth
	top := float64(headerHeight)

	// Чередуем фон колонок, чтобы дни читались
	if day%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRoundedRectangle(x+dayPaddingX/2, top, dayWidth-dayPaddingX, imageHeight-top-dayPaddingX, cellRadius)
	dc.Fill()

	setFontFace(dc, boldFont, dayFontSize)
	dc.SetColor(dayHeaderColor)
	dc.DrawStringAnchored(model.DayName(day), x+dayWidth/2, top+rowHeight/2, 0.5, 0.5)

	setFontFace(dc, regularFont, lessonFontSize)

	if len(lessons) == 0 {
		dc.SetColor(emptyDayColor)
		dc.DrawStringAnchored("нет уроков", x+dayWidth/2, top+rowHeight*1.5, 0.5, 0.5)
		return
	}

	dc.SetColor(lessonColor)
	for i, lesson := range lessons {
		label := truncate(lesson.SubjectName, dc, dayWidth-2*dayPaddingX)
		y := top + rowHeight*(1.5+float64(i))
		dc.DrawStringAnchored(label, x+dayWidth/2, y, 0.5, 0.5)
	}
}

// truncate укорачивает название урока до ширины колонки
func truncate(s string, dc *gg.Context, maxWidth float64) string {
	runes := []rune(s)
	for len(runes) > 1 {
		w, _ := dc.MeasureString(string(runes))
		if w <= maxWidth {
			break
		}
		runes = runes[:len(runes)-1]
	}
	if string(runes) != s {
		return string(runes) + "…"
	}
	return s
}

func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
