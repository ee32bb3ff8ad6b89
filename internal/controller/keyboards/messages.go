package keyboards

import (
	"fmt"
	"strings"
	"time"

	"github.com/myschedule/class_schedule_bot/internal/model"
)

// Приветствия и подписи, общие для нескольких обработчиков
const (
	GreetingText = "Привет! 👋\nЯ твой помощник с расписанием. Буду держать тебя в курсе, что, где и когда! Заглядывай сюда, чтобы всё знать первым. 🚀"

	PupilGreetingText = "Привет! 👋 Смотри свое расписание"

	InviteCaption = "Подключайся к Моему Расписанию!"
)

// DayPickerText заголовок выбора дня с подсказкой про сегодня
func DayPickerText(now time.Time) string {
	// time.Weekday начинает неделю с воскресенья, расписание - с понедельника
	today := (int(now.Weekday()) + 6) % 7
	return fmt.Sprintf("🗓 Выберите день для расписания.\n\nСегодня: <b>%s</b>", model.DayName(today))
}

// LessonList нумерованный список уроков: "1. Математика\n2. История"
func LessonList(lessons []*model.Lesson) string {
	lines := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		lines = append(lines, fmt.Sprintf("%d. %s", lesson.Order, lesson.SubjectName))
	}
	return strings.Join(lines, "\n")
}

// LessonNames названия уроков по строке на урок, без нумерации
func LessonNames(lessons []*model.Lesson) string {
	lines := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		lines = append(lines, lesson.SubjectName)
	}
	return strings.Join(lines, "\n")
}

// PupilDaySchedule расписание дня глазами ученика
func PupilDaySchedule(day int, lessons []*model.Lesson) string {
	return fmt.Sprintf(
		"Вот твое расписание на <b>%s</b>:\n\n%s",
		model.DayName(day), LessonList(lessons),
	)
}

// ClassInfo карточка класса со списком учеников
func ClassInfo(class *model.SchoolClass, pupils []*model.User) string {
	pupilList := "Тут пока пусто..."
	if len(pupils) > 0 {
		lines := make([]string, 0, len(pupils))
		for i, pupil := range pupils {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, pupil.FullName))
		}
		pupilList = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(
		"Класс %s\n\nУченики:\n%s\n\nВы можете сгенерировать QR-код для приглашения учеников по кнопке ниже",
		class.Name(), pupilList,
	)
}

// DaySchedule расписание дня для класса с заголовком
func DaySchedule(class *model.SchoolClass, day int, lessons []*model.Lesson) string {
	return fmt.Sprintf(
		"Расписание на <b>%s</b> у %s:\n\n%s",
		model.DayName(day), class.Name(), LessonList(lessons),
	)
}

// ScheduleUpdateNotice уведомление ученику об изменении расписания
func ScheduleUpdateNotice(day int, lessons []*model.Lesson) string {
	return fmt.Sprintf(
		"🚨 У тебя обновилось расписание 📢\nТвое новое расписание на <b>%s</b>:\n\n%s",
		model.DayName(day), LessonList(lessons),
	)
}
