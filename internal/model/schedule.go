package model

import "time"

// ClassSchedule «версия» расписания класса. Обычно она одна (активная),
// но схема позволяет хранить несколько именованных версий.
type ClassSchedule struct {
	ID            int64     `json:"id"`
	SchoolClassID int64     `json:"school_class_id"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Дни недели в хранилище: 0 - понедельник ... 5 - суббота.
// В интерфейсе бота показываются только будние дни.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// DayName возвращает русское название дня недели (0 - понедельник).
// Воскресенье не хранится в расписании, но нужно для «Сегодня: ...».
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "Неизвестный день"
	}
	return dayNames[day]
}

// WeekdaysShown количество дней, отображаемых в клавиатурах (пн-пт)
const WeekdaysShown = 5

// ScheduleDay один день недели в составе расписания
type ScheduleDay struct {
	ID         int64 `json:"id"`
	ScheduleID int64 `json:"schedule_id"`
	DayOfWeek  int   `json:"day_of_week"`
}

// Lesson конкретный урок в составе дня
type Lesson struct {
	ID          int64      `json:"id"`
	DayID       int64      `json:"day_id"`
	SubjectName string     `json:"subject_name"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Order       int        `json:"order"`
}
