package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Регистрация ученика по пригласительному коду
	StatePupilFullname UserState = "pupil_sign_up_fullname"

	// Создание класса учителем
	StateClassGrade  UserState = "class_creation_grade"
	StateClassLetter UserState = "class_creation_letter"

	// Редактирование расписания дня
	StateScheduleLessons UserState = "schedule_editing_lessons"
)

// Key ключ состояния диалога: пара (чат, пользователь)
type Key struct {
	ChatID int64
	UserID int64
}

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}
