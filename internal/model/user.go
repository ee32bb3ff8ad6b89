package model

import "time"

// UserRole роль пользователя в системе
type UserRole string

const (
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

type User struct {
	ID            int64     `json:"id"`
	Role          UserRole  `json:"role"`
	SchoolID      *int64    `json:"school_id"`       // Заполняется для учителей
	SchoolClassID *int64    `json:"school_class_id"` // Заполняется только для учеников
	TelegramID    int64     `json:"telegram_id"`
	FullName      string    `json:"full_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsTeacher проверяет что пользователь - учитель
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// IsPupil проверяет что пользователь - ученик
func (u *User) IsPupil() bool {
	return u.Role == RoleStudent
}
