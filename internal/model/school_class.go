package model

import (
	"fmt"
	"time"
)

// SchoolClass школьный класс: 1 "А", 2 "Б", ..., 11 "Г"
type SchoolClass struct {
	ID         int64     `json:"id"`
	SchoolID   int64     `json:"school_id"`
	Grade      int       `json:"grade"`  // Цифра класса (1-11)
	Letter     string    `json:"letter"` // Буква класса (А, Б, В, ...)
	InviteCode string    `json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// Name возвращает имя класса в формате `11 "А"`
func (c *SchoolClass) Name() string {
	return fmt.Sprintf("%d \"%s\"", c.Grade, c.Letter)
}
