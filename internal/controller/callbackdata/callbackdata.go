// Package callbackdata кодирует нажатия inline-кнопок.
//
// Каждое действие - свой типизированный вариант закрытого объединения
// Action. Формат на проводе тот же, что и у остальных callback data:
// "kind:field:field". Декодирование происходит один раз на границе
// шлюза, дальше обработчики работают только с типами.
package callbackdata

import (
	"fmt"
	"strconv"
	"strings"
)

// Purpose назначение списка классов: просмотр состава или расписания
type Purpose string

const (
	PurposeClassrooms Purpose = "view_classrooms"
	PurposeSchedule   Purpose = "view_schedule"
)

// Action закрытое объединение действий меню
type Action interface {
	Pack() string
	isAction()
}

// ClassMenu действие из меню "Класс": просмотр всех или создание
type ClassMenu struct {
	Create bool
}

// GradeSelect выбор параллели
type GradeSelect struct {
	Grade   int
	Purpose Purpose
}

// ClassSelect выбор конкретного класса параллели
type ClassSelect struct {
	Grade   int
	Letter  string
	Purpose Purpose
	Back    bool
}

// ClassCardOp операция в карточке класса
type ClassCardOp string

const (
	ClassCardQR     ClassCardOp = "qr"
	ClassCardEdit   ClassCardOp = "edit"
	ClassCardDelete ClassCardOp = "delete"
	ClassCardBack   ClassCardOp = "back"
)

// ClassCard действие в карточке класса
type ClassCard struct {
	Grade  int
	Letter string
	Op     ClassCardOp
}

// PupilDay выбор дня в расписании ученика
type PupilDay struct {
	Day  int
	Back bool
}

// PupilWeekImage запрос расписания недели картинкой
type PupilWeekImage struct{}

// AdminDay выбор дня расписания класса учителем
type AdminDay struct {
	Grade  int
	Letter string
	Day    int
	Back   bool
}

// EditDay переход к редактированию расписания дня
type EditDay struct {
	Grade  int
	Letter string
	Day    int
	Back   bool
}

func (ClassMenu) isAction()      {}
func (GradeSelect) isAction()    {}
func (ClassSelect) isAction()    {}
func (ClassCard) isAction()      {}
func (PupilDay) isAction()       {}
func (PupilWeekImage) isAction() {}
func (AdminDay) isAction()       {}
func (EditDay) isAction()        {}

// Префиксы callback data
const (
	prefixClassMenu = "class_menu"
	prefixGrade     = "grade"
	prefixClass     = "class"
	prefixClassCard = "class_card"
	prefixPupilDay  = "pupil_day"
	prefixPupilWeek = "pupil_week"
	prefixAdminDay  = "admin_day"
	prefixEditDay   = "edit_day"
)

func (a ClassMenu) Pack() string {
	op := "view_all"
	if a.Create {
		op = "create"
	}
	return join(prefixClassMenu, op)
}

func (a GradeSelect) Pack() string {
	return join(prefixGrade, strconv.Itoa(a.Grade), string(a.Purpose))
}

func (a ClassSelect) Pack() string {
	return join(prefixClass, strconv.Itoa(a.Grade), a.Letter, string(a.Purpose), packBool(a.Back))
}

func (a ClassCard) Pack() string {
	return join(prefixClassCard, strconv.Itoa(a.Grade), a.Letter, string(a.Op))
}

func (a PupilDay) Pack() string {
	return join(prefixPupilDay, strconv.Itoa(a.Day), packBool(a.Back))
}

func (a PupilWeekImage) Pack() string {
	return prefixPupilWeek
}

func (a AdminDay) Pack() string {
	return join(prefixAdminDay, strconv.Itoa(a.Grade), a.Letter, strconv.Itoa(a.Day), packBool(a.Back))
}

func (a EditDay) Pack() string {
	return join(prefixEditDay, strconv.Itoa(a.Grade), a.Letter, strconv.Itoa(a.Day), packBool(a.Back))
}

// Decode разбирает callback data в типизированное действие
func Decode(data string) (Action, error) {
	parts := strings.Split(data, ":")
	kind, fields := parts[0], parts[1:]

	switch kind {
	case prefixClassMenu:
		if len(fields) != 1 {
			return nil, errFormat(data)
		}
		return ClassMenu{Create: fields[0] == "create"}, nil

	case prefixGrade:
		if len(fields) != 2 {
			return nil, errFormat(data)
		}
		grade, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errFormat(data)
		}
		return GradeSelect{Grade: grade, Purpose: Purpose(fields[1])}, nil

	case prefixClass:
		if len(fields) != 4 {
			return nil, errFormat(data)
		}
		grade, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errFormat(data)
		}
		return ClassSelect{
			Grade:   grade,
			Letter:  fields[1],
			Purpose: Purpose(fields[2]),
			Back:    unpackBool(fields[3]),
		}, nil

	case prefixClassCard:
		if len(fields) != 3 {
			return nil, errFormat(data)
		}
		grade, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errFormat(data)
		}
		return ClassCard{Grade: grade, Letter: fields[1], Op: ClassCardOp(fields[2])}, nil

	case prefixPupilDay:
		if len(fields) != 2 {
			return nil, errFormat(data)
		}
		day, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errFormat(data)
		}
		return PupilDay{Day: day, Back: unpackBool(fields[1])}, nil

	case prefixPupilWeek:
		if len(fields) != 0 {
			return nil, errFormat(data)
		}
		return PupilWeekImage{}, nil

	case prefixAdminDay:
		return decodeDayAction(data, fields, func(grade int, letter string, day int, back bool) Action {
			return AdminDay{Grade: grade, Letter: letter, Day: day, Back: back}
		})

	case prefixEditDay:
		return decodeDayAction(data, fields, func(grade int, letter string, day int, back bool) Action {
			return EditDay{Grade: grade, Letter: letter, Day: day, Back: back}
		})
	}

	return nil, fmt.Errorf("unknown callback kind %q", kind)
}

func decodeDayAction(data string, fields []string, build func(int, string, int, bool) Action) (Action, error) {
	if len(fields) != 4 {
		return nil, errFormat(data)
	}
	grade, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, errFormat(data)
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, errFormat(data)
	}
	return build(grade, fields[1], day, unpackBool(fields[3])), nil
}

func join(parts ...string) string {
	return strings.Join(parts, ":")
}

func packBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func unpackBool(s string) bool {
	return s == "1"
}

func errFormat(data string) error {
	return fmt.Errorf("invalid callback data %q", data)
}
