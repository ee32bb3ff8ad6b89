// Package keyboards собирает клавиатуры и тексты сообщений из доменных
// сущностей. Функции чистые: никакого I/O, результат полностью
// определяется аргументами.
package keyboards

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbackdata"
	"github.com/myschedule/class_schedule_bot/internal/model"
)

// Тексты кнопок reply-клавиатур. Обработчики меню матчатся на них
// точным сравнением.
const (
	ButtonTeacherClasses  = "Класс 📖"
	ButtonTeacherSchedule = "Расписание 📝"
	ButtonPupilSchedule   = "Моё расписание 📝"
	ButtonBack            = "Назад"
)

// TeacherMenu главное reply-меню учителя
func TeacherMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{Text: ButtonTeacherClasses},
				{Text: ButtonTeacherSchedule},
			},
		},
		ResizeKeyboard: true,
	}
}

// PupilMenu главное reply-меню ученика
func PupilMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{Text: ButtonPupilSchedule},
			},
		},
		ResizeKeyboard: true,
	}
}

// BackMenu reply-клавиатура с единственной кнопкой "Назад"
func BackMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{Text: ButtonBack},
			},
		},
		ResizeKeyboard: true,
	}
}

// ClassMenuActions действия с классами: просмотр и создание
func ClassMenuActions() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "Просмотр классов", CallbackData: callbackdata.ClassMenu{}.Pack()}},
			{{Text: "Создать новый класс", CallbackData: callbackdata.ClassMenu{Create: true}.Pack()}},
		},
	}
}

// GradeList список параллелей по убыванию.
// Возвращает nil если классов ещё нет.
func GradeList(grades []int, purpose callbackdata.Purpose) *models.InlineKeyboardMarkup {
	if len(grades) == 0 {
		return nil
	}

	sorted := append([]int(nil), grades...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	rows := make([][]models.InlineKeyboardButton, 0, len(sorted))
	for _, grade := range sorted {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%d Параллель", grade),
			CallbackData: callbackdata.GradeSelect{Grade: grade, Purpose: purpose}.Pack(),
		}})
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// LetterList классы параллели, буквы по алфавиту без учёта регистра
func LetterList(grade int, letters []string, purpose callbackdata.Purpose) *models.InlineKeyboardMarkup {
	sorted := append([]string(nil), letters...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})

	rows := make([][]models.InlineKeyboardButton, 0, len(sorted)+1)
	for _, letter := range sorted {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%d \"%s\" класс", grade, letter),
			CallbackData: callbackdata.ClassSelect{Grade: grade, Letter: letter, Purpose: purpose}.Pack(),
		}})
	}

	rows = append(rows, []models.InlineKeyboardButton{{
		Text:         ButtonBack,
		CallbackData: callbackdata.ClassSelect{Purpose: purpose, Back: true}.Pack(),
	}})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// ClassCard действия в карточке класса
func ClassCard(class *model.SchoolClass) *models.InlineKeyboardMarkup {
	row := func(text string, op callbackdata.ClassCardOp) []models.InlineKeyboardButton {
		return []models.InlineKeyboardButton{{
			Text:         text,
			CallbackData: callbackdata.ClassCard{Grade: class.Grade, Letter: class.Letter, Op: op}.Pack(),
		}}
	}

	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			row("Сгенерировать QR-код", callbackdata.ClassCardQR),
			row("Редактировать", callbackdata.ClassCardEdit),
			row("Удалить", callbackdata.ClassCardDelete),
			row(ButtonBack, callbackdata.ClassCardBack),
		},
	}
}

// PupilWeek выбор дня расписания учеником, пн-пт
func PupilWeek() *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, model.WeekdaysShown+1)
	for day := 0; day < model.WeekdaysShown; day++ {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         model.DayName(day),
			CallbackData: callbackdata.PupilDay{Day: day}.Pack(),
		}})
	}

	rows = append(rows, []models.InlineKeyboardButton{{
		Text:         "📸 Неделя картинкой",
		CallbackData: callbackdata.PupilWeekImage{}.Pack(),
	}})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BackToPupilDays возврат к выбору дня
func BackToPupilDays() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: ButtonBack, CallbackData: callbackdata.PupilDay{Back: true}.Pack()}},
		},
	}
}

// AdminWeek выбор дня расписания класса учителем, пн-пт
func AdminWeek(class *model.SchoolClass) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, model.WeekdaysShown+1)
	for day := 0; day < model.WeekdaysShown; day++ {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         model.DayName(day),
			CallbackData: callbackdata.AdminDay{Grade: class.Grade, Letter: class.Letter, Day: day}.Pack(),
		}})
	}

	rows = append(rows, []models.InlineKeyboardButton{{
		Text:         ButtonBack,
		CallbackData: callbackdata.AdminDay{Grade: class.Grade, Letter: class.Letter, Back: true}.Pack(),
	}})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// EditDay кнопка создания/редактирования расписания дня с возвратом
func EditDay(grade int, letter string, day int, buttonText string) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{
				Text:         buttonText,
				CallbackData: callbackdata.EditDay{Grade: grade, Letter: letter, Day: day}.Pack(),
			}},
			{{
				Text:         ButtonBack,
				CallbackData: callbackdata.EditDay{Grade: grade, Letter: letter, Back: true}.Pack(),
			}},
		},
	}
}
