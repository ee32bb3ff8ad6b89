package keyboards

import (
	"testing"
	"time"

	"github.com/myschedule/class_schedule_bot/internal/controller/callbackdata"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeListOrder(t *testing.T) {
	markup := GradeList([]int{5, 11, 9}, callbackdata.PurposeSchedule)
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 3)

	assert.Equal(t, "11 Параллель", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "9 Параллель", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "5 Параллель", markup.InlineKeyboard[2][0].Text)

	// Кнопка несёт выбранную параллель и цель списка
	action, err := callbackdata.Decode(markup.InlineKeyboard[0][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, callbackdata.GradeSelect{Grade: 11, Purpose: callbackdata.PurposeSchedule}, action)
}

func TestGradeListEmpty(t *testing.T) {
	assert.Nil(t, GradeList(nil, callbackdata.PurposeClassrooms))
}

func TestGradeListDoesNotMutateInput(t *testing.T) {
	grades := []int{5, 11, 9}
	GradeList(grades, callbackdata.PurposeClassrooms)
	assert.Equal(t, []int{5, 11, 9}, grades)
}

func TestLetterListOrder(t *testing.T) {
	markup := LetterList(11, []string{"в", "А", "Б"}, callbackdata.PurposeClassrooms)
	require.Len(t, markup.InlineKeyboard, 4)

	assert.Equal(t, `11 "А" класс`, markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, `11 "Б" класс`, markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, `11 "в" класс`, markup.InlineKeyboard[2][0].Text)

	// Последний ряд - возврат к выбору параллели
	back, err := callbackdata.Decode(markup.InlineKeyboard[3][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, callbackdata.ClassSelect{Purpose: callbackdata.PurposeClassrooms, Back: true}, back)
}

func TestPupilWeekLayout(t *testing.T) {
	markup := PupilWeek()
	require.Len(t, markup.InlineKeyboard, model.WeekdaysShown+1)

	assert.Equal(t, "Понедельник", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "Пятница", markup.InlineKeyboard[4][0].Text)

	last, err := callbackdata.Decode(markup.InlineKeyboard[5][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, callbackdata.PupilWeekImage{}, last)
}

func TestAdminWeekCarriesClass(t *testing.T) {
	class := &model.SchoolClass{Grade: 9, Letter: "Б"}
	markup := AdminWeek(class)
	require.Len(t, markup.InlineKeyboard, model.WeekdaysShown+1)

	action, err := callbackdata.Decode(markup.InlineKeyboard[2][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, callbackdata.AdminDay{Grade: 9, Letter: "Б", Day: 2}, action)

	back, err := callbackdata.Decode(markup.InlineKeyboard[5][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, callbackdata.AdminDay{Grade: 9, Letter: "Б", Back: true}, back)
}

func TestDayPickerText(t *testing.T) {
	// 2026-09-01 - вторник
	tuesday := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, DayPickerText(tuesday), "Вторник")

	sunday := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, DayPickerText(sunday), "Воскресенье")
}

func TestLessonList(t *testing.T) {
	lessons := []*model.Lesson{
		{Order: 1, SubjectName: "Математика"},
		{Order: 2, SubjectName: "История"},
	}

	assert.Equal(t, "1. Математика\n2. История", LessonList(lessons))
	assert.Equal(t, "Математика\nИстория", LessonNames(lessons))
	assert.Empty(t, LessonList(nil))
}

func TestClassInfo(t *testing.T) {
	class := &model.SchoolClass{Grade: 11, Letter: "А"}

	empty := ClassInfo(class, nil)
	assert.Contains(t, empty, `Класс 11 "А"`)
	assert.Contains(t, empty, "Тут пока пусто...")

	full := ClassInfo(class, []*model.User{
		{FullName: "Иванов Иван"},
		{FullName: "Петров Пётр"},
	})
	assert.Contains(t, full, "1. Иванов Иван")
	assert.Contains(t, full, "2. Петров Пётр")
}
