package handlers

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/myschedule/class_schedule_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserService struct {
	byTelegramID map[int64]*model.User
	pupils       []*model.User
	teachers     []*model.User
}

func (f *fakeUserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return f.byTelegramID[telegramID], nil
}

func (f *fakeUserService) RegisterPupil(ctx context.Context, telegramID int64, fullName string, class *model.SchoolClass) (*model.User, error) {
	pupil := &model.User{
		ID:            int64(len(f.pupils) + 1),
		Role:          model.RoleStudent,
		SchoolID:      &class.SchoolID,
		SchoolClassID: &class.ID,
		TelegramID:    telegramID,
		FullName:      fullName,
	}
	f.pupils = append(f.pupils, pupil)
	return pupil, nil
}

func (f *fakeUserService) RegisterTeacher(ctx context.Context, telegramID int64, fullName string, schoolID int64) (*model.User, error) {
	teacher := &model.User{
		ID:         int64(len(f.teachers) + 1),
		Role:       model.RoleTeacher,
		SchoolID:   &schoolID,
		TelegramID: telegramID,
		FullName:   fullName,
	}
	f.teachers = append(f.teachers, teacher)
	return teacher, nil
}

type fakeClassService struct {
	school  *model.School
	byCode  map[string]*model.SchoolClass
	byName  map[string]*model.SchoolClass
	grades  []int
	created []*model.SchoolClass
}

func (f *fakeClassService) School() *model.School { return f.school }

func (f *fakeClassService) CreateClass(ctx context.Context, grade int, letter string) (*model.SchoolClass, error) {
	class := &model.SchoolClass{
		ID:         int64(len(f.created) + 1),
		SchoolID:   f.school.ID,
		Grade:      grade,
		Letter:     letter,
		InviteCode: strings.Repeat("A", model.InviteCodeLength),
	}
	f.created = append(f.created, class)
	return class, nil
}

func (f *fakeClassService) GetByInviteCode(ctx context.Context, code string) (*model.SchoolClass, error) {
	return f.byCode[code], nil
}

func (f *fakeClassService) GetByGradeAndLetter(ctx context.Context, grade int, letter string) (*model.SchoolClass, error) {
	return f.byName[fmt.Sprintf("%d:%s", grade, letter)], nil
}

func (f *fakeClassService) ListGrades(ctx context.Context) ([]int, error) {
	return f.grades, nil
}

type fakeScheduleService struct {
	classID int64
	day     int
	names   []string
	calls   int
}

func (f *fakeScheduleService) ReplaceDayLessons(ctx context.Context, classID int64, dayOfWeek int, subjectNames []string) ([]*model.Lesson, error) {
	f.classID = classID
	f.day = dayOfWeek
	f.names = subjectNames
	f.calls++

	lessons := make([]*model.Lesson, 0, len(subjectNames))
	for i, name := range subjectNames {
		lessons = append(lessons, &model.Lesson{Order: i + 1, SubjectName: name})
	}
	return lessons, nil
}

type fakeNotifier struct {
	calls int
	day   int
	text  string
}

func (f *fakeNotifier) ScheduleUpdated(ctx context.Context, sender service.MessageSender, class *model.SchoolClass, dayOfWeek int, text string) {
	f.calls++
	f.day = dayOfWeek
	f.text = text
}

type dialogEnv struct {
	handlers *Handlers
	bot      *bot.Bot
	sm       *state.Manager
	users    *fakeUserService
	classes  *fakeClassService
	schedule *fakeScheduleService
	notifier *fakeNotifier
}

// newDialogEnv собирает Handlers на фейковых сервисах и боте без сети:
// отправки уходят в никуда и только логируются, диалог это не ломает
func newDialogEnv(t *testing.T) *dialogEnv {
	b, err := bot.New("123456:TEST", bot.WithSkipGetMe())
	require.NoError(t, err)

	users := &fakeUserService{byTelegramID: make(map[int64]*model.User)}
	classes := &fakeClassService{
		school: &model.School{ID: 1, Name: "Моя школа"},
		byCode: make(map[string]*model.SchoolClass),
		byName: make(map[string]*model.SchoolClass),
	}
	schedule := &fakeScheduleService{}
	notifier := &fakeNotifier{}
	sm := state.NewManager()

	return &dialogEnv{
		handlers: NewHandlers(users, classes, schedule, notifier, sm, 1, "schedule_bot", zap.NewNop()),
		bot:      b,
		sm:       sm,
		users:    users,
		classes:  classes,
		schedule: schedule,
		notifier: notifier,
	}
}

func textUpdate(chatID, userID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   1,
			Text: text,
			Chat: models.Chat{ID: chatID},
			From: &models.User{ID: userID},
		},
	}
}

func (e *dialogEnv) send(text string) {
	e.handlers.HandleTextMessage(context.Background(), e.bot, textUpdate(1, 42, text))
}

func TestTextMessageWithoutStateIgnored(t *testing.T) {
	env := newDialogEnv(t)

	env.send("Иванов Иван")

	assert.Equal(t, state.StateNone, env.sm.GetState(state.Key{ChatID: 1, UserID: 42}))
	assert.Empty(t, env.users.pupils)
}

func TestTextMessageSkipsCommands(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateClassGrade)

	env.send("/start")

	// Команды обрабатываются своими handlers, состояние не трогается
	assert.Equal(t, state.StateClassGrade, env.sm.GetState(key))
}

func TestGradeStepRejectsNonNumber(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateClassGrade)

	env.send("abc")

	assert.Equal(t, state.StateClassGrade, env.sm.GetState(key))
	_, ok := env.sm.GetData(key, "class_grade")
	assert.False(t, ok)
}

func TestGradeStepRejectsOutOfRange(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateClassGrade)

	env.send("12")
	assert.Equal(t, state.StateClassGrade, env.sm.GetState(key))

	env.send("0")
	assert.Equal(t, state.StateClassGrade, env.sm.GetState(key))
}

func TestGradeStepAdvancesToLetter(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateClassGrade)

	env.send("11")

	assert.Equal(t, state.StateClassLetter, env.sm.GetState(key))
	grade, ok := env.sm.GetData(key, "class_grade")
	require.True(t, ok)
	assert.Equal(t, 11, grade)
}

func TestGradeStepCancel(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateClassGrade)

	env.send("Назад")

	assert.Equal(t, state.StateNone, env.sm.GetState(key))
	assert.Empty(t, env.classes.created)
}

func TestLetterStepRejectsBadInput(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateClassLetter)
	env.sm.SetData(key, "class_grade", 9)

	// Две буквы, цифра и разделитель callback data - всё мимо
	for _, input := range []string{"АБ", "5", ":"} {
		env.send(input)
		assert.Equal(t, state.StateClassLetter, env.sm.GetState(key), "input %q", input)
		assert.Empty(t, env.classes.created, "input %q", input)
	}
}

func TestLetterStepCreatesClass(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateClassLetter)
	env.sm.SetData(key, "class_grade", 9)

	env.send("А")

	require.Len(t, env.classes.created, 1)
	assert.Equal(t, 9, env.classes.created[0].Grade)
	assert.Equal(t, "А", env.classes.created[0].Letter)
	assert.Equal(t, state.StateNone, env.sm.GetState(key))
}

func TestFullnameStepRejectsInvalid(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	code := strings.Repeat("Q", model.InviteCodeLength)
	env.classes.byCode[code] = &model.SchoolClass{ID: 5, SchoolID: 1}
	env.sm.SetState(key, state.StatePupilFullname)
	env.sm.SetData(key, "invite_code", code)

	env.send("иванов иван")

	assert.Equal(t, state.StatePupilFullname, env.sm.GetState(key))
	assert.Empty(t, env.users.pupils)
}

func TestFullnameStepRegistersPupil(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	code := strings.Repeat("Q", model.InviteCodeLength)
	env.classes.byCode[code] = &model.SchoolClass{ID: 5, SchoolID: 1}
	env.sm.SetState(key, state.StatePupilFullname)
	env.sm.SetData(key, "invite_code", code)

	env.send("Иванов Иван")

	require.Len(t, env.users.pupils, 1)
	assert.Equal(t, "Иванов Иван", env.users.pupils[0].FullName)
	assert.Equal(t, int64(5), *env.users.pupils[0].SchoolClassID)
	assert.Equal(t, state.StateNone, env.sm.GetState(key))
}

func TestFullnameStepStaleInviteSilent(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StatePupilFullname)
	env.sm.SetData(key, "invite_code", strings.Repeat("Q", model.InviteCodeLength))

	// Код никуда не ведёт: класс удалили после /start
	env.send("Иванов Иван")

	assert.Empty(t, env.users.pupils)
}

func TestLessonsStepReplacesAndNotifies(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	class := &model.SchoolClass{ID: 7, SchoolID: 1, Grade: 9, Letter: "А"}
	env.classes.byName["9:А"] = class
	env.sm.SetState(key, state.StateScheduleLessons)
	env.sm.SetData(key, "class_grade", 9)
	env.sm.SetData(key, "class_letter", "А")
	env.sm.SetData(key, "day", 2)

	env.send("Математика\n\nИстория")

	assert.Equal(t, int64(7), env.schedule.classID)
	assert.Equal(t, 2, env.schedule.day)
	assert.Equal(t, []string{"Математика", "История"}, env.schedule.names)
	assert.Equal(t, state.StateNone, env.sm.GetState(key))

	assert.Equal(t, 1, env.notifier.calls)
	assert.Equal(t, 2, env.notifier.day)
	assert.Contains(t, env.notifier.text, "Среда")
}

func TestLessonsStepStaleClassSilent(t *testing.T) {
	env := newDialogEnv(t)
	key := state.Key{ChatID: 1, UserID: 42}
	env.sm.SetState(key, state.StateScheduleLessons)
	env.sm.SetData(key, "class_grade", 9)
	env.sm.SetData(key, "class_letter", "А")
	env.sm.SetData(key, "day", 2)

	// Класс удалили, пока учитель набирал список
	env.send("Математика")

	assert.Zero(t, env.schedule.calls)
	assert.Zero(t, env.notifier.calls)
}
