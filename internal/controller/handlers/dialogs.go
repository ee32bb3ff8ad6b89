package handlers

import (
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/common"
	"github.com/myschedule/class_schedule_bot/internal/controller/keyboards"
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/service"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает свободный текст в зависимости от
// состояния диалога
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	key := stateKey(update)
	currentState := h.stateManager.GetState(key)

	// Если нет активного состояния, игнорируем
	if currentState == state.StateNone {
		return
	}

	switch currentState {
	case state.StatePupilFullname:
		h.handleFullnameStep(ctx, b, update, key)
	case state.StateClassGrade:
		h.handleGradeStep(ctx, b, update, key)
	case state.StateClassLetter:
		h.handleLetterStep(ctx, b, update, key)
	case state.StateScheduleLessons:
		h.handleLessonsStep(ctx, b, update, key)
	default:
		h.logger.Warn("Unknown dialog state", zap.String("state", string(currentState)))
	}
}

// handleFullnameStep завершает регистрацию ученика по Фамилии и Имени
func (h *Handlers) handleFullnameStep(ctx context.Context, b *bot.Bot, update *models.Update, key state.Key) {
	fullName, ok := ExtractBareFullName(update.Message.Text)
	if !ok {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"Пожалуйста, введите вашу Фамилию и Имя.\n\nПример: Иванов Иван", nil)
		return
	}

	code, _ := h.stateManager.GetData(key, "invite_code")
	inviteCode, _ := code.(string)

	class, err := h.classService.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		h.logger.Error("Failed to resolve invite code", zap.Error(err))
		return
	}
	if class == nil {
		// Класс исчез между /start и вводом имени - молча выходим.
		// TODO: ответить ученику, что ссылка больше не действует
		return
	}

	if _, err := h.userService.RegisterPupil(ctx, update.Message.From.ID, fullName, class); err != nil {
		h.logger.Error("Failed to register pupil", zap.Error(err))
		return
	}

	h.stateManager.ClearState(key)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"Поздравляю, регистрация прошла успешно!\n\nТеперь вы можете взглянуть на свое расписание по кнопке внизу",
		keyboards.PupilMenu())
}

// handleGradeStep обрабатывает ввод цифры класса
func (h *Handlers) handleGradeStep(ctx context.Context, b *bot.Bot, update *models.Update, key state.Key) {
	text := update.Message.Text

	if text == keyboards.ButtonBack {
		h.deleteMessage(ctx, b, update)
		h.stateManager.ClearState(key)
		h.sendMessage(ctx, b, update.Message.Chat.ID, keyboards.GreetingText, keyboards.TeacherMenu())
		return
	}

	grade, err := strconv.Atoi(text)
	if err != nil || grade < 1 || grade > 11 {
		h.deleteMessage(ctx, b, update)
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Напишите только цифру класса!", nil)
		return
	}

	h.stateManager.SetData(key, "class_grade", grade)
	h.stateManager.SetState(key, state.StateClassLetter)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "Введите букву класса:", keyboards.BackMenu())
}

// handleLetterStep обрабатывает ввод буквы класса и создаёт класс
func (h *Handlers) handleLetterStep(ctx context.Context, b *bot.Bot, update *models.Update, key state.Key) {
	h.deleteMessage(ctx, b, update)

	text := update.Message.Text

	if text == keyboards.ButtonBack {
		h.stateManager.ClearState(key)
		h.sendMessage(ctx, b, update.Message.Chat.ID, keyboards.GreetingText, keyboards.TeacherMenu())
		return
	}

	// Ровно одна буква: разделители callback data и прочие символы
	// в букве класса недопустимы
	r, size := utf8.DecodeRuneInString(text)
	if size != len(text) || !unicode.IsLetter(r) {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Напишите только букву класса!", nil)
		return
	}

	gradeData, _ := h.stateManager.GetData(key, "class_grade")
	grade, ok := gradeData.(int)
	if !ok {
		h.logger.Error("Missing grade in class creation dialog",
			zap.Int64("telegram_id", update.Message.From.ID))
		h.stateManager.ClearState(key)
		return
	}

	class, err := h.classService.CreateClass(ctx, grade, text)
	if err != nil {
		h.logger.Error("Failed to create class",
			zap.Int("grade", grade),
			zap.String("letter", text),
			zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"❌ Не удалось создать класс. Возможно, такой уже существует.", nil)
		return
	}

	h.stateManager.ClearState(key)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"Класс "+class.Name()+" создан!\n\nВы можете пригласить учеников по QR-коду ниже",
		keyboards.TeacherMenu())

	common.SendInviteQR(ctx, b, update.Message.Chat.ID, h.botUsername, class, h.logger)
}

// handleLessonsStep заменяет уроки дня списком из сообщения и
// рассылает ученикам обновление
func (h *Handlers) handleLessonsStep(ctx context.Context, b *bot.Bot, update *models.Update, key state.Key) {
	h.deleteMessage(ctx, b, update)

	grade, letter, day, ok := h.editTarget(key)
	if !ok {
		h.logger.Error("Missing schedule editing data",
			zap.Int64("telegram_id", update.Message.From.ID))
		h.stateManager.ClearState(key)
		return
	}

	class, err := h.classService.GetByGradeAndLetter(ctx, grade, letter)
	if err != nil {
		h.logger.Error("Failed to resolve class for editing", zap.Error(err))
		return
	}
	if class == nil {
		// Класс удалили, пока учитель набирал список - молча выходим
		return
	}

	names := service.ParseLessonLines(update.Message.Text)

	lessons, err := h.scheduleService.ReplaceDayLessons(ctx, class.ID, day, names)
	if err != nil {
		h.logger.Error("Failed to replace day lessons", zap.Error(err))
		return
	}

	h.stateManager.ClearState(key)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		keyboards.DaySchedule(class, day, lessons),
		keyboards.EditDay(class.Grade, class.Letter, day, "Редактировать"))

	h.notifier.ScheduleUpdated(ctx, b, class, day, keyboards.ScheduleUpdateNotice(day, lessons))
}

// editTarget достаёт из состояния класс и день, выбранные перед
// редактированием
func (h *Handlers) editTarget(key state.Key) (grade int, letter string, day int, ok bool) {
	data := h.stateManager.GetAllData(key)
	if data == nil {
		return 0, "", 0, false
	}

	grade, gradeOK := data["class_grade"].(int)
	letter, letterOK := data["class_letter"].(string)
	day, dayOK := data["day"].(int)
	if !gradeOK || !letterOK || !dayOK {
		return 0, "", 0, false
	}

	return grade, letter, day, true
}
