// Package callbacktypes содержит общие зависимости callback handlers.
// Выделен в отдельный пакет, чтобы подпакеты callbacks не зависели
// друг от друга по кругу.
package callbacktypes

import (
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/service"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService     *service.UserService
	ClassService    *service.ClassService
	ScheduleService *service.ScheduleService
	StateManager    *state.Manager
	BotUsername     string
	Logger          *zap.Logger
}
