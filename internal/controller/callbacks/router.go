package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/common"
	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/common/keyboard"
)

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	case data == keyboard.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")
	case data == keyboard.Today:
		HandleToday(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.DayPrefix):
		HandleDay(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.WeekPrefix):
		HandleWeek(ctx, b, callback, h)
	default:
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Неизвестная команда")
		return
	}

	h.Logger.Info("Callback routed successfully", zap.String("data", data))
}
