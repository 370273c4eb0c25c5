package callbacks

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/common"
)

// HandleToday возвращает агенду на сегодняшний день
func HandleToday(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	showDay(ctx, b, callback, h, h.Today())
}

// HandleDay показывает день из callback data (day:2024-10-07)
func HandleDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	date, err := common.ParseDateFromCallback(callback.Data, h.Calendar.Location())
	if err != nil {
		h.Logger.Warn("Bad day callback", zap.String("data", callback.Data), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}
	showDay(ctx, b, callback, h, date)
}

// HandleWeek отправляет картинку недели (week:2024-10-07)
func HandleWeek(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	date, err := common.ParseDateFromCallback(callback.Data, h.Calendar.Location())
	if err != nil {
		h.Logger.Warn("Bad week callback", zap.String("data", callback.Data), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	if err := common.ShowWeek(ctx, b, h, msg.Chat.ID, date); err != nil {
		h.Logger.Error("Failed to show week", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func showDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, date time.Time) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	if err := common.ShowDay(ctx, b, h, msg.Chat.ID, msg, date); err != nil {
		h.Logger.Error("Failed to show day", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}
	common.AnswerCallback(ctx, b, callback.ID, "")
}
