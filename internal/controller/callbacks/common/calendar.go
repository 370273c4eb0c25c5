package common

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/school_calendar/internal/render"
)

// ShowDay показывает агенду дня. Если передано сообщение бота, оно редактируется,
// иначе отправляется новое
func ShowDay(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, msg *models.Message, date time.Time) error {
	items, err := h.Calendar.Day(ctx, date)
	if err != nil {
		return fmt.Errorf("load day %s: %w", date.Format("2006-01-02"), err)
	}

	h.StateManager.SetSelectedDate(chatID, date)
	text, markup := BuildDayScreen(date, items)

	// Фото нельзя превратить в текст, поэтому для сообщения с картинкой шлём новое
	if msg != nil && msg.Text != "" {
		_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   msg.ID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: markup,
		})
		if err != nil {
			h.Logger.Warn("Failed to edit day message", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		return nil
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: markup,
	})
	if err != nil {
		return fmt.Errorf("send day message: %w", err)
	}
	return nil
}

// ShowWeek отправляет картинку недели, содержащей date
func ShowWeek(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, date time.Time) error {
	week, err := h.Calendar.Week(ctx, date)
	if err != nil {
		return fmt.Errorf("load week %s: %w", date.Format("2006-01-02"), err)
	}

	h.StateManager.SetSelectedDate(chatID, date)

	imageData, err := render.WeekImage(render.Week{Start: week.Start, Quarter: week.Quarter, Entries: week.Entries}, h.Calendar.Now())
	if err != nil {
		return fmt.Errorf("render week: %w", err)
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileUpload{Filename: "week.png", Data: bytes.NewReader(imageData)},
		Caption:     WeekCaption(week),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard.WeekNavigation(date),
	})
	if err != nil {
		return fmt.Errorf("send week photo: %w", err)
	}
	return nil
}
