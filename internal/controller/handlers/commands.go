package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/calendar"
	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/common"
)

const helpText = "📚 Справка по командам:\n\n" +
	"/today - Расписание на сегодня\n" +
	"/day ГГГГ-ММ-ДД - Расписание на выбранный день\n" +
	"/week - Картинка текущей недели\n" +
	"/help - Показать эту справку\n\n" +
	"Под расписанием дня есть кнопки для перехода между днями и к неделе."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	name := "!"
	if update.Message.From != nil && update.Message.From.FirstName != "" {
		name = ", " + update.Message.From.FirstName + "!"
	}

	h.deps.StateManager.Clear(update.Message.Chat.ID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "👋 Привет" + name + "\n\nЯ показываю школьный календарь: уроки, тесты, домашние задания и события.\n\n" + helpText,
	})
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText,
	})
}

// HandleToday обрабатывает команду /today
func (h *Handlers) HandleToday(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.showDay(ctx, b, update.Message.Chat.ID, h.deps.Today())
}

// HandleDay обрабатывает команду /day [ГГГГ-ММ-ДД]
func (h *Handlers) HandleDay(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	date, err := parseDayArgument(update.Message.Text, h.deps.Calendar.Location())
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Неверный формат даты. Пример: /day 2024-10-07",
		})
		return
	}
	if date.IsZero() {
		date = h.deps.CurrentDate(chatID)
	}

	h.showDay(ctx, b, chatID, date)
}

// HandleWeek обрабатывает команду /week
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if err := common.ShowWeek(ctx, b, h.deps, chatID, h.deps.CurrentDate(chatID)); err != nil {
		h.logger.Error("Failed to show week", zap.Int64("chat_id", chatID), zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   common.ErrorMessage(err),
		})
	}
}

func (h *Handlers) showDay(ctx context.Context, b *bot.Bot, chatID int64, date time.Time) {
	if err := common.ShowDay(ctx, b, h.deps, chatID, nil, date); err != nil {
		h.logger.Error("Failed to show day", zap.Int64("chat_id", chatID), zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   common.ErrorMessage(err),
		})
	}
}

// parseDayArgument разбирает "/day 2024-10-07". Без аргумента возвращает нулевую дату
func parseDayArgument(text string, loc *time.Location) (time.Time, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return time.Time{}, nil
	}
	return calendar.ParseDate(fields[1], loc)
}
