package callbacks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/controller/state"
	"github.com/Freeeeeet/school_calendar/internal/model"
	"github.com/Freeeeeet/school_calendar/internal/service"
)

type fakeCalendar struct {
	days []time.Time
	now  time.Time
}

func (f *fakeCalendar) Day(_ context.Context, date time.Time) ([]model.DisplayOccurrence, error) {
	f.days = append(f.days, date)
	return []model.DisplayOccurrence{
		{ID: "schedule-1", Title: "Урок", Subject: "Алгебра", Time: "09:00", EndTime: "09:45", Category: model.CategorySchedule},
	}, nil
}

func (f *fakeCalendar) Week(_ context.Context, date time.Time) (*service.WeekView, error) {
	return &service.WeekView{Start: date, End: date.AddDate(0, 0, 7)}, nil
}

func (f *fakeCalendar) Location() *time.Location { return time.UTC }
func (f *fakeCalendar) Now() time.Time           { return f.now }

// telegramStub записывает вызванные методы Bot API
type telegramStub struct {
	mu      sync.Mutex
	methods []string
}

func (s *telegramStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := path.Base(r.URL.Path)
	s.mu.Lock()
	s.methods = append(s.methods, method)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if method == "answerCallbackQuery" {
		w.Write([]byte(`{"ok":true,"result":true}`))
		return
	}
	w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
}

func (s *telegramStub) called() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.methods...)
}

func newTestBot(t *testing.T) (*bot.Bot, *telegramStub) {
	t.Helper()
	stub := &telegramStub{}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	b, err := bot.New("test-token", bot.WithSkipGetMe(), bot.WithServerURL(srv.URL))
	require.NoError(t, err)
	return b, stub
}

func newCallback(data string, text string) *models.CallbackQuery {
	return &models.CallbackQuery{
		ID:   "cb-1",
		From: models.User{ID: 7, FirstName: "Ира"},
		Data: data,
		Message: models.MaybeInaccessibleMessage{
			Type: models.MaybeInaccessibleMessageTypeMessage,
			Message: &models.Message{
				ID:   10,
				Chat: models.Chat{ID: 42},
				Text: text,
			},
		},
	}
}

func TestRoute_DayEditsMessage(t *testing.T) {
	b, stub := newTestBot(t)
	cal := &fakeCalendar{now: time.Date(2024, 10, 9, 12, 0, 0, 0, time.UTC)}
	states := state.NewManager()
	h := NewHandler(cal, states, zap.NewNop())

	Route(context.Background(), b, newCallback("day:2024-10-08", "старая агенда"), h.Handler)

	require.Len(t, cal.days, 1)
	assert.Equal(t, time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC), cal.days[0])
	assert.Equal(t, []string{"editMessageText", "answerCallbackQuery"}, stub.called())

	selected, ok := states.SelectedDate(42)
	require.True(t, ok)
	assert.Equal(t, cal.days[0], selected)
}

func TestRoute_TodayUsesCalendarClock(t *testing.T) {
	b, stub := newTestBot(t)
	cal := &fakeCalendar{now: time.Date(2024, 10, 9, 12, 0, 0, 0, time.UTC)}
	h := NewHandler(cal, state.NewManager(), zap.NewNop())

	// у сообщения с картинкой нет текста, поэтому агенда отправляется заново
	Route(context.Background(), b, newCallback("today", ""), h.Handler)

	require.Len(t, cal.days, 1)
	assert.Equal(t, time.Date(2024, 10, 9, 0, 0, 0, 0, time.UTC), cal.days[0])
	assert.Equal(t, []string{"sendMessage", "answerCallbackQuery"}, stub.called())
}

func TestRoute_BadDate(t *testing.T) {
	b, stub := newTestBot(t)
	cal := &fakeCalendar{}
	h := NewHandler(cal, state.NewManager(), zap.NewNop())

	Route(context.Background(), b, newCallback("day:tomorrow", "x"), h.Handler)

	assert.Empty(t, cal.days)
	assert.Equal(t, []string{"answerCallbackQuery"}, stub.called())
}

func TestRoute_Week(t *testing.T) {
	b, stub := newTestBot(t)
	cal := &fakeCalendar{now: time.Date(2024, 10, 9, 12, 0, 0, 0, time.UTC)}
	h := NewHandler(cal, state.NewManager(), zap.NewNop())

	Route(context.Background(), b, newCallback("week:2024-10-07", "x"), h.Handler)

	assert.Equal(t, []string{"sendPhoto", "answerCallbackQuery"}, stub.called())
}
