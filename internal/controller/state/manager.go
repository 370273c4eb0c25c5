package state

import (
	"sync"
	"time"
)

// Manager хранит выбранную дату для каждого чата
type Manager struct {
	mu    sync.RWMutex
	chats map[int64]*ChatData // chatID -> ChatData
	now   func() time.Time
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		chats: make(map[int64]*ChatData),
		now:   time.Now,
	}
}

// SelectedDate возвращает выбранную дату чата
func (sm *Manager) SelectedDate(chatID int64) (time.Time, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if data, exists := sm.chats[chatID]; exists {
		return data.SelectedDate, true
	}
	return time.Time{}, false
}

// SetSelectedDate запоминает выбранную дату чата
func (sm *Manager) SetSelectedDate(chatID int64, date time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	data, exists := sm.chats[chatID]
	if !exists {
		data = &ChatData{}
		sm.chats[chatID] = data
	}
	data.SelectedDate = date
	data.UpdatedAt = sm.now()
}

// Clear удаляет состояние чата
func (sm *Manager) Clear(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.chats, chatID)
}

// EvictIdle удаляет чаты, не менявшиеся дольше maxIdle, и возвращает их число
func (sm *Manager) EvictIdle(maxIdle time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cutoff := sm.now().Add(-maxIdle)
	evicted := 0
	for chatID, data := range sm.chats {
		if data.UpdatedAt.Before(cutoff) {
			delete(sm.chats, chatID)
			evicted++
		}
	}
	return evicted
}
