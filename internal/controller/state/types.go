package state

import "time"

// ChatData хранит состояние навигации одного чата
type ChatData struct {
	SelectedDate time.Time // день, открытый в агенде или неделе
	UpdatedAt    time.Time
}
