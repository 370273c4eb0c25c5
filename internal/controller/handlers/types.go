package handlers

import (
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_calendar/internal/controller/callbacks/callbacktypes"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	deps   *callbacktypes.Handler
	logger *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(deps *callbacktypes.Handler) *Handlers {
	return &Handlers{
		deps:   deps,
		logger: deps.Logger,
	}
}
